// Package persistence contains the GORM-based repositories of the inventory.
//
// The write side (construction repository) keeps a construction row, its
// translations and its specialization consistent inside one transaction. The
// read side (catalog repository) serves the public queries: published-only
// filtering, translation joins with pt fallback, and coordinate extraction
// through PostGIS on postgres or WKT parsing on sqlite.
package persistence
