// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file and the process environment, validated,
// and handed to the rest of the application as typed structs. Centralizing
// configuration here keeps the wiring in cmd/ thin.
package config
