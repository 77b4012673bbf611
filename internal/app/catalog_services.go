// Package app wires domain contracts to their implementations: the public
// catalog reads, the dashboard workflow and the image gallery.
package app

import (
	"context"
	"fmt"
	"strings"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/domain/taxonomy"
	"mill_inventory_service/internal/pkg/logger"
	"mill_inventory_service/internal/pkg/strutil"
)

// catalogService implements the CatalogService interface on top of the
// catalog repository.
type catalogService struct {
	catalogRepo mills.CatalogRepository
	logger      logger.Logger
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(catalogRepo mills.CatalogRepository, logger logger.Logger) (mills.CatalogService, error) {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}, nil
}

// normalizeLocale maps unknown locales to the canonical pt.
func normalizeLocale(locale string) string {
	return constructions.NormalizeLocale(locale)
}

func (s *catalogService) PublishedMills(ctx context.Context, locale string) ([]*mills.PublishedMill, error) {
	return s.catalogRepo.ListPublishedMills(ctx, normalizeLocale(locale))
}

func (s *catalogService) PublishedMillBySlug(ctx context.Context, slug, locale string) (*mills.PublishedMill, error) {
	return s.catalogRepo.GetPublishedMillBySlug(ctx, slug, normalizeLocale(locale))
}

func (s *catalogService) MapData(ctx context.Context, locale string) (*mills.MapData, error) {
	locale = normalizeLocale(locale)

	markers, err := s.catalogRepo.ListMillMarkers(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load mill markers: %w", err)
	}

	waterLines, err := s.catalogRepo.ListWaterLinePaths(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load water line paths: %w", err)
	}

	pocas, err := s.catalogRepo.ListPocaMarkers(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load poca markers: %w", err)
	}

	return &mills.MapData{
		Mills:      markers,
		WaterLines: waterLines,
		Pocas:      pocas,
	}, nil
}

func (s *catalogService) WaterLineBySlug(ctx context.Context, slug, locale string) (*mills.WaterLineDetail, error) {
	return s.catalogRepo.GetWaterLineBySlug(ctx, slug, normalizeLocale(locale))
}

func (s *catalogService) ConnectedMills(ctx context.Context, waterLineID, locale string) ([]*mills.MillSummary, error) {
	return s.catalogRepo.ListConnectedMills(ctx, waterLineID, normalizeLocale(locale))
}

func (s *catalogService) SearchableMills(ctx context.Context) ([]*mills.SearchableMill, error) {
	return s.catalogRepo.ListSearchableMills(ctx)
}

// Search matches the folded query against every locale's text of every
// published mill, so a query written in English finds mills only described
// in Portuguese and vice versa. Hits are served in the requested locale.
func (s *catalogService) Search(ctx context.Context, query, locale string) ([]*mills.SearchResult, error) {
	locale = normalizeLocale(locale)

	needle := strutil.Fold(query)
	if needle == "" {
		return []*mills.SearchResult{}, nil
	}

	searchable, err := s.catalogRepo.ListSearchableMills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load searchable mills: %w", err)
	}

	results := make([]*mills.SearchResult, 0)
	for _, mill := range searchable {
		matchedIn, ok := matchMill(mill, needle, locale)
		if !ok {
			continue
		}

		text := servedText(mill, locale)
		results = append(results, &mills.SearchResult{
			Slug:         mill.Slug,
			Name:         text.Name,
			Summary:      text.Summary,
			Municipality: mill.Municipality,
			Latitude:     mill.Latitude,
			Longitude:    mill.Longitude,
			MatchedIn:    matchedIn,
		})
	}

	return results, nil
}

// matchMill reports whether a mill matches the folded needle and in which
// locale the match was found. The requested locale is probed first so
// MatchedIn stays stable when both locales match.
func matchMill(mill *mills.SearchableMill, needle, locale string) (string, bool) {
	probeOrder := append([]string{locale}, constructions.SupportedLocales...)
	seen := make(map[string]bool, len(probeOrder))

	for _, l := range probeOrder {
		if seen[l] {
			continue
		}
		seen[l] = true

		text, ok := mill.Translations[l]
		if !ok {
			continue
		}
		if textMatches(text, needle) || taxonomyMatches(mill, needle, l) {
			return l, true
		}
	}

	// Location fields are locale-free; attribute those hits to the request
	if strings.Contains(strutil.Fold(mill.Municipality), needle) ||
		strings.Contains(strutil.Fold(mill.Parish), needle) {
		return locale, true
	}

	return "", false
}

func textMatches(text mills.SearchableText, needle string) bool {
	return strings.Contains(strutil.Fold(text.Name), needle) ||
		strings.Contains(strutil.Fold(text.Summary), needle) ||
		strings.Contains(strutil.Fold(text.Description), needle)
}

// taxonomyMatches probes the localized labels of every taxonomy field a mill
// carries.
func taxonomyMatches(mill *mills.SearchableMill, needle, locale string) bool {
	labels := []string{
		taxonomy.Label(taxonomy.FieldTypology, mill.Typology, locale),
		taxonomy.Label(taxonomy.FieldTechnique, mill.ConstructionTechnique, locale),
		taxonomy.Label(taxonomy.FieldRoofMaterial, mill.RoofMaterial, locale),
		taxonomy.Label(taxonomy.FieldMechanism, mill.Mechanism, locale),
		taxonomy.Label(taxonomy.FieldConservation, mill.Conservation, locale),
	}
	for _, label := range labels {
		if strings.Contains(strutil.Fold(label), needle) {
			return true
		}
	}
	return false
}

// servedText picks the text for the requested locale with pt fallback, then
// any locale at all, matching the SQL fallback of the full listings.
func servedText(mill *mills.SearchableMill, locale string) mills.SearchableText {
	if text, ok := mill.Translations[locale]; ok {
		return text
	}
	if text, ok := mill.Translations[constructions.DefaultLocale]; ok {
		return text
	}
	for _, text := range mill.Translations {
		return text
	}
	return mills.SearchableText{}
}
