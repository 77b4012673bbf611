package constructions

import (
	"context"

	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/domain/pocas"
	"mill_inventory_service/internal/domain/waterlines"
)

// Record aggregates a construction with its translations and the
// specialization matching its kind. Exactly one of Mill, WaterLine and Poca
// is set.
type Record struct {
	Construction *Construction
	Translations []*Translation
	Mill         *mills.MillData
	WaterLine    *waterlines.WaterLine
	Poca         *pocas.Poca
}

// Validate checks the aggregate: the construction itself, every translation,
// and that the specialization matches the kind.
func (r *Record) Validate() error {
	if err := r.Construction.Validate(); err != nil {
		return err
	}

	for _, tr := range r.Translations {
		if err := tr.Validate(); err != nil {
			return err
		}
	}

	return r.validateSpecialization()
}

// AdminService defines the dashboard operations on constructions: draft CRUD,
// translation upserts and the review workflow.
type AdminService interface {
	// Create stores a new draft. The ID is generated and the slug is derived
	// from the pt translation name when not set explicitly.
	Create(ctx context.Context, record *Record) (*Record, error)

	// GetByID returns a record regardless of status.
	GetByID(ctx context.Context, constructionID string) (*Record, error)

	// List returns records matching a dashboard query.
	List(ctx context.Context, query *ConstructionQuery) ([]*Record, error)

	// UpdateByID replaces the construction fields and specialization of an
	// existing record. Status is not touched here; use Transition.
	UpdateByID(ctx context.Context, record *Record) (*Record, error)

	// DeleteByID removes a record with its translations, specialization and
	// gallery (metadata rows and, when a store is wired, the blobs).
	DeleteByID(ctx context.Context, constructionID string) error

	// Transition moves a record through the review workflow, enforcing the
	// allowed edges and the publish preconditions.
	Transition(ctx context.Context, constructionID string, target Status) (*Record, error)

	// UpsertTranslation creates or replaces one locale's translation.
	UpsertTranslation(ctx context.Context, constructionID string, translation *Translation) error
}

// ConstructionRepository defines the persistence operations for records.
type ConstructionRepository interface {
	Create(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, constructionID string) (*Record, error)
	GetBySlug(ctx context.Context, slug string) (*Record, error)
	List(ctx context.Context, query *ConstructionQuery) ([]*Record, error)
	UpdateByID(ctx context.Context, record *Record) error
	UpdateStatus(ctx context.Context, constructionID string, status Status) error
	DeleteByID(ctx context.Context, constructionID string) error
	UpsertTranslation(ctx context.Context, translation *Translation) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}
