package images

import (
	"context"
	"io"
	"mime/multipart"
)

// ImageService defines the gallery operations of the dashboard.
type ImageService interface {
	// Upload stores the files of a multipart form ("files" field) for a
	// construction, appending them to the gallery in form order.
	Upload(ctx context.Context, constructionID string, form *multipart.Form) ([]*ImageMeta, error)

	// ListByConstruction returns the gallery in position order.
	ListByConstruction(ctx context.Context, constructionID string) ([]*ImageMeta, error)

	// Reorder rewrites gallery positions to match orderedIDs, which must be
	// a permutation of the construction's image IDs.
	Reorder(ctx context.Context, constructionID string, orderedIDs []string) error

	// DeleteByID removes one image from the store and the gallery.
	DeleteByID(ctx context.Context, constructionID, imageID string) error
}

// ImageRepository defines the persistence operations for image metadata.
type ImageRepository interface {
	Create(ctx context.Context, image *ImageMeta) error
	ListByConstruction(ctx context.Context, constructionID string) ([]*ImageMeta, error)
	GetByID(ctx context.Context, imageID string) (*ImageMeta, error)
	UpdatePositions(ctx context.Context, constructionID string, orderedIDs []string) error
	DeleteByID(ctx context.Context, imageID string) error
}

// ImageStore is an interface for the object storage holding the files.
type ImageStore interface {
	// Upload writes a blob and returns its public URL.
	Upload(ctx context.Context, blobName, contentType string, body io.Reader) (string, error)

	// Delete removes a blob; deleting a missing blob is not an error.
	Delete(ctx context.Context, blobName string) error
}
