// Package connector holds the clients for external services, currently the
// object storage the image galleries live in.
package connector

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/pkg/config"
	"mill_inventory_service/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

type azureImageStore struct {
	client        *azblob.Client
	containerName string
	publicBaseURL string
	logger        logger.Logger
}

// NewAzureImageStore creates an ImageStore backed by Azure Blob Storage. The
// container is created when it does not exist yet.
func NewAzureImageStore(ctx context.Context, settings *config.ImageStoreSettings, log logger.Logger) (images.ImageStore, error) {
	if settings.CloudProvider != config.AzureCloudProvider {
		return nil, fmt.Errorf("unsupported cloud provider: %s (only Azure is supported)", settings.CloudProvider)
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &azureImageStore{
		client:        client,
		containerName: settings.ContainerName,
		publicBaseURL: strings.TrimSuffix(settings.PublicBaseURL, "/"),
		logger:        log,
	}, nil
}

func (s *azureImageStore) Upload(ctx context.Context, blobName, contentType string, body io.Reader) (string, error) {
	opts := &azblob.UploadStreamOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}

	_, err := s.client.UploadStream(ctx, s.containerName, blobName, body, opts)
	if err != nil {
		return "", fmt.Errorf("failed to upload blob %s: %w", blobName, err)
	}

	s.logger.Info("Uploaded blob ", blobName, " to container ", s.containerName)
	return s.blobURL(blobName), nil
}

func (s *azureImageStore) Delete(ctx context.Context, blobName string) error {
	_, err := s.client.DeleteBlob(ctx, s.containerName, blobName, nil)
	if err != nil {
		// A blob already gone is fine; gallery deletes must stay idempotent
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete blob %s: %w", blobName, err)
	}

	s.logger.Info("Deleted blob ", blobName, " from container ", s.containerName)
	return nil
}

// blobURL builds the public URL of a blob. PublicBaseURL wins when set, for
// CDN fronting; otherwise the storage account URL is used directly.
func (s *azureImageStore) blobURL(blobName string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + blobName
	}
	return strings.TrimSuffix(s.client.URL(), "/") + "/" + s.containerName + "/" + blobName
}
