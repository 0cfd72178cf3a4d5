package client

import (
	"context"

	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// ImagesClient implements strato.ImagesClient. Snapshot images are created
// through ServersClient.CreateImage; this client only lists, updates, and
// deletes existing images.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{httpClient: httpClient}
}

// List lists images.
func (c *ImagesClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.Image, *strato.Meta, error) {
	return listResources[strato.Image](ctx, c.httpClient, familyImages, opts)
}

// Get retrieves a single image.
func (c *ImagesClient) Get(ctx context.Context, id int64) (*strato.Image, error) {
	return getResource[strato.Image](ctx, c.httpClient, familyImages, id)
}

// Update updates an image's description, type, or labels.
func (c *ImagesClient) Update(ctx context.Context, id int64, request *strato.ImageUpdateRequest) (*strato.Image, error) {
	return updateResource[strato.Image](ctx, c.httpClient, familyImages, id, request)
}

// Delete deletes an image. Only snapshot and backup images can be deleted.
func (c *ImagesClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, familyImages, id)
}
