package client

import (
	"context"

	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// VolumesClient implements strato.VolumesClient.
type VolumesClient struct {
	httpClient *http.Client
}

// NewVolumesClient creates a new volumes client.
func NewVolumesClient(httpClient *http.Client) *VolumesClient {
	return &VolumesClient{httpClient: httpClient}
}

// List lists volumes.
func (c *VolumesClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.Volume, *strato.Meta, error) {
	return listResources[strato.Volume](ctx, c.httpClient, familyVolumes, opts)
}

// Get retrieves a single volume.
func (c *VolumesClient) Get(ctx context.Context, id int64) (*strato.Volume, error) {
	return getResource[strato.Volume](ctx, c.httpClient, familyVolumes, id)
}

// Create creates a volume. When a server is given, the returned volume
// carries the attach action via the envelope auxiliaries.
func (c *VolumesClient) Create(ctx context.Context, request *strato.VolumeCreateRequest) (*strato.Volume, error) {
	return createResource[strato.Volume](ctx, c.httpClient, familyVolumes, request)
}

// Update updates a volume's name or labels.
func (c *VolumesClient) Update(ctx context.Context, id int64, request *strato.VolumeUpdateRequest) (*strato.Volume, error) {
	return updateResource[strato.Volume](ctx, c.httpClient, familyVolumes, id, request)
}

// Delete deletes a volume. The volume must be detached first.
func (c *VolumesClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, familyVolumes, id)
}

// Attach attaches the volume to a server.
func (c *VolumesClient) Attach(ctx context.Context, id int64, request *strato.VolumeAttachRequest) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyVolumes, id, "attach", request)
}

// Detach detaches the volume from its server.
func (c *VolumesClient) Detach(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyVolumes, id, "detach", nil)
}

// Resize grows the volume. Volumes can only grow, never shrink.
func (c *VolumesClient) Resize(ctx context.Context, id int64, size int) (*strato.Action, error) {
	body := map[string]int{"size": size}

	return performAction(ctx, c.httpClient, familyVolumes, id, "resize", body)
}
