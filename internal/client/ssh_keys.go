package client

import (
	"context"

	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// SSHKeysClient implements strato.SSHKeysClient.
type SSHKeysClient struct {
	httpClient *http.Client
}

// NewSSHKeysClient creates a new SSH keys client.
func NewSSHKeysClient(httpClient *http.Client) *SSHKeysClient {
	return &SSHKeysClient{httpClient: httpClient}
}

// List lists SSH keys.
func (c *SSHKeysClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.SSHKey, *strato.Meta, error) {
	return listResources[strato.SSHKey](ctx, c.httpClient, familySSHKeys, opts)
}

// Get retrieves a single SSH key.
func (c *SSHKeysClient) Get(ctx context.Context, id int64) (*strato.SSHKey, error) {
	return getResource[strato.SSHKey](ctx, c.httpClient, familySSHKeys, id)
}

// Create uploads an SSH public key.
func (c *SSHKeysClient) Create(ctx context.Context, request *strato.SSHKeyCreateRequest) (*strato.SSHKey, error) {
	return createResource[strato.SSHKey](ctx, c.httpClient, familySSHKeys, request)
}

// Update updates an SSH key's name or labels.
func (c *SSHKeysClient) Update(ctx context.Context, id int64, request *strato.SSHKeyUpdateRequest) (*strato.SSHKey, error) {
	return updateResource[strato.SSHKey](ctx, c.httpClient, familySSHKeys, id, request)
}

// Delete deletes an SSH key.
func (c *SSHKeysClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, familySSHKeys, id)
}
