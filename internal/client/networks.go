package client

import (
	"context"

	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// NetworksClient implements strato.NetworksClient.
type NetworksClient struct {
	httpClient *http.Client
}

// NewNetworksClient creates a new networks client.
func NewNetworksClient(httpClient *http.Client) *NetworksClient {
	return &NetworksClient{httpClient: httpClient}
}

// List lists networks.
func (c *NetworksClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.Network, *strato.Meta, error) {
	return listResources[strato.Network](ctx, c.httpClient, familyNetworks, opts)
}

// Get retrieves a single network.
func (c *NetworksClient) Get(ctx context.Context, id int64) (*strato.Network, error) {
	return getResource[strato.Network](ctx, c.httpClient, familyNetworks, id)
}

// Create creates a private network.
func (c *NetworksClient) Create(ctx context.Context, request *strato.NetworkCreateRequest) (*strato.Network, error) {
	return createResource[strato.Network](ctx, c.httpClient, familyNetworks, request)
}

// Update updates a network's name or labels.
func (c *NetworksClient) Update(ctx context.Context, id int64, request *strato.NetworkUpdateRequest) (*strato.Network, error) {
	return updateResource[strato.Network](ctx, c.httpClient, familyNetworks, id, request)
}

// Delete deletes a network. Attached servers are detached automatically.
func (c *NetworksClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, familyNetworks, id)
}

// AddSubnet adds a subnet to the network.
func (c *NetworksClient) AddSubnet(ctx context.Context, id int64, subnet strato.NetworkSubnet) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyNetworks, id, "add_subnet", subnet)
}

// DeleteSubnet removes the subnet with the given IP range.
func (c *NetworksClient) DeleteSubnet(ctx context.Context, id int64, ipRange string) (*strato.Action, error) {
	body := map[string]string{"ip_range": ipRange}

	return performAction(ctx, c.httpClient, familyNetworks, id, "delete_subnet", body)
}

// ChangeIPRange expands the network's IP range. Subnets must stay contained.
func (c *NetworksClient) ChangeIPRange(ctx context.Context, id int64, ipRange string) (*strato.Action, error) {
	body := map[string]string{"ip_range": ipRange}

	return performAction(ctx, c.httpClient, familyNetworks, id, "change_ip_range", body)
}
