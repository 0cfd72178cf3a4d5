package client

import (
	"context"

	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// FloatingIPsClient implements strato.FloatingIPsClient.
type FloatingIPsClient struct {
	httpClient *http.Client
}

// NewFloatingIPsClient creates a new floating IPs client.
func NewFloatingIPsClient(httpClient *http.Client) *FloatingIPsClient {
	return &FloatingIPsClient{httpClient: httpClient}
}

// List lists floating IPs.
func (c *FloatingIPsClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.FloatingIP, *strato.Meta, error) {
	return listResources[strato.FloatingIP](ctx, c.httpClient, familyFloatingIPs, opts)
}

// Get retrieves a single floating IP.
func (c *FloatingIPsClient) Get(ctx context.Context, id int64) (*strato.FloatingIP, error) {
	return getResource[strato.FloatingIP](ctx, c.httpClient, familyFloatingIPs, id)
}

// Create allocates a new floating IP, optionally assigned to a server.
func (c *FloatingIPsClient) Create(ctx context.Context, request *strato.FloatingIPCreateRequest) (*strato.FloatingIP, error) {
	return createResource[strato.FloatingIP](ctx, c.httpClient, familyFloatingIPs, request)
}

// Update updates a floating IP's name, description, or labels.
func (c *FloatingIPsClient) Update(ctx context.Context, id int64, request *strato.FloatingIPUpdateRequest) (*strato.FloatingIP, error) {
	return updateResource[strato.FloatingIP](ctx, c.httpClient, familyFloatingIPs, id, request)
}

// Delete releases a floating IP.
func (c *FloatingIPsClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, familyFloatingIPs, id)
}

// Assign assigns the floating IP to a server.
func (c *FloatingIPsClient) Assign(ctx context.Context, id, serverID int64) (*strato.Action, error) {
	body := map[string]int64{"server": serverID}

	return performAction(ctx, c.httpClient, familyFloatingIPs, id, "assign", body)
}

// Unassign detaches the floating IP from its server.
func (c *FloatingIPsClient) Unassign(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyFloatingIPs, id, "unassign", nil)
}

// ChangeDNSPtr changes the reverse DNS entry of the floating IP.
func (c *FloatingIPsClient) ChangeDNSPtr(ctx context.Context, id int64, request *strato.ChangeDNSPtrRequest) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyFloatingIPs, id, "change_dns_ptr", request)
}
