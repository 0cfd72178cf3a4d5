package client

import (
	"context"

	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// ServersClient implements strato.ServersClient.
type ServersClient struct {
	httpClient *http.Client
}

// NewServersClient creates a new servers client.
func NewServersClient(httpClient *http.Client) *ServersClient {
	return &ServersClient{httpClient: httpClient}
}

// List lists servers. Filters (name, label selector, status) and pagination
// are passed through the canonical query encoding.
func (c *ServersClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.Server, *strato.Meta, error) {
	return listResources[strato.Server](ctx, c.httpClient, familyServers, opts)
}

// Get retrieves a single server.
func (c *ServersClient) Get(ctx context.Context, id int64) (*strato.Server, error) {
	return getResource[strato.Server](ctx, c.httpClient, familyServers, id)
}

// Create creates a server. The returned server carries the creation action
// and the generated root password via the envelope auxiliaries.
func (c *ServersClient) Create(ctx context.Context, request *strato.ServerCreateRequest) (*strato.Server, error) {
	return createResource[strato.Server](ctx, c.httpClient, familyServers, request)
}

// Update updates a server's name or labels.
func (c *ServersClient) Update(ctx context.Context, id int64, request *strato.ServerUpdateRequest) (*strato.Server, error) {
	return updateResource[strato.Server](ctx, c.httpClient, familyServers, id, request)
}

// Delete deletes a server.
func (c *ServersClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, familyServers, id)
}

// PowerOn powers a server on.
func (c *ServersClient) PowerOn(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "poweron", nil)
}

// PowerOff cuts power to a server without a clean shutdown.
func (c *ServersClient) PowerOff(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "poweroff", nil)
}

// Reboot reboots a server gracefully.
func (c *ServersClient) Reboot(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "reboot", nil)
}

// Reset performs a hard reset, equivalent to pulling the power cord.
func (c *ServersClient) Reset(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "reset", nil)
}

// Shutdown requests an ACPI shutdown.
func (c *ServersClient) Shutdown(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "shutdown", nil)
}

// ResetPassword resets the server's root password and returns the newly
// generated one alongside the action.
func (c *ServersClient) ResetPassword(ctx context.Context, id int64) (*strato.ServerResetPasswordResult, error) {
	return performActionResult[strato.ServerResetPasswordResult](ctx, c.httpClient, familyServers, id, "reset_password", nil)
}

// EnableRescue enables the rescue system for the next boot.
func (c *ServersClient) EnableRescue(ctx context.Context, id int64, request *strato.ServerEnableRescueRequest) (*strato.ServerEnableRescueResult, error) {
	return performActionResult[strato.ServerEnableRescueResult](ctx, c.httpClient, familyServers, id, "enable_rescue", request)
}

// DisableRescue disables the rescue system.
func (c *ServersClient) DisableRescue(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "disable_rescue", nil)
}

// CreateImage creates an image from the server. The returned image carries
// the action via the envelope auxiliaries.
func (c *ServersClient) CreateImage(ctx context.Context, id int64, request *strato.ServerCreateImageRequest) (*strato.Image, error) {
	if id == 0 {
		return nil, wrapMissingID("create_image", familyServers)
	}

	resp, err := c.httpClient.Post(ctx, resourcePath(familyServers, id)+"/actions/create_image", request)
	if err != nil {
		return nil, wrapActionErr("create_image", familyServers, err)
	}

	return decodeEnveloped[strato.Image](resp.Body, "image")
}

// Rebuild reinstalls the server from the given image. All data is lost.
func (c *ServersClient) Rebuild(ctx context.Context, id int64, request *strato.ServerRebuildRequest) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "rebuild", request)
}

// ChangeType migrates the server to a different server type.
func (c *ServersClient) ChangeType(ctx context.Context, id int64, request *strato.ServerChangeTypeRequest) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "change_type", request)
}

// AttachISO mounts an ISO into the server's virtual drive.
func (c *ServersClient) AttachISO(ctx context.Context, id int64, request *strato.ServerAttachISORequest) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "attach_iso", request)
}

// DetachISO unmounts the currently attached ISO.
func (c *ServersClient) DetachISO(ctx context.Context, id int64) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "detach_iso", nil)
}

// ChangeDNSPtr changes the reverse DNS entry of one of the server's primary
// IPs.
func (c *ServersClient) ChangeDNSPtr(ctx context.Context, id int64, request *strato.ChangeDNSPtrRequest) (*strato.Action, error) {
	return performAction(ctx, c.httpClient, familyServers, id, "change_dns_ptr", request)
}

// RequestConsole requests VNC console access and returns the websocket URL
// and one-time password alongside the action.
func (c *ServersClient) RequestConsole(ctx context.Context, id int64) (*strato.Console, error) {
	return performActionResult[strato.Console](ctx, c.httpClient, familyServers, id, "request_console", nil)
}
