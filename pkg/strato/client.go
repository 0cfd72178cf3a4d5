package strato

import (
	"context"
	"time"
)

// ServersClient manages the server lifecycle and server actions.
type ServersClient interface {
	List(ctx context.Context, opts *ListOpts) ([]Server, *Meta, error)
	Get(ctx context.Context, id int64) (*Server, error)
	Create(ctx context.Context, request *ServerCreateRequest) (*Server, error)
	Update(ctx context.Context, id int64, request *ServerUpdateRequest) (*Server, error)
	Delete(ctx context.Context, id int64) error

	PowerOn(ctx context.Context, id int64) (*Action, error)
	PowerOff(ctx context.Context, id int64) (*Action, error)
	Reboot(ctx context.Context, id int64) (*Action, error)
	Reset(ctx context.Context, id int64) (*Action, error)
	Shutdown(ctx context.Context, id int64) (*Action, error)
	ResetPassword(ctx context.Context, id int64) (*ServerResetPasswordResult, error)
	EnableRescue(ctx context.Context, id int64, request *ServerEnableRescueRequest) (*ServerEnableRescueResult, error)
	DisableRescue(ctx context.Context, id int64) (*Action, error)
	CreateImage(ctx context.Context, id int64, request *ServerCreateImageRequest) (*Image, error)
	Rebuild(ctx context.Context, id int64, request *ServerRebuildRequest) (*Action, error)
	ChangeType(ctx context.Context, id int64, request *ServerChangeTypeRequest) (*Action, error)
	AttachISO(ctx context.Context, id int64, request *ServerAttachISORequest) (*Action, error)
	DetachISO(ctx context.Context, id int64) (*Action, error)
	ChangeDNSPtr(ctx context.Context, id int64, request *ChangeDNSPtrRequest) (*Action, error)
	RequestConsole(ctx context.Context, id int64) (*Console, error)
}

// FloatingIPsClient manages floating IP addresses.
type FloatingIPsClient interface {
	List(ctx context.Context, opts *ListOpts) ([]FloatingIP, *Meta, error)
	Get(ctx context.Context, id int64) (*FloatingIP, error)
	Create(ctx context.Context, request *FloatingIPCreateRequest) (*FloatingIP, error)
	Update(ctx context.Context, id int64, request *FloatingIPUpdateRequest) (*FloatingIP, error)
	Delete(ctx context.Context, id int64) error

	Assign(ctx context.Context, id, serverID int64) (*Action, error)
	Unassign(ctx context.Context, id int64) (*Action, error)
	ChangeDNSPtr(ctx context.Context, id int64, request *ChangeDNSPtrRequest) (*Action, error)
}

// SSHKeysClient manages uploaded SSH public keys.
type SSHKeysClient interface {
	List(ctx context.Context, opts *ListOpts) ([]SSHKey, *Meta, error)
	Get(ctx context.Context, id int64) (*SSHKey, error)
	Create(ctx context.Context, request *SSHKeyCreateRequest) (*SSHKey, error)
	Update(ctx context.Context, id int64, request *SSHKeyUpdateRequest) (*SSHKey, error)
	Delete(ctx context.Context, id int64) error
}

// VolumesClient manages block storage volumes.
type VolumesClient interface {
	List(ctx context.Context, opts *ListOpts) ([]Volume, *Meta, error)
	Get(ctx context.Context, id int64) (*Volume, error)
	Create(ctx context.Context, request *VolumeCreateRequest) (*Volume, error)
	Update(ctx context.Context, id int64, request *VolumeUpdateRequest) (*Volume, error)
	Delete(ctx context.Context, id int64) error

	Attach(ctx context.Context, id int64, request *VolumeAttachRequest) (*Action, error)
	Detach(ctx context.Context, id int64) (*Action, error)
	Resize(ctx context.Context, id int64, size int) (*Action, error)
}

// NetworksClient manages private networks.
type NetworksClient interface {
	List(ctx context.Context, opts *ListOpts) ([]Network, *Meta, error)
	Get(ctx context.Context, id int64) (*Network, error)
	Create(ctx context.Context, request *NetworkCreateRequest) (*Network, error)
	Update(ctx context.Context, id int64, request *NetworkUpdateRequest) (*Network, error)
	Delete(ctx context.Context, id int64) error

	AddSubnet(ctx context.Context, id int64, subnet NetworkSubnet) (*Action, error)
	DeleteSubnet(ctx context.Context, id int64, ipRange string) (*Action, error)
	ChangeIPRange(ctx context.Context, id int64, ipRange string) (*Action, error)
}

// ImagesClient manages images. Snapshot images are created through
// ServersClient.CreateImage.
type ImagesClient interface {
	List(ctx context.Context, opts *ListOpts) ([]Image, *Meta, error)
	Get(ctx context.Context, id int64) (*Image, error)
	Update(ctx context.Context, id int64, request *ImageUpdateRequest) (*Image, error)
	Delete(ctx context.Context, id int64) error
}

// ActionsClient retrieves asynchronous operations and drives them to
// completion.
type ActionsClient interface {
	List(ctx context.Context, opts *ListOpts) ([]Action, *Meta, error)
	Get(ctx context.Context, id int64) (*Action, error)

	// Wait polls the action with the client's default attempt budget until it
	// leaves the running status. The returned action may be in the error
	// status; callers inspect Status themselves.
	Wait(ctx context.Context, id int64) (*Action, error)

	// WaitFor is Wait with an explicit budget.
	WaitFor(ctx context.Context, id int64, maxWait time.Duration) (*Action, error)
}

// CatalogClient exposes the read-only catalogs.
type CatalogClient interface {
	ISOs() ISOsClient
	Locations() LocationsClient
	Datacenters() DatacentersClient
	ServerTypes() ServerTypesClient
}

// ISOsClient lists mountable ISO images.
type ISOsClient interface {
	List(ctx context.Context, opts *ListOpts) ([]ISO, *Meta, error)
	Get(ctx context.Context, id int64) (*ISO, error)
}

// LocationsClient lists physical locations.
type LocationsClient interface {
	List(ctx context.Context, opts *ListOpts) ([]Location, *Meta, error)
	Get(ctx context.Context, id int64) (*Location, error)
}

// DatacentersClient lists datacenters.
type DatacentersClient interface {
	List(ctx context.Context, opts *ListOpts) ([]Datacenter, *Meta, error)
	Get(ctx context.Context, id int64) (*Datacenter, error)
}

// ServerTypesClient lists bookable server types.
type ServerTypesClient interface {
	List(ctx context.Context, opts *ListOpts) ([]ServerType, *Meta, error)
	Get(ctx context.Context, id int64) (*ServerType, error)
}

// Client is the top-level Strato API client.
type Client interface {
	CatalogClient

	Servers() ServersClient
	FloatingIPs() FloatingIPsClient
	SSHKeys() SSHKeysClient
	Volumes() VolumesClient
	Networks() NetworksClient
	Images() ImagesClient
	Actions() ActionsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
//
// Endpoint and Token are required. The token is sent verbatim as a Bearer
// authorization header on every request; there is no OAuth flow. Per-request
// deadlines should generally come from the context passed to client methods;
// HTTPTimeout bounds a single round trip.
type Config struct {
	// Endpoint: base URL for the Strato API (e.g. "https://api.strato.example/v1").
	Endpoint string

	// Token: static Bearer token.
	Token string

	// HTTPTimeout: per-request timeout. Defaults to 30s.
	HTTPTimeout time.Duration

	// RetryMax: maximum transport-level retries for transient failures
	// (>=500, 429, connection errors). If 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// PollInterval: delay between action poll attempts. Defaults to 1s.
	PollInterval time.Duration
	// PollMaxWait: default total budget for ActionsClient.Wait. Defaults to 30s.
	PollMaxWait time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
