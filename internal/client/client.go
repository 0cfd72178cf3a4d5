package client

import (
	"time"

	"github.com/strato-io/strato/internal/constants"
	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// Client implements the strato.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     strato.Logger

	// Resource clients
	servers     strato.ServersClient
	floatingIPs strato.FloatingIPsClient
	sshKeys     strato.SSHKeysClient
	volumes     strato.VolumesClient
	networks    strato.NetworksClient
	images      strato.ImagesClient
	actions     strato.ActionsClient
	isos        strato.ISOsClient
	locations   strato.LocationsClient
	datacenters strato.DatacentersClient
	serverTypes strato.ServerTypesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *strato.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Strato API client.
func New(config *strato.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, strato.ErrEndpointRequired
	}

	if config.Token == "" {
		return nil, strato.ErrTokenRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Endpoint, config.Token, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.Endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients(config.PollInterval, config.PollMaxWait)

	return client, nil
}

// initializeResourceClients initializes all resource clients.
func (c *Client) initializeResourceClients(pollInterval, pollMaxWait time.Duration) {
	c.servers = NewServersClient(c.httpClient)
	c.floatingIPs = NewFloatingIPsClient(c.httpClient)
	c.sshKeys = NewSSHKeysClient(c.httpClient)
	c.volumes = NewVolumesClient(c.httpClient)
	c.networks = NewNetworksClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
	c.actions = NewActionsClient(c.httpClient, pollInterval, pollMaxWait)
	c.isos = NewISOsClient(c.httpClient)
	c.locations = NewLocationsClient(c.httpClient)
	c.datacenters = NewDatacentersClient(c.httpClient)
	c.serverTypes = NewServerTypesClient(c.httpClient)
}

// Servers returns the servers client.
func (c *Client) Servers() strato.ServersClient {
	return c.servers
}

// FloatingIPs returns the floating IPs client.
func (c *Client) FloatingIPs() strato.FloatingIPsClient {
	return c.floatingIPs
}

// SSHKeys returns the SSH keys client.
func (c *Client) SSHKeys() strato.SSHKeysClient {
	return c.sshKeys
}

// Volumes returns the volumes client.
func (c *Client) Volumes() strato.VolumesClient {
	return c.volumes
}

// Networks returns the networks client.
func (c *Client) Networks() strato.NetworksClient {
	return c.networks
}

// Images returns the images client.
func (c *Client) Images() strato.ImagesClient {
	return c.images
}

// Actions returns the actions client.
func (c *Client) Actions() strato.ActionsClient {
	return c.actions
}

// ISOs returns the ISOs client.
func (c *Client) ISOs() strato.ISOsClient {
	return c.isos
}

// Locations returns the locations client.
func (c *Client) Locations() strato.LocationsClient {
	return c.locations
}

// Datacenters returns the datacenters client.
func (c *Client) Datacenters() strato.DatacentersClient {
	return c.datacenters
}

// ServerTypes returns the server types client.
func (c *Client) ServerTypes() strato.ServerTypesClient {
	return c.serverTypes
}
