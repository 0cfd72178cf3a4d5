package client

import (
	"context"

	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// Catalog resources are read-only: the API offers no create, update, or
// delete endpoints for them, so the clients below are thin wrappers over the
// generic list and get helpers.

// ISOsClient implements strato.ISOsClient.
type ISOsClient struct {
	httpClient *http.Client
}

// NewISOsClient creates a new ISOs client.
func NewISOsClient(httpClient *http.Client) *ISOsClient {
	return &ISOsClient{httpClient: httpClient}
}

// List lists mountable ISO images.
func (c *ISOsClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.ISO, *strato.Meta, error) {
	return listResources[strato.ISO](ctx, c.httpClient, familyISOs, opts)
}

// Get retrieves a single ISO.
func (c *ISOsClient) Get(ctx context.Context, id int64) (*strato.ISO, error) {
	return getResource[strato.ISO](ctx, c.httpClient, familyISOs, id)
}

// LocationsClient implements strato.LocationsClient.
type LocationsClient struct {
	httpClient *http.Client
}

// NewLocationsClient creates a new locations client.
func NewLocationsClient(httpClient *http.Client) *LocationsClient {
	return &LocationsClient{httpClient: httpClient}
}

// List lists physical locations.
func (c *LocationsClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.Location, *strato.Meta, error) {
	return listResources[strato.Location](ctx, c.httpClient, familyLocations, opts)
}

// Get retrieves a single location.
func (c *LocationsClient) Get(ctx context.Context, id int64) (*strato.Location, error) {
	return getResource[strato.Location](ctx, c.httpClient, familyLocations, id)
}

// DatacentersClient implements strato.DatacentersClient.
type DatacentersClient struct {
	httpClient *http.Client
}

// NewDatacentersClient creates a new datacenters client.
func NewDatacentersClient(httpClient *http.Client) *DatacentersClient {
	return &DatacentersClient{httpClient: httpClient}
}

// List lists datacenters.
func (c *DatacentersClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.Datacenter, *strato.Meta, error) {
	return listResources[strato.Datacenter](ctx, c.httpClient, familyDatacenters, opts)
}

// Get retrieves a single datacenter.
func (c *DatacentersClient) Get(ctx context.Context, id int64) (*strato.Datacenter, error) {
	return getResource[strato.Datacenter](ctx, c.httpClient, familyDatacenters, id)
}

// ServerTypesClient implements strato.ServerTypesClient.
type ServerTypesClient struct {
	httpClient *http.Client
}

// NewServerTypesClient creates a new server types client.
func NewServerTypesClient(httpClient *http.Client) *ServerTypesClient {
	return &ServerTypesClient{httpClient: httpClient}
}

// List lists bookable server types.
func (c *ServerTypesClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.ServerType, *strato.Meta, error) {
	return listResources[strato.ServerType](ctx, c.httpClient, familyServerTypes, opts)
}

// Get retrieves a single server type.
func (c *ServerTypesClient) Get(ctx context.Context, id int64) (*strato.ServerType, error) {
	return getResource[strato.ServerType](ctx, c.httpClient, familyServerTypes, id)
}
