package stratoclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/strato-io/strato/internal/client"
	"github.com/strato-io/strato/pkg/strato"
)

// Environment variables consulted when the config leaves fields empty.
const (
	EnvEndpoint = "STRATO_ENDPOINT"
	EnvToken    = "STRATO_TOKEN"
)

// New creates a new Strato API client.
//
// The endpoint is normalized: a trailing slash is stripped and https:// is
// assumed when no scheme is given. Endpoint and Token fall back to the
// STRATO_ENDPOINT and STRATO_TOKEN environment variables when unset.
func New(config *strato.Config) (strato.Client, error) {
	if config == nil {
		return nil, strato.ErrConfigRequired
	}

	if config.Endpoint == "" {
		config.Endpoint = os.Getenv(EnvEndpoint)
	}

	if config.Token == "" {
		config.Token = os.Getenv(EnvToken)
	}

	if config.Endpoint == "" {
		return nil, strato.ErrEndpointRequired
	}

	if config.Token == "" {
		return nil, strato.ErrTokenRequired
	}

	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(endpoint, token string) (strato.Client, error) {
	return New(&strato.Config{
		Endpoint: endpoint,
		Token:    token,
	})
}

// NewFromEnvironment creates a new client configured entirely from the
// STRATO_ENDPOINT and STRATO_TOKEN environment variables.
func NewFromEnvironment() (strato.Client, error) {
	return New(&strato.Config{})
}
