package stratoclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strato-io/strato/pkg/strato"
	"github.com/strato-io/strato/pkg/stratoclient"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := stratoclient.New(nil)
		require.ErrorIs(t, err, strato.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Setenv(stratoclient.EnvEndpoint, "")
		t.Setenv(stratoclient.EnvToken, "")

		_, err := stratoclient.New(&strato.Config{Token: "tok"})
		require.ErrorIs(t, err, strato.ErrEndpointRequired)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv(stratoclient.EnvEndpoint, "")
		t.Setenv(stratoclient.EnvToken, "")

		_, err := stratoclient.New(&strato.Config{Endpoint: "api.strato.example"})
		require.ErrorIs(t, err, strato.ErrTokenRequired)
	})

	t.Run("endpoint normalization", func(t *testing.T) {
		config := &strato.Config{Endpoint: "api.strato.example/", Token: "tok"}

		client, err := stratoclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://api.strato.example", config.Endpoint)
	})

	t.Run("explicit scheme preserved", func(t *testing.T) {
		config := &strato.Config{Endpoint: "http://localhost:8080", Token: "tok"}

		_, err := stratoclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", config.Endpoint)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv(stratoclient.EnvEndpoint, "https://api.strato.example")
		t.Setenv(stratoclient.EnvToken, "env-tok")

		client, err := stratoclient.NewFromEnvironment()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNewWithToken(t *testing.T) {
	client, err := stratoclient.NewWithToken("https://api.strato.example", "tok")
	require.NoError(t, err)
	assert.NotNil(t, client.Servers())
	assert.NotNil(t, client.Actions())
}
