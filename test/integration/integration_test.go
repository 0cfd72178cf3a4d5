//go:build integration

// Package integration exercises the client against a live API. Set
// STRATO_ENDPOINT and STRATO_TOKEN and run with -tags integration; tests
// that create billable resources additionally require STRATO_RUN_LIFECYCLE.
package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strato-io/strato/pkg/strato"
	"github.com/strato-io/strato/pkg/stratoclient"
)

func newTestClient(t *testing.T) strato.Client {
	t.Helper()

	if os.Getenv(stratoclient.EnvEndpoint) == "" || os.Getenv(stratoclient.EnvToken) == "" {
		t.Skipf("%s and %s must be set", stratoclient.EnvEndpoint, stratoclient.EnvToken)
	}

	client, err := stratoclient.NewFromEnvironment()
	require.NoError(t, err)

	return client
}

func testName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestCatalogs(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	locations, _, err := client.Locations().List(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, locations)

	serverTypes, _, err := client.ServerTypes().List(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, serverTypes)

	datacenters, _, err := client.Datacenters().List(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, datacenters)

	for _, datacenter := range datacenters {
		assert.NotNil(t, datacenter.Location)
	}
}

func TestSSHKeyRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	name := testName("integration-key")
	publicKey := "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIJbVpBJJpD41o+2hxpzqM0bGK5smprScs5pK0vKy6N6c integration"

	key, err := client.SSHKeys().Create(ctx, &strato.SSHKeyCreateRequest{
		Name:      name,
		PublicKey: publicKey,
		Labels:    map[string]string{"origin": "integration-test"},
	})
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, client.SSHKeys().Delete(ctx, key.ID))
	}()

	assert.Equal(t, name, key.Name)
	assert.NotEmpty(t, key.Fingerprint)

	fetched, err := client.SSHKeys().Get(ctx, key.ID)
	require.NoError(t, err)
	assert.Equal(t, key.Fingerprint, fetched.Fingerprint)

	keys, _, err := client.SSHKeys().List(ctx, strato.NewListOpts().WithFilter("name", name))
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, key.ID, keys[0].ID)
}

func TestServerLifecycle(t *testing.T) {
	if os.Getenv("STRATO_RUN_LIFECYCLE") == "" {
		t.Skip("STRATO_RUN_LIFECYCLE not set; skipping billable lifecycle test")
	}

	client := newTestClient(t)
	ctx := context.Background()

	server, err := client.Servers().Create(ctx, &strato.ServerCreateRequest{
		Name:       testName("integration-server"),
		ServerType: "cx22",
		Image:      "ubuntu-24.04",
		Labels:     map[string]string{"origin": "integration-test"},
	})
	require.NoError(t, err)
	require.NotNil(t, server.Action)
	assert.NotEmpty(t, server.RootPassword)

	defer func() {
		assert.NoError(t, client.Servers().Delete(ctx, server.ID))
	}()

	action, err := client.Actions().WaitFor(ctx, server.Action.ID, 5*time.Minute)
	require.NoError(t, err)
	require.Equal(t, strato.ActionStatusSuccess, action.Status)

	fetched, err := client.Servers().Get(ctx, server.ID)
	require.NoError(t, err)
	assert.Equal(t, strato.ServerStatusRunning, fetched.Status)

	// Power the server off and back on through the action poller.
	action, err = client.Servers().PowerOff(ctx, server.ID)
	require.NoError(t, err)

	action, err = client.Actions().WaitFor(ctx, action.ID, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, strato.ActionStatusSuccess, action.Status)

	action, err = client.Servers().PowerOn(ctx, server.ID)
	require.NoError(t, err)

	action, err = client.Actions().WaitFor(ctx, action.ID, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, strato.ActionStatusSuccess, action.Status)
}
