package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strato-io/strato/pkg/strato"
)

func TestServersClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/servers", r.URL.Path)

		var body strato.ServerCreateRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "web-1", body.Name)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"server": {"id": 42, "name": "web-1", "status": "initializing"},
			"action": {"id": 7, "command": "create_server", "status": "running"},
			"next_actions": [{"id": 8, "command": "start_server", "status": "running"}],
			"root_password": "s3cret"
		}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	created, err := servers.Create(context.Background(), &strato.ServerCreateRequest{
		Name:       "web-1",
		ServerType: "cx32",
		Image:      "debian-12",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "initializing", created.Status)
	require.NotNil(t, created.Action)
	assert.Equal(t, "create_server", created.Action.Command)
	assert.Len(t, created.NextActions, 1)
	assert.Equal(t, "s3cret", created.RootPassword)
}

func TestServersClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/42", r.URL.Path)

		_, _ = w.Write([]byte(`{"server": {
			"id": 42,
			"name": "web-1",
			"status": "running",
			"public_net": {"ipv4": {"ip": "192.0.2.10", "dns_ptr": "web-1.example.com"}}
		}}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	result, err := servers.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "web-1", result.Name)
	require.NotNil(t, result.PublicNet)
	require.NotNil(t, result.PublicNet.IPv4)
	assert.Equal(t, "192.0.2.10", result.PublicNet.IPv4.IP)
}

func TestServersClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": "not_found", "message": "server not found"}}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	_, err := servers.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, strato.IsNotFound(err))
}

func TestServersClient_PowerCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		call         func(c *ServersClient, ctx context.Context) (*strato.Action, error)
		expectedPath string
	}{
		{
			name:         "power on",
			call:         func(c *ServersClient, ctx context.Context) (*strato.Action, error) { return c.PowerOn(ctx, 42) },
			expectedPath: "/servers/42/actions/poweron",
		},
		{
			name:         "power off",
			call:         func(c *ServersClient, ctx context.Context) (*strato.Action, error) { return c.PowerOff(ctx, 42) },
			expectedPath: "/servers/42/actions/poweroff",
		},
		{
			name:         "reboot",
			call:         func(c *ServersClient, ctx context.Context) (*strato.Action, error) { return c.Reboot(ctx, 42) },
			expectedPath: "/servers/42/actions/reboot",
		},
		{
			name:         "reset",
			call:         func(c *ServersClient, ctx context.Context) (*strato.Action, error) { return c.Reset(ctx, 42) },
			expectedPath: "/servers/42/actions/reset",
		},
		{
			name:         "shutdown",
			call:         func(c *ServersClient, ctx context.Context) (*strato.Action, error) { return c.Shutdown(ctx, 42) },
			expectedPath: "/servers/42/actions/shutdown",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, testCase.expectedPath, r.URL.Path)

				_, _ = w.Write([]byte(`{"action": {"id": 7, "status": "running"}}`))
			}))
			defer server.Close()

			servers := NewServersClient(newTestHTTPClient(server.URL))

			action, err := testCase.call(servers, context.Background())
			require.NoError(t, err)
			assert.Equal(t, int64(7), action.ID)
		})
	}
}

func TestServersClient_ResetPassword(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/42/actions/reset_password", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"action": {"id": 7, "command": "reset_password", "status": "running"},
			"root_password": "new-s3cret"
		}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	result, err := servers.ResetPassword(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, result.Action)
	assert.Equal(t, "reset_password", result.Action.Command)
	assert.Equal(t, "new-s3cret", result.RootPassword)
}

func TestServersClient_ResetPassword_MissingAction(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"root_password": "new-s3cret"}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	_, err := servers.ResetPassword(context.Background(), 42)

	envErr := &strato.EnvelopeError{}
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, "action", envErr.Key)
}

func TestServersClient_EnableRescue(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/42/actions/enable_rescue", r.URL.Path)

		var body strato.ServerEnableRescueRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "linux64", body.Type)

		_, _ = w.Write([]byte(`{
			"action": {"id": 7, "status": "running"},
			"root_password": "rescue-pw"
		}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	result, err := servers.EnableRescue(context.Background(), 42, &strato.ServerEnableRescueRequest{Type: "linux64"})
	require.NoError(t, err)
	assert.Equal(t, "rescue-pw", result.RootPassword)
}

func TestServersClient_CreateImage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/42/actions/create_image", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"image": {"id": 13, "type": "snapshot", "description": "nightly"},
			"action": {"id": 7, "command": "create_image", "status": "running"}
		}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	image, err := servers.CreateImage(context.Background(), 42, &strato.ServerCreateImageRequest{
		Description: "nightly",
		Type:        "snapshot",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), image.ID)
	require.NotNil(t, image.Action)
	assert.Equal(t, "create_image", image.Action.Command)
}

func TestServersClient_RequestConsole(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/42/actions/request_console", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"action": {"id": 7, "status": "running"},
			"wss_url": "wss://console.strato.example/?token=abc",
			"password": "console-pw"
		}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	console, err := servers.RequestConsole(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "wss://console.strato.example/?token=abc", console.WSSURL)
	assert.Equal(t, "console-pw", console.Password)
	require.NotNil(t, console.Action)
}

func TestServersClient_ChangeDNSPtr(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/42/actions/change_dns_ptr", r.URL.Path)

		var body strato.ChangeDNSPtrRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "192.0.2.10", body.IP)
		assert.Nil(t, body.DNSPtr)

		_, _ = w.Write([]byte(`{"action": {"id": 7, "status": "running"}}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	// nil DNSPtr resets the pointer to the provider default
	action, err := servers.ChangeDNSPtr(context.Background(), 42, &strato.ChangeDNSPtrRequest{IP: "192.0.2.10"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), action.ID)
}

func TestServersClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/servers/42", r.URL.Path)

		_, _ = w.Write([]byte(`{"server": {"id": 42, "name": "web-2"}}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	updated, err := servers.Update(context.Background(), 42, &strato.ServerUpdateRequest{Name: "web-2"})
	require.NoError(t, err)
	assert.Equal(t, "web-2", updated.Name)
}

func TestServersClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/servers/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	require.NoError(t, servers.Delete(context.Background(), 42))
}

func TestServersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers", r.URL.Path)
		assert.Equal(t, "label_selector=env%3Dprod&status=running", r.URL.RawQuery)

		_, _ = w.Write([]byte(`{
			"servers": [{"id": 1, "name": "web-1"}, {"id": 2, "name": "web-2"}],
			"meta": {"pagination": {"page": 1, "per_page": 25, "total_entries": 2}}
		}`))
	}))
	defer server.Close()

	servers := NewServersClient(newTestHTTPClient(server.URL))

	opts := strato.NewListOpts().
		WithFilter("status", "running").
		WithFilter("label_selector", "env=prod")

	result, meta, err := servers.List(context.Background(), opts)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	require.NotNil(t, meta)
}
