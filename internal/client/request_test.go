package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

func newTestHTTPClient(baseURL string) *internalhttp.Client {
	return internalhttp.NewClient(baseURL, "test-token")
}

func TestListResources(t *testing.T) {
	t.Parallel()

	t.Run("filter renders as canonical query", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/servers", r.URL.Path)
			assert.Equal(t, "name=testserver", r.URL.RawQuery)

			_, _ = w.Write([]byte(`{"servers": [{"id": 1, "name": "testserver"}]}`))
		}))
		defer server.Close()

		opts := strato.NewListOpts().WithFilter("name", "testserver")

		servers, _, err := listResources[strato.Server](context.Background(), newTestHTTPClient(server.URL), familyServers, opts)
		require.NoError(t, err)
		require.Len(t, servers, 1)
		assert.Equal(t, "testserver", servers[0].Name)
	})

	t.Run("nil options issue a bare request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "", r.URL.RawQuery)

			_, _ = w.Write([]byte(`{"volumes": []}`))
		}))
		defer server.Close()

		volumes, meta, err := listResources[strato.Volume](context.Background(), newTestHTTPClient(server.URL), familyVolumes, nil)
		require.NoError(t, err)
		assert.Empty(t, volumes)
		assert.Nil(t, meta)
	})
}

func TestGetResource(t *testing.T) {
	t.Parallel()

	t.Run("zero identifier fails before the network", func(t *testing.T) {
		t.Parallel()

		var hits int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
		}))
		defer server.Close()

		_, err := getResource[strato.Server](context.Background(), newTestHTTPClient(server.URL), familyServers, 0)
		require.ErrorIs(t, err, strato.ErrMissingIdentifier)
		assert.Equal(t, 0, hits)
	})

	t.Run("path carries the identifier", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/servers/42", r.URL.Path)

			_, _ = w.Write([]byte(`{"server": {"id": 42}}`))
		}))
		defer server.Close()

		result, err := getResource[strato.Server](context.Background(), newTestHTTPClient(server.URL), familyServers, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), result.ID)
	})
}

func TestMutatingHelpers_ZeroIdentifier(t *testing.T) {
	t.Parallel()

	var hits int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	httpClient := newTestHTTPClient(server.URL)
	ctx := context.Background()

	_, err := updateResource[strato.Server](ctx, httpClient, familyServers, 0, nil)
	require.ErrorIs(t, err, strato.ErrMissingIdentifier)

	err = deleteResource(ctx, httpClient, familyServers, 0)
	require.ErrorIs(t, err, strato.ErrMissingIdentifier)

	_, err = performAction(ctx, httpClient, familyServers, 0, "poweron", nil)
	require.ErrorIs(t, err, strato.ErrMissingIdentifier)

	assert.Equal(t, 0, hits)
}

func TestPerformAction(t *testing.T) {
	t.Parallel()

	t.Run("posts to the sub-action endpoint", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/servers/42/actions/poweron", r.URL.Path)

			_, _ = w.Write([]byte(`{"action": {"id": 7, "command": "start_server", "status": "running"}}`))
		}))
		defer server.Close()

		action, err := performAction(context.Background(), newTestHTTPClient(server.URL), familyServers, 42, "poweron", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(7), action.ID)
		assert.Equal(t, "start_server", action.Command)
		assert.True(t, action.Running())
	})

	t.Run("missing action key is a protocol violation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"server": {"id": 42}}`))
		}))
		defer server.Close()

		_, err := performAction(context.Background(), newTestHTTPClient(server.URL), familyServers, 42, "reboot", nil)

		envErr := &strato.EnvelopeError{}
		require.ErrorAs(t, err, &envErr)
		assert.Equal(t, "action", envErr.Key)
	})
}

func TestDeleteResource_EmptyBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/ssh_keys/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := deleteResource(context.Background(), newTestHTTPClient(server.URL), familySSHKeys, 5)
	require.NoError(t, err)
}

func TestResourcePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/servers/42", resourcePath(familyServers, 42))
	assert.Equal(t, "/floating_ips/1", resourcePath(familyFloatingIPs, 1))
	assert.Equal(t, "/server_types/3", resourcePath(familyServerTypes, 3))
}
