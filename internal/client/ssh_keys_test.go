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

func TestSSHKeysClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/ssh_keys", r.URL.Path)

		var body strato.SSHKeyCreateRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "deploy", body.Name)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ssh_key": {
			"id": 5, "name": "deploy",
			"fingerprint": "b7:2f:30:a0:2f:6c:58:6c:21:04:58:61:ba:06:3b:2f",
			"public_key": "ssh-ed25519 AAAA..."
		}}`))
	}))
	defer server.Close()

	sshKeys := NewSSHKeysClient(newTestHTTPClient(server.URL))

	created, err := sshKeys.Create(context.Background(), &strato.SSHKeyCreateRequest{
		Name:      "deploy",
		PublicKey: "ssh-ed25519 AAAA...",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.NotEmpty(t, created.Fingerprint)
}

func TestSSHKeysClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ssh_keys", r.URL.Path)
		assert.Equal(t, "fingerprint=aa%3Abb", r.URL.RawQuery)

		_, _ = w.Write([]byte(`{"ssh_keys": [{"id": 5, "name": "deploy"}]}`))
	}))
	defer server.Close()

	sshKeys := NewSSHKeysClient(newTestHTTPClient(server.URL))

	keys, _, err := sshKeys.List(context.Background(), strato.NewListOpts().WithFilter("fingerprint", "aa:bb"))
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "deploy", keys[0].Name)
}

func TestSSHKeysClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/ssh_keys/5", r.URL.Path)

		_, _ = w.Write([]byte(`{"ssh_key": {"id": 5, "name": "deploy-new"}}`))
	}))
	defer server.Close()

	sshKeys := NewSSHKeysClient(newTestHTTPClient(server.URL))

	updated, err := sshKeys.Update(context.Background(), 5, &strato.SSHKeyUpdateRequest{Name: "deploy-new"})
	require.NoError(t, err)
	assert.Equal(t, "deploy-new", updated.Name)
}
