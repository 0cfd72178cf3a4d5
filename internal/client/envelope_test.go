package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strato-io/strato/pkg/strato"
)

func TestUnwrapEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("extracts value at key", func(t *testing.T) {
		t.Parallel()

		value, err := unwrapEnvelope([]byte(`{"server": {"id": 42, "name": "web-1"}}`), "server")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 42, "name": "web-1"}`, string(value))
	})

	t.Run("missing key is a protocol violation", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"action": {"id": 1}}`)

		_, err := unwrapEnvelope(body, "server")

		envErr := &strato.EnvelopeError{}
		require.ErrorAs(t, err, &envErr)
		assert.Equal(t, "server", envErr.Key)
		assert.Equal(t, body, envErr.Envelope)
	})

	t.Run("empty object envelope is missing every key", func(t *testing.T) {
		t.Parallel()

		_, err := unwrapEnvelope([]byte(`{}`), "server")

		envErr := &strato.EnvelopeError{}
		require.ErrorAs(t, err, &envErr)
	})

	t.Run("present null value is returned verbatim", func(t *testing.T) {
		t.Parallel()

		value, err := unwrapEnvelope([]byte(`{"server": null}`), "server")
		require.NoError(t, err)
		assert.Equal(t, "null", string(value))
	})

	t.Run("present empty list is a valid result", func(t *testing.T) {
		t.Parallel()

		value, err := unwrapEnvelope([]byte(`{"servers": []}`), "servers")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(value))
	})

	t.Run("malformed envelope", func(t *testing.T) {
		t.Parallel()

		_, err := unwrapEnvelope([]byte(`not json`), "server")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing response envelope")
	})
}

func TestUnwrapEnvelope_AuxiliaryMerge(t *testing.T) {
	t.Parallel()

	t.Run("action and root_password merged into resource", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"server": {"id": 42, "name": "web-1"},
			"action": {"id": 7, "command": "create_server", "status": "running"},
			"root_password": "s3cret",
			"next_actions": [{"id": 8, "command": "start_server", "status": "running"}]
		}`)

		value, err := unwrapEnvelope(body, "server")
		require.NoError(t, err)

		var merged map[string]json.RawMessage

		require.NoError(t, json.Unmarshal(value, &merged))
		assert.Contains(t, merged, "id")
		assert.Contains(t, merged, "action")
		assert.Contains(t, merged, "root_password")
		assert.Contains(t, merged, "next_actions")
	})

	t.Run("resource keys win over siblings", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"server": {"id": 42, "action": {"id": 1}},
			"action": {"id": 99}
		}`)

		value, err := unwrapEnvelope(body, "server")
		require.NoError(t, err)

		var merged struct {
			Action struct {
				ID int64 `json:"id"`
			} `json:"action"`
		}

		require.NoError(t, json.Unmarshal(value, &merged))
		assert.Equal(t, int64(1), merged.Action.ID)
	})

	t.Run("no merge when unwrapping an auxiliary key", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"action": {"id": 7, "status": "running"},
			"root_password": "s3cret"
		}`)

		value, err := unwrapEnvelope(body, "action")
		require.NoError(t, err)

		var action map[string]json.RawMessage

		require.NoError(t, json.Unmarshal(value, &action))
		assert.NotContains(t, action, "root_password")
	})

	t.Run("non-object values are left untouched", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"servers": [{"id": 1}], "action": {"id": 7}}`)

		value, err := unwrapEnvelope(body, "servers")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id": 1}]`, string(value))
	})

	t.Run("unlisted siblings are not merged", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"server": {"id": 42}, "meta": {"pagination": {}}}`)

		value, err := unwrapEnvelope(body, "server")
		require.NoError(t, err)

		var merged map[string]json.RawMessage

		require.NoError(t, json.Unmarshal(value, &merged))
		assert.NotContains(t, merged, "meta")
	})
}

func TestDecodeEnveloped(t *testing.T) {
	t.Parallel()

	t.Run("typed resource with spliced auxiliaries", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"server": {"id": 42, "name": "web-1", "status": "initializing"},
			"action": {"id": 7, "command": "create_server", "status": "running", "progress": 0},
			"root_password": "s3cret"
		}`)

		server, err := decodeEnveloped[strato.Server](body, "server")
		require.NoError(t, err)
		assert.Equal(t, int64(42), server.ID)
		assert.Equal(t, "web-1", server.Name)
		require.NotNil(t, server.Action)
		assert.Equal(t, int64(7), server.Action.ID)
		assert.Equal(t, "create_server", server.Action.Command)
		assert.Equal(t, "s3cret", server.RootPassword)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := decodeEnveloped[strato.Server]([]byte(`{"server": [1, 2]}`), "server")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing server")
	})
}

func TestDecodeEnvelopedList(t *testing.T) {
	t.Parallel()

	t.Run("collection with meta", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"servers": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}],
			"meta": {"pagination": {"page": 1, "per_page": 25, "total_entries": 2}}
		}`)

		servers, meta, err := decodeEnvelopedList[strato.Server](body, "servers")
		require.NoError(t, err)
		assert.Len(t, servers, 2)
		require.NotNil(t, meta)
		require.NotNil(t, meta.Pagination)
		require.NotNil(t, meta.Pagination.TotalEntries)
		assert.Equal(t, 2, *meta.Pagination.TotalEntries)
	})

	t.Run("collection without meta", func(t *testing.T) {
		t.Parallel()

		servers, meta, err := decodeEnvelopedList[strato.Server]([]byte(`{"servers": []}`), "servers")
		require.NoError(t, err)
		assert.Empty(t, servers)
		assert.Nil(t, meta)
	})

	t.Run("missing collection key", func(t *testing.T) {
		t.Parallel()

		_, _, err := decodeEnvelopedList[strato.Server]([]byte(`{"meta": {}}`), "servers")

		envErr := &strato.EnvelopeError{}
		require.ErrorAs(t, err, &envErr)
	})
}
