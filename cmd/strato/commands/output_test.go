package commands

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = writer

	defer func() { os.Stdout = orig }()

	require.NoError(t, fn())
	require.NoError(t, writer.Close())

	out, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(out)
}

// Shell output must stay eval-able: variable names cannot start with a digit,
// so the row index is appended, not prepended.
func TestRenderShellRows(t *testing.T) {
	headers := []string{"id", "ip range"}

	t.Run("single row is unsuffixed", func(t *testing.T) {
		out := captureStdout(t, func() error {
			return renderShellRows(headers, [][]string{{"1", "10.0.0.0/16"}})
		})

		assert.Equal(t, "ID='1'\nIP_RANGE='10.0.0.0/16'\n", out)
	})

	t.Run("multiple rows get index suffixes", func(t *testing.T) {
		out := captureStdout(t, func() error {
			return renderShellRows(headers, [][]string{
				{"1", "10.0.0.0/16"},
				{"2", "10.1.0.0/16"},
			})
		})

		assert.Equal(t,
			"ID_0='1'\nIP_RANGE_0='10.0.0.0/16'\n"+
				"ID_1='2'\nIP_RANGE_1='10.1.0.0/16'\n", out)
	})
}

func TestShellKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "simple", header: "id", expected: "ID"},
		{name: "spaces become underscores", header: "ip range", expected: "IP_RANGE"},
		{name: "already upper", header: "NAME", expected: "NAME"},
		{name: "punctuation", header: "os-flavor", expected: "OS_FLAVOR"},
		{name: "digits survive", header: "ipv4", expected: "IPV4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, shellKey(tt.header))
		})
	}
}

func TestShellQuote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "'plain'", shellQuote("plain"))
	assert.Equal(t, "''", shellQuote(""))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestParseLabels(t *testing.T) {
	t.Parallel()

	t.Run("empty input returns nil", func(t *testing.T) {
		t.Parallel()

		labels, err := parseLabels(nil)
		require.NoError(t, err)
		assert.Nil(t, labels)
	})

	t.Run("parses pairs", func(t *testing.T) {
		t.Parallel()

		labels, err := parseLabels([]string{"env=prod", "team=infra", "empty="})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"env": "prod", "team": "infra", "empty": ""}, labels)
	})

	t.Run("rejects malformed pair", func(t *testing.T) {
		t.Parallel()

		_, err := parseLabels([]string{"no-separator"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no-separator")
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := parseLabels([]string{"=value"})
		require.Error(t, err)
	})
}

func TestParseSubnet(t *testing.T) {
	t.Parallel()

	t.Run("full triple", func(t *testing.T) {
		t.Parallel()

		subnet, err := parseSubnet("10.0.1.0/24,cloud,zone-2")
		require.NoError(t, err)
		assert.Equal(t, "10.0.1.0/24", subnet.IPRange)
		assert.Equal(t, "cloud", subnet.Type)
		assert.Equal(t, "zone-2", subnet.NetworkZone)
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Parallel()

		subnet, err := parseSubnet("10.0.1.0/24")
		require.NoError(t, err)
		assert.Equal(t, "cloud", subnet.Type)
		assert.Equal(t, "zone-1", subnet.NetworkZone)
	})

	t.Run("missing ip range", func(t *testing.T) {
		t.Parallel()

		_, err := parseSubnet(",cloud,zone-1")
		require.Error(t, err)
	})
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("42", "server")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("abc", "server")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server")

	_, err = parseID("0", "volume")
	require.Error(t, err)

	_, err = parseID("-3", "volume")
	require.Error(t, err)
}
