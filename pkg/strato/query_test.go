package strato_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strato-io/strato/pkg/strato"
)

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   map[string]string
		expected string
	}{
		{
			name:     "empty mapping",
			params:   map[string]string{},
			expected: "",
		},
		{
			name:     "nil mapping",
			params:   nil,
			expected: "",
		},
		{
			name:     "single parameter",
			params:   map[string]string{"name": "web-1"},
			expected: "name=web-1",
		},
		{
			name:     "keys sorted lexicographically",
			params:   map[string]string{"sort": "name", "label_selector": "env=prod", "name": "web"},
			expected: "label_selector=env%3Dprod&name=web&sort=name",
		},
		{
			name:     "values percent encoded",
			params:   map[string]string{"name": "a b&c"},
			expected: "name=a+b%26c",
		},
		{
			name:     "keys percent encoded",
			params:   map[string]string{"weird key": "v"},
			expected: "weird+key=v",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, strato.EncodeQuery(testCase.params))
		})
	}
}

func TestListOpts_Encode(t *testing.T) {
	t.Parallel()

	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		var opts *strato.ListOpts
		assert.Equal(t, "", opts.Encode())
	})

	t.Run("empty options", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", strato.NewListOpts().Encode())
	})

	t.Run("filters sort and pagination", func(t *testing.T) {
		t.Parallel()

		opts := strato.NewListOpts().
			WithFilter("status", "running").
			WithSort("name:asc").
			WithPage(2).
			WithPerPage(50)

		assert.Equal(t, "page=2&per_page=50&sort=name%3Aasc&status=running", opts.Encode())
	})

	t.Run("encoding is deterministic", func(t *testing.T) {
		t.Parallel()

		opts := strato.NewListOpts().
			WithFilter("name", "web").
			WithFilter("label_selector", "env=prod").
			WithFilter("status", "off")

		first := opts.Encode()
		for range 20 {
			assert.Equal(t, first, opts.Encode())
		}
	})

	t.Run("zero pagination omitted", func(t *testing.T) {
		t.Parallel()

		opts := strato.NewListOpts().WithFilter("name", "web")
		assert.Equal(t, "name=web", opts.Encode())
	})
}
