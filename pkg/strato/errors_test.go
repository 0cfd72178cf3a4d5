package strato_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strato-io/strato/pkg/strato"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &strato.APIError{Code: "not_found", Message: "server not found", Status: 404}
	assert.Equal(t, "server not found (not_found)", err.Error())
}

func TestEnvelopeError_Error(t *testing.T) {
	t.Parallel()

	err := &strato.EnvelopeError{Key: "server", Envelope: []byte(`{"action": {}}`)}
	assert.Contains(t, err.Error(), `"server"`)
	assert.Contains(t, err.Error(), `{"action": {}}`)
}

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		check   func(error) bool
		matches bool
	}{
		{
			name:    "not found",
			err:     &strato.APIError{Code: strato.ErrorCodeNotFound},
			check:   strato.IsNotFound,
			matches: true,
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("getting server: %w", &strato.APIError{Code: strato.ErrorCodeNotFound}),
			check:   strato.IsNotFound,
			matches: true,
		},
		{
			name:    "unauthorized",
			err:     &strato.APIError{Code: strato.ErrorCodeUnauthorized},
			check:   strato.IsUnauthorized,
			matches: true,
		},
		{
			name:    "rate limited",
			err:     &strato.APIError{Code: strato.ErrorCodeRateLimit},
			check:   strato.IsRateLimited,
			matches: true,
		},
		{
			name:    "wrong code",
			err:     &strato.APIError{Code: strato.ErrorCodeLocked},
			check:   strato.IsNotFound,
			matches: false,
		},
		{
			name:    "unrelated error",
			err:     errors.New("boom"),
			check:   strato.IsNotFound,
			matches: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.matches, testCase.check(testCase.err))
		})
	}
}

func TestSentinelErrorsWrap(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting server: %w", strato.ErrMissingIdentifier)
	require.ErrorIs(t, wrapped, strato.ErrMissingIdentifier)

	wrapped = fmt.Errorf("after 30 attempts: %w", strato.ErrPollTimeout)
	require.ErrorIs(t, wrapped, strato.ErrPollTimeout)
}
