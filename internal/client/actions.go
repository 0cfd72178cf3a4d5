package client

import (
	"context"
	"fmt"
	"time"

	"github.com/strato-io/strato/internal/constants"
	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// ActionsClient implements strato.ActionsClient.
type ActionsClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollMaxWait  time.Duration
}

// NewActionsClient creates a new actions client. Zero durations select the
// defaults.
func NewActionsClient(httpClient *http.Client, pollInterval, pollMaxWait time.Duration) *ActionsClient {
	if pollInterval <= 0 {
		pollInterval = constants.DefaultPollInterval
	}

	if pollMaxWait <= 0 {
		pollMaxWait = constants.DefaultPollMaxWait
	}

	return &ActionsClient{
		httpClient:   httpClient,
		pollInterval: pollInterval,
		pollMaxWait:  pollMaxWait,
	}
}

// List implements strato.ActionsClient.List.
func (c *ActionsClient) List(ctx context.Context, opts *strato.ListOpts) ([]strato.Action, *strato.Meta, error) {
	return listResources[strato.Action](ctx, c.httpClient, familyActions, opts)
}

// Get implements strato.ActionsClient.Get.
func (c *ActionsClient) Get(ctx context.Context, id int64) (*strato.Action, error) {
	return getResource[strato.Action](ctx, c.httpClient, familyActions, id)
}

// Wait implements strato.ActionsClient.Wait.
func (c *ActionsClient) Wait(ctx context.Context, id int64) (*strato.Action, error) {
	return c.WaitFor(ctx, id, c.pollMaxWait)
}

// WaitFor polls the action until it leaves the running status or the attempt
// budget derived from maxWait is exhausted. Terminal actions are returned
// whether they succeeded or failed; callers inspect Status themselves.
func (c *ActionsClient) WaitFor(ctx context.Context, id int64, maxWait time.Duration) (*strato.Action, error) {
	attempts := int(maxWait / c.pollInterval)
	if attempts < 1 {
		attempts = 1
	}

	return pollUntil(ctx, attempts, c.pollInterval, func(ctx context.Context) (*strato.Action, error) {
		action, err := c.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		if action.Running() {
			return nil, nil
		}

		return action, nil
	})
}

// pollUntil invokes probe up to maxAttempts times with delay applied between
// attempts (not before the first). The first non-nil result wins and is
// returned immediately; a probe error aborts polling. When all attempts
// yield nil, strato.ErrPollTimeout is returned.
func pollUntil[T any](ctx context.Context, maxAttempts int, delay time.Duration, probe func(context.Context) (*T, error)) (*T, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()

				return nil, fmt.Errorf("polling canceled: %w", ctx.Err())
			case <-timer.C:
			}
		}

		result, err := probe(ctx)
		if err != nil {
			return nil, err
		}

		if result != nil {
			return result, nil
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, strato.ErrPollTimeout)
}
