package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/strato-io/strato/internal/http"
	"github.com/strato-io/strato/pkg/strato"
)

// Generic request helpers. Every resource family is served by the same five
// operations plus sub-action dispatch; the family table supplies paths and
// envelope keys.

func listResources[T any](ctx context.Context, httpClient *http.Client, fam family, opts *strato.ListOpts) ([]T, *strato.Meta, error) {
	return listResourcesRaw[T](ctx, httpClient, fam, opts.Encode())
}

// listResourcesRaw issues a list request with a verbatim query string,
// enabling raw pagination/cursor continuation handed back by the API.
func listResourcesRaw[T any](ctx context.Context, httpClient *http.Client, fam family, rawQuery string) ([]T, *strato.Meta, error) {
	resp, err := httpClient.Get(ctx, "/"+fam.path, rawQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("listing %s: %w", fam.path, err)
	}

	return decodeEnvelopedList[T](resp.Body, fam.plural)
}

func getResource[T any](ctx context.Context, httpClient *http.Client, fam family, id int64) (*T, error) {
	if id == 0 {
		return nil, fmt.Errorf("getting %s: %w", fam.singular, strato.ErrMissingIdentifier)
	}

	resp, err := httpClient.Get(ctx, resourcePath(fam, id), "")
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", fam.singular, err)
	}

	return decodeEnveloped[T](resp.Body, fam.singular)
}

func createResource[T any](ctx context.Context, httpClient *http.Client, fam family, body interface{}) (*T, error) {
	resp, err := httpClient.Post(ctx, "/"+fam.path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", fam.singular, err)
	}

	return decodeEnveloped[T](resp.Body, fam.singular)
}

func updateResource[T any](ctx context.Context, httpClient *http.Client, fam family, id int64, body interface{}) (*T, error) {
	if id == 0 {
		return nil, fmt.Errorf("updating %s: %w", fam.singular, strato.ErrMissingIdentifier)
	}

	resp, err := httpClient.Put(ctx, resourcePath(fam, id), body)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", fam.singular, err)
	}

	return decodeEnveloped[T](resp.Body, fam.singular)
}

// deleteResource issues a bare DELETE; the response body is typically empty,
// so no envelope unwrap is attempted.
func deleteResource(ctx context.Context, httpClient *http.Client, fam family, id int64) error {
	if id == 0 {
		return fmt.Errorf("deleting %s: %w", fam.singular, strato.ErrMissingIdentifier)
	}

	_, err := httpClient.Delete(ctx, resourcePath(fam, id))
	if err != nil {
		return fmt.Errorf("deleting %s: %w", fam.singular, err)
	}

	return nil
}

// performAction posts to a resource's sub-action endpoint and returns the
// unwrapped asynchronous action reference.
func performAction(ctx context.Context, httpClient *http.Client, fam family, id int64, name string, body interface{}) (*strato.Action, error) {
	if id == 0 {
		return nil, fmt.Errorf("%s %s: %w", name, fam.singular, strato.ErrMissingIdentifier)
	}

	resp, err := httpClient.Post(ctx, resourcePath(fam, id)+"/actions/"+name, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", name, fam.singular, err)
	}

	return decodeEnveloped[strato.Action](resp.Body, "action")
}

// performActionResult posts to a sub-action endpoint whose response carries
// payload alongside the action (generated passwords, console credentials).
// The action key is still required: its absence is a protocol violation. The
// full envelope is then decoded into T.
func performActionResult[T any](ctx context.Context, httpClient *http.Client, fam family, id int64, name string, body interface{}) (*T, error) {
	if id == 0 {
		return nil, fmt.Errorf("%s %s: %w", name, fam.singular, strato.ErrMissingIdentifier)
	}

	resp, err := httpClient.Post(ctx, resourcePath(fam, id)+"/actions/"+name, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", name, fam.singular, err)
	}

	if _, err := unwrapEnvelope(resp.Body, "action"); err != nil {
		return nil, err
	}

	var out T

	err = json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %s result: %w", name, err)
	}

	return &out, nil
}

func resourcePath(fam family, id int64) string {
	return "/" + fam.path + "/" + strconv.FormatInt(id, 10)
}

func wrapMissingID(action string, fam family) error {
	return fmt.Errorf("%s %s: %w", action, fam.singular, strato.ErrMissingIdentifier)
}

func wrapActionErr(action string, fam family, err error) error {
	return fmt.Errorf("%s %s: %w", action, fam.singular, err)
}
