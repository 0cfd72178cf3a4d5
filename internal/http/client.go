// Package http implements the HTTP transport for the Strato API: one
// request, one JSON response, bearer token auth, transient-failure retries.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/strato-io/strato/internal/constants"
	"github.com/strato-io/strato/pkg/strato"
)

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   string
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response. Body is always a JSON document: an
// empty response body is normalized to "{}" so downstream envelope lookups
// can operate unconditionally.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is an HTTP client for the Strato API.
type Client struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     strato.Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger strato.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the transient-failure retry policy.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds a single request round trip.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new API client. The token is attached as a Bearer
// authorization header on every request.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Keep the final 5xx/429 response once the retry budget runs out, so its
	// error envelope can be decoded instead of an opaque "giving up" error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.HTTPClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request against the API.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logRequest(req)

	// With the passthrough error handler an exhausted retry budget still
	// hands back the final response; only a nil response is a transport
	// failure.
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil && httpResp == nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	c.logResponse(req, resp)

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, parseAPIError(resp)
	}

	return resp, nil
}

// Get performs a GET request. A non-empty query is appended verbatim; use
// strato.EncodeQuery for the canonical form.
func (c *Client) Get(ctx context.Context, path, query string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	requestURL := c.baseURL + req.Path
	if req.Query != "" {
		requestURL += "?" + req.Query
	}

	var bodyReader io.Reader

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

func (c *Client) logRequest(req *Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    c.baseURL + req.Path,
		"query":  req.Query,
	})
}

func (c *Client) logResponse(req *Request, resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
		"status": resp.StatusCode,
		"body":   string(resp.Body),
	}

	// Rate-limit headers are the only client-visible backpressure signal.
	for _, header := range []string{"RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"} {
		if value := resp.Headers.Get(header); value != "" {
			fields[header] = value
		}
	}

	c.logger.Debug("HTTP Response", fields)
}

// parseAPIError decodes the error envelope of a non-2xx response. Responses
// that do not carry a decodable error envelope are reported with their status
// code alone.
func parseAPIError(resp *Response) error {
	var envelope struct {
		Error *strato.APIError `json:"error"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err == nil && envelope.Error != nil && envelope.Error.Code != "" {
		envelope.Error.Status = resp.StatusCode

		return envelope.Error
	}

	return &strato.APIError{
		Code:    strato.ErrorCodeServiceError,
		Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		Status:  resp.StatusCode,
	}
}
