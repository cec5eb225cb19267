// Package backend is the console's transport to the platform services. All
// requests go through the platform gateway base URL; per-service path prefixes
// are the callers' concern.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotFound marks a 404 from a backend service. Lookups normalize it to an
// empty result; mutations surface it to the operator.
var ErrNotFound = errors.New("resource not found")

// TransportError is a network failure or a non-404 error status. These are
// retryable by re-invoking the triggering action; nothing retries automatically.
type TransportError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("backend %s: status %d: %s", e.Op, e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is a decoded backend reply. Data holds the raw JSON body (nil for
// empty bodies such as 204s).
type Response struct {
	Status int
	Data   json.RawMessage
	op     string
}

func (r *Response) OK() bool       { return r.Status >= 200 && r.Status < 300 }
func (r *Response) NotFound() bool { return r.Status == http.StatusNotFound }

// Err maps the response status onto the console error taxonomy.
func (r *Response) Err() error {
	switch {
	case r.OK():
		return nil
	case r.NotFound():
		return ErrNotFound
	default:
		body := string(r.Data)
		if len(body) > 256 {
			body = body[:256]
		}
		return &TransportError{Op: r.op, Status: r.Status, Body: body}
	}
}

type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, client: client}
}

// AbsoluteURL renders a gateway path as the absolute address the backends
// expect in cross-resource back-references.
func (c *Client) AbsoluteURL(path string) string {
	return c.baseURL + path
}

// RelativePath strips the gateway base URL from an absolute hypermedia href
// so it can be re-issued through this client. Hrefs from other hosts are
// returned unchanged.
func (c *Client) RelativePath(href string) string {
	return strings.TrimPrefix(href, c.baseURL)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, query)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, query)
}

func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, query url.Values) (*Response, error) {
	op := method + " " + path

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if len(data) == 0 {
		data = nil
	}

	return &Response{Status: resp.StatusCode, Data: data, op: op}, nil
}
