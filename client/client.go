// Package client talks to the notebook service over its HTTP contents API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dkrizic/nbmem/api"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrNotFound is returned when the service reports a missing notebook.
var ErrNotFound = errors.New("notebook not found")

// Client is an instrumented HTTP client for the contents API.
type Client struct {
	base   string
	client *http.Client
}

// New creates a client for the service at the given endpoint, for example
// "http://localhost:8080".
func New(endpoint string) *Client {
	return &Client{
		base: strings.TrimSuffix(endpoint, "/"),
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// List returns the directory listing for the given path ("" for the root).
func (c *Client) List(ctx context.Context, path string) (api.Listing, error) {
	var listing api.Listing
	err := c.do(ctx, http.MethodGet, c.url(path), nil, &listing)
	return listing, err
}

// Get returns a notebook including its content. The reference is the full
// path of the notebook, for example "work/a.ipynb".
func (c *Client) Get(ctx context.Context, ref string) (api.Model, error) {
	var model api.Model
	err := c.do(ctx, http.MethodGet, c.url(ref), nil, &model)
	return model, err
}

// Save stores or overwrites a notebook.
func (c *Client) Save(ctx context.Context, ref string, content json.RawMessage) (api.Model, error) {
	var model api.Model
	err := c.do(ctx, http.MethodPut, c.url(ref), api.SaveRequest{Content: content}, &model)
	return model, err
}

// Create asks the service for a fresh notebook in the given directory.
func (c *Client) Create(ctx context.Context, path, basename string) (api.Model, error) {
	var model api.Model
	err := c.do(ctx, http.MethodPost, c.url(path), api.CreateRequest{Basename: basename}, &model)
	return model, err
}

// Rename moves a notebook to the location named by newRef.
func (c *Client) Rename(ctx context.Context, ref, newRef string) (api.Model, error) {
	newPath, newName := splitName(newRef)
	var model api.Model
	err := c.do(ctx, http.MethodPatch, c.url(ref), api.RenameRequest{Path: &newPath, Name: &newName}, &model)
	return model, err
}

// Delete removes a notebook.
func (c *Client) Delete(ctx context.Context, ref string) error {
	return c.do(ctx, http.MethodDelete, c.url(ref), nil, nil)
}

// Version returns the service meta information.
func (c *Client) Version(ctx context.Context) (api.VersionResponse, error) {
	var version api.VersionResponse
	err := c.do(ctx, http.MethodGet, c.base+"/version", nil, &version)
	return version, err
}

func (c *Client) url(ref string) string {
	ref = strings.Trim(ref, "/")
	if ref == "" {
		return c.base + "/api/contents"
	}
	return c.base + "/api/contents/" + ref
}

func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr api.Error
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", apiErr.Message, ErrNotFound)
		}
		return fmt.Errorf("request failed: %s", apiErr.Message)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// splitName splits "work/a.ipynb" into directory path and notebook name.
func splitName(ref string) (path, name string) {
	ref = strings.Trim(ref, "/")
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[:idx], ref[idx+1:]
	}
	return "", ref
}
