// Package client is the JSON client for the applications API. It satisfies
// the wizard's persistence gateway.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/domain/form"
	"github.com/visaquest/visaquest-go/pkg/response"
)

var ErrNotFound = errors.New("application not found")

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for a server root like "http://localhost:5000".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) List(ctx context.Context) ([]form.Application, error) {
	var apps []form.Application
	err := c.do(ctx, http.MethodGet, "/api/applications", nil, &apps)
	return apps, err
}

func (c *Client) Create(ctx context.Context, app form.Application) (form.Application, error) {
	var created form.Application
	err := c.do(ctx, http.MethodPost, "/api/applications", app, &created)
	return created, err
}

func (c *Client) Get(ctx context.Context, id uuid.UUID) (form.Application, error) {
	var app form.Application
	err := c.do(ctx, http.MethodGet, "/api/applications/"+id.String(), nil, &app)
	return app, err
}

func (c *Client) Update(ctx context.Context, id uuid.UUID, app form.Application) (form.Application, error) {
	var updated form.Application
	err := c.do(ctx, http.MethodPut, "/api/applications/"+id.String(), app, &updated)
	return updated, err
}

func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/applications/"+id.String(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode >= 400 {
		var apiErr response.ErrorResponse
		if decodeErr := json.NewDecoder(res.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
