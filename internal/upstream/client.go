// Package upstream is the HTTP client for the platform admin REST API. The
// API is an external collaborator: the dashboard forwards the session's
// bearer credential verbatim and treats every endpoint as opaque.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/config"
)

// Client issues authenticated requests against the platform API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	log            *zap.Logger
	credential     string
	onUnauthorized func(context.Context)
}

// NewClient builds a client from configuration.
func NewClient(cfg config.UpstreamConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		log: log,
	}
}

// SetUnauthorizedHook installs the global 401 handler. The hook runs before
// the unauthorized error is returned to the caller, regardless of which
// screen issued the request.
func (c *Client) SetUnauthorizedHook(fn func(context.Context)) {
	c.onUnauthorized = fn
}

// Authed returns a copy of the client that attaches the given bearer
// credential to every request. The credential is never parsed.
func (c *Client) Authed(credential string) *Client {
	copied := *c
	copied.credential = credential
	return &copied
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, target any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.credential != "" {
		req.Header.Set("Authorization", "Bearer "+c.credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp)
		c.log.Debug("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return apiErr
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, target)
}

func (c *Client) post(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, target)
}

func (c *Client) put(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, target)
}

func (c *Client) patch(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, target)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
