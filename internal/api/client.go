// Package api wraps the finance backend's REST surface with one thin
// client per resource. Clients attach the session bearer token, map
// HTTP statuses onto the shared error taxonomy, and normalize known
// payload variants; they never touch caches or emit notifications.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

// DefaultTimeout bounds every backend call unless configured otherwise.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token; an empty string means
// the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Identity resolves the authenticated user's numeric id. User-scoped
// reads fail before any network call when no identity is available.
type Identity interface {
	UserID() (int64, error)
}

// Client is the shared HTTP transport for all resource services.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a backend client. The base URL should include the
// API prefix, e.g. http://localhost:3000/api.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do performs one request/response cycle. Pass a *json.RawMessage as
// out to receive the raw payload for boundary normalization.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	slog.Debug("Calling backend", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", common.ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrParse, method, path, err)
	}
	return nil
}

// statusError maps an HTTP status onto the error taxonomy, preserving
// the backend-provided message when one exists.
func statusError(status int, body []byte) error {
	message := backendMessage(body)

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrUnauthenticated, message)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, message)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrBadRequest, message)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", common.ErrRateLimit, message)
	case status >= 500:
		return fmt.Errorf("%w: %s", common.ErrServerFailure, message)
	default:
		return fmt.Errorf("unexpected status %d: %s", status, message)
	}
}

func backendMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "an error occurred"
	}
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
