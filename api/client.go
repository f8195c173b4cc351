// ABOUTME: HTTP client for the property-management backend
// ABOUTME: Bearer-token requests, ULID correlation IDs and the error taxonomy
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Sentinel errors for the two status classes the UI treats specially.
// Everything else surfaces as *APIError behind a generic message.
var (
	// ErrConflict maps 409: an active contract already exists for the property.
	ErrConflict = errors.New("active contract already exists for this property")
	// ErrUnauthorized maps 401: the session token is missing or expired.
	ErrUnauthorized = errors.New("not authenticated")
)

// APIError is any other non-2xx response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client talks to the backend REST API. All methods take a context and
// return explicit errors; the client never interprets HTTP semantics beyond
// the status-code class.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	log        *zap.Logger
	entropy    io.Reader
}

// NewClient creates a Client bound to a session and logger.
func NewClient(baseURL string, session *Session, log *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		session:    session,
		log:        log,
		entropy:    ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// requestID mints a ULID used to correlate client logs with backend logs.
func (c *Client) requestID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), c.entropy)
	if err != nil {
		return ""
	}
	return id.String()
}

// do performs one request. body is JSON-encoded when non-nil; out is
// JSON-decoded when non-nil and the response has content.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := c.requestID()
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err))
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Int("status", resp.StatusCode))
		switch resp.StatusCode {
		case http.StatusConflict:
			return ErrConflict
		case http.StatusUnauthorized:
			return ErrUnauthorized
		default:
			return &APIError{Status: resp.StatusCode, Body: string(data)}
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
