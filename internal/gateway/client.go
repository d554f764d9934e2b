package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Kind classifies a backend failure for the layers above. The gateway never
// acts on a kind itself (no token refresh, no retry); it only labels.
type Kind int

const (
	KindTransport Kind = iota
	KindAuth
	KindForbidden
	KindNotFound
	KindValidation
	KindServer
)

// APIError carries the status and a best-effort human message extracted from
// the backend's response body.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
}

// TokenSource yields the current bearer token, empty when logged out.
type TokenSource interface {
	Token() string
}

// Client manages communication with the HomiFy backend REST API. Requests
// carry the session's bearer token when one exists; without a token they go
// out unauthenticated and the server enforces access control.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
}

// New builds a client for the given base URL (e.g. http://host:8080/api).
// No client-side timeout is set: a hung request is bounded only by the host
// network stack, matching the original front end.
func New(baseURL string, tokens TokenSource) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	return &Client{base: parsed, http: &http.Client{}, tokens: tokens}, nil
}

// do executes one request with the stored session token.
func (c *Client) do(ctx context.Context, method, reqPath string, query url.Values, body, out any) error {
	tok := ""
	if c.tokens != nil {
		tok = c.tokens.Token()
	}
	return c.doWithToken(ctx, tok, method, reqPath, query, body, out)
}

// doWithToken executes one request with an explicit bearer token. The auth
// flow needs this before the session exists.
func (c *Client) doWithToken(ctx context.Context, token, method, reqPath string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = path.Join(c.base.Path, reqPath)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorFromResponse(resp *http.Response) error {
	b, _ := io.ReadAll(resp.Body)
	msg := extractMessage(b)

	kind := KindServer
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = KindAuth
	case http.StatusForbidden:
		kind = KindForbidden
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindValidation
	}
	return &APIError{Kind: kind, Status: resp.StatusCode, Message: msg}
}

// extractMessage digs a readable string out of the backend's error body. The
// signin endpoint uses the literal key "errorMessage: " (with colon and
// space); other endpoints use "message" or "error".
func extractMessage(body []byte) string {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return strings.TrimSpace(string(body))
	}
	for _, k := range []string{"message", "errorMessage: ", "error"} {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return strings.TrimSpace(string(body))
}
