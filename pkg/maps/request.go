package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// TokenHeader carries the caller's token on every backend request.
const TokenHeader = "token"

// newRequest builds a GET request with the JSON content type and the caller's token
func newRequest(ctx context.Context, url, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: url=%s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, token)
	return req, nil
}

// get sends one request and hands back the body unchanged.
func (c *Client) get(ctx context.Context, op, url, token string) (json.RawMessage, error) {
	req, err := newRequest(ctx, url, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s request: url=%s: %w", op, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response body: url=%s, status=%s: %w", op, url, resp.Status, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Method:     req.Method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	// an empty success body reads as JSON null
	if len(body) == 0 {
		return c.passThrough(op, json.RawMessage("null")), nil
	}

	var payload json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Op: op, URL: url, Err: err}
	}

	return c.passThrough(op, payload), nil
}

// passThrough is the identity step between the transport and the caller.
func (c *Client) passThrough(op string, payload json.RawMessage) json.RawMessage {
	c.debugf("MapClient.%s(): response %s", op, payload)
	return payload
}
