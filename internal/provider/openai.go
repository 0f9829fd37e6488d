package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nunajera/assistant-relay/internal"
)

// Client posts OpenAI-compatible chat-completion payloads.
type Client struct {
	client  *http.Client
	timeout time.Duration
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

func (c *Client) Timeout() time.Duration { return c.timeout }

// Complete sends payload to u and reports the outcome. Network errors and
// timeouts come back as a failed result with Status 0, never as a panic or error.
func (c *Client) Complete(ctx context.Context, u Upstream, payload []byte) internal.UpstreamResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return internal.UpstreamResult{Err: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+u.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return internal.UpstreamResult{Err: describeTransportError(err, c.timeout)}
	}
	defer resp.Body.Close()

	// A body that fails mid-read is a transport failure whatever the status line said.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return internal.UpstreamResult{Err: describeTransportError(err, c.timeout)}
	}

	text := string(body)
	return internal.UpstreamResult{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Text:   text,
		JSON:   parseBody(body),
	}
}

// parseBody keeps valid JSON as is and wraps anything else as {"rawText": ...}.
func parseBody(body []byte) []byte {
	if len(bytes.TrimSpace(body)) > 0 && gjson.ValidBytes(body) {
		return body
	}
	wrapped, err := sjson.SetBytes([]byte(`{}`), "rawText", string(body))
	if err != nil {
		return []byte(`{}`)
	}
	return wrapped
}

func describeTransportError(err error, timeout time.Duration) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Sprintf("timeout after %s: %v", timeout, err)
	}
	return err.Error()
}
