package prince

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Messenger answers a flavor-text request with a single line.
type Messenger interface {
	Message(ctx context.Context, req Request) (string, error)
}

// ErrEmptyMessage is returned when a backend answers with nothing to say.
var ErrEmptyMessage = errors.New("empty message")

// HTTPClient posts requests to a flavor-text endpoint such as the one served
// by "littleprince serve".
type HTTPClient struct {
	Endpoint string
	HTTP     *http.Client
}

// NewHTTPClient targets endpoint, e.g. http://localhost:3001/api/prince.
func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{Endpoint: endpoint, HTTP: http.DefaultClient}
}

func (c *HTTPClient) Message(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode prince request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build prince request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("prince request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("prince request: HTTP %d", resp.StatusCode)
	}
	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode prince response: %w", err)
	}
	if strings.TrimSpace(out.Message) == "" {
		return "", ErrEmptyMessage
	}
	return out.Message, nil
}
