package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/potatoworkshop/trellobot/internal/domain"
	"github.com/potatoworkshop/trellobot/internal/ports"
)

const (
	DefaultBaseURL = "https://api.trello.com/1"
	DefaultTimeout = 20 * time.Second

	maxResponseBytes  = 1 << 20
	maxErrorBodyRunes = 300
)

// Client implements ports.Gateway against a Trello-compatible REST API.
// Credentials travel as query parameters on every request; the client
// keeps no per-call state beyond the HTTP connection pool.
type Client struct {
	baseURL string
	http    *http.Client
	log     *log.Logger
}

var _ ports.Gateway = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// request performs one call and returns the raw body. 401/403 map to
// domain.ErrAuth, any other non-2xx to *domain.APIError with a truncated
// body, and transport failures (including timeouts) to *domain.APIError
// with a "Network error" detail and no status code.
func (c *Client) request(ctx context.Context, creds domain.Credentials, method, path string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("key", creds.APIKey)
	query.Set("token", creds.Token)

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, method, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("trello request failed", "method", method, "path", path, "err", err)
		return nil, &domain.APIError{Detail: fmt.Sprintf("Network error: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.APIError{Detail: fmt.Sprintf("Network error: %v", err)}
	}

	c.log.Debug("trello request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrAuth
	case resp.StatusCode >= 400:
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Detail: truncate(string(body), maxErrorBodyRunes)}
	}

	return body, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// decodeObject fills out from an object-shaped body. An empty body reads
// as an empty object. A body that is valid JSON but not an object fails
// with ShapeError; a body that is not JSON at all is not an error: the
// raw text is carried on the value (out stays zero otherwise) so callers
// can still inspect it.
func decodeObject(endpoint string, body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if !json.Valid(trimmed) {
		if carrier, ok := out.(interface{ SetRawText(string) }); ok {
			carrier.SetRawText(string(trimmed))
		}
		return nil
	}
	if trimmed[0] != '{' {
		return &domain.ShapeError{Endpoint: endpoint, Got: jsonKind(trimmed)}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return &domain.ShapeError{Endpoint: endpoint, Got: "object with unexpected field types"}
	}
	return nil
}

// decodeList fills out (a pointer to a slice) from a list-shaped body
// whose every element is object-shaped.
func decodeList(endpoint string, body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) || trimmed[0] != '[' {
		return &domain.ShapeError{Endpoint: endpoint, Got: jsonKind(trimmed)}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return &domain.ShapeError{Endpoint: endpoint, Got: "malformed list"}
	}
	for _, element := range elements {
		if kind := jsonKind(bytes.TrimSpace(element)); kind != "object" {
			return &domain.ShapeError{Endpoint: endpoint, Got: "list containing " + kind}
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return &domain.ShapeError{Endpoint: endpoint, Got: "list with unexpected field types"}
	}
	return nil
}

func jsonKind(trimmed []byte) string {
	if len(trimmed) == 0 {
		return "empty body"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "list"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		if json.Valid(trimmed) {
			return "number"
		}
		return "text"
	}
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
