package bybit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bygate/internal/config"
	"bygate/internal/pkg/circuit"
)

// Client is the signed REST transport for the v5 API. Retry policy is the
// caller's; the client only refuses calls while its breaker is open.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	apiKey     string
	apiSecret  string
	recvWindow string
	breaker    *circuit.CircuitBreaker
	now        func() time.Time
}

// NewClient constructs a venue client from configuration.
func NewClient(cfg config.BybitConfig) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("bybit.base_url cannot be empty")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing bybit.base_url failed: %w", err)
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	recvWindow := cfg.RecvWindowMS
	if recvWindow <= 0 {
		recvWindow = 5000
	}
	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiSecret:  strings.TrimSpace(cfg.APISecret),
		recvWindow: strconv.Itoa(recvWindow),
		breaker:    circuit.NewCircuitBreaker("bybit-rest", 5, 30*time.Second),
		now:        time.Now,
	}, nil
}

// SetHTTPClient sets the HTTP client for testing.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, nil, payload, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("bybit client not initialized")
	}
	endpoint := c.resolveEndpoint(path)

	var body []byte
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request failed: %w", err)
		}
		body = buf
	}
	queryStr := ""
	if query != nil {
		queryStr = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("building request failed: %w", err)
	}
	req.URL.RawQuery = queryStr

	ts := strconv.FormatInt(c.now().UnixMilli(), 10)
	signPayload := queryStr
	if method == http.MethodPost {
		signPayload = string(body)
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-BAPI-API-KEY", c.apiKey)
	req.Header.Set("X-BAPI-TIMESTAMP", ts)
	req.Header.Set("X-BAPI-RECV-WINDOW", c.recvWindow)
	req.Header.Set("X-BAPI-SIGN", sign(c.apiSecret, ts, c.apiKey, c.recvWindow, signPayload))

	var raw []byte
	err = c.breaker.Do(func() error {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("calling bybit failed: %w", err)
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return fmt.Errorf("reading bybit response failed: %w", err)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			if resp.StatusCode >= 300 {
				return fmt.Errorf("bybit returned %s with an empty body", resp.Status)
			}
			return fmt.Errorf("bybit returned an empty body")
		}
		raw = data
		return nil
	})
	if err != nil {
		return err
	}

	// The envelope decides success, not the HTTP status: rejections come
	// back 200 with a non-zero retCode.
	return classifyResponse(raw, out)
}

func (c *Client) resolveEndpoint(path string) *url.URL {
	trimmed := strings.TrimSpace(path)
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + trimmed
	endpoint.RawQuery = ""
	endpoint.Fragment = ""
	return &endpoint
}
