// Package services wraps the contest backend REST API. Each call is a single
// request with no retry or caching; failures are returned as-is.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/jrsteele09/go-contest-portal/internal/metrics"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const maxErrorBody = 512

// Client is the shared base client all wrappers go through
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL (e.g., "https://api.example.com/api")
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// StatusError is returned for non-2xx backend responses
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: backend returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return errors.ErrBackend
}

// authorised returns an http.Client that sends token as a bearer credential
func (c *Client) authorised(ctx context.Context, token string) *http.Client {
	if token == "" {
		return c.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
	hc.Timeout = c.httpClient.Timeout
	return hc
}

// do sends one request and returns the raw body of a 2xx response
func (c *Client) do(ctx context.Context, token, method, path, endpoint string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.authorised(ctx, token).Do(req)
	if err != nil {
		metrics.BackendRequestDuration.WithLabelValues(endpoint, "error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequestDuration.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Dur("took", time.Since(start)).Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// get performs a GET and decodes the unwrapped payload into out
func (c *Client) get(ctx context.Context, token, path, endpoint string, out any) error {
	data, err := c.do(ctx, token, http.MethodGet, path, endpoint, nil)
	if err != nil {
		return err
	}
	return decode(http.MethodGet, path, data, out)
}

func decode(method, path string, body []byte, out any) error {
	if err := json.Unmarshal(unwrap(body), out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
