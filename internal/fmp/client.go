// Package fmp contains the client for the Financial Modeling Prep API,
// the upstream provider of income-statement records.
package fmp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nishanthjadav/financial-backend/config"
	"github.com/nishanthjadav/financial-backend/internal/domain/models"
)

// HTTPClient describes the transport used for provider calls.
// *http.Client satisfies it; tests may substitute their own.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues requests against the Financial Modeling Prep API for one
// fixed ticker and period. It performs a single GET per call: no retries,
// no caching.
type Client struct {
	// statementsURL is the income-statement endpoint without credentials.
	statementsURL string
	// apiKey is appended as a query parameter on each request.
	apiKey string
	// httpClient is the underlying transport.
	httpClient HTTPClient
}

// ClientOption is a configuration option for the provider client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP transport used for provider calls.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithStatementsURL overrides the income-statement endpoint. Used by tests
// to point the client at a local server.
func WithStatementsURL(u string) ClientOption {
	return func(c *Client) {
		c.statementsURL = u
	}
}

// NewClient creates a provider client from configuration.
//
// The default transport is an http.Client with the configured timeout, so a
// hanging provider cannot pin a request handler indefinitely.
func NewClient(cfg config.ProviderConfig, options ...ClientOption) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	c := &Client{
		statementsURL: cfg.StatementsURL(),
		apiKey:        cfg.APIKey,
		httpClient:    &http.Client{Timeout: timeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// IncomeStatements retrieves the annual income-statement records for the
// configured ticker.
//
// Behavior:
//   - Issues one GET to the income-statement endpoint with the API key
//     appended as a query parameter.
//   - Any transport failure, non-success status, or body that is not a JSON
//     array is returned as an error; callers surface it as an upstream
//     failure. Nothing is retried.
//   - The API key is redacted from returned errors so it cannot reach logs
//     or API clients through error text.
//
// Returns:
//   - []models.Statement: the decoded records, provider order preserved.
//   - error: the upstream failure, if any.
func (c *Client) IncomeStatements(ctx context.Context) ([]models.Statement, error) {
	reqURL := c.statementsURL
	if strings.Contains(reqURL, "?") {
		reqURL += "&apikey=" + url.QueryEscape(c.apiKey)
	} else {
		reqURL += "?apikey=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, c.redact(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.redact(fmt.Errorf("performing request: %w", err))
	}
	defer func() { _ = res.Body.Close() }()

	switch {
	case res.StatusCode == http.StatusOK:
		// fall through to decoding

	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("provider rejected the API key (status %d)", res.StatusCode)

	case res.StatusCode == http.StatusTooManyRequests:
		return nil, errors.New("provider rate limit exceeded")

	default:
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var statements []models.Statement
	if err := json.NewDecoder(res.Body).Decode(&statements); err != nil {
		return nil, fmt.Errorf("decoding income-statement response: %w", err)
	}
	return statements, nil
}

// CloseIdleConnections releases pooled connections held by the default
// transport. No-op for injected transports that do not support it.
func (c *Client) CloseIdleConnections() {
	if hc, ok := c.httpClient.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
}

// redact strips the API key from error text. Transport errors embed the full
// request URL, which carries the key as a query parameter.
func (c *Client) redact(err error) error {
	if c.apiKey == "" || err == nil {
		return err
	}
	msg := err.Error()
	msg = strings.ReplaceAll(msg, url.QueryEscape(c.apiKey), "***")
	msg = strings.ReplaceAll(msg, c.apiKey, "***")
	return errors.New(msg)
}
