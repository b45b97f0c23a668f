package mercado

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://api.mercadobitcoin.net/api/v4"

// ErrNoPairs is returned by FetchTickers when called without any pair.
var ErrNoPairs = errors.New("no pairs requested")

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=mercado_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportError is returned when the upstream API cannot be reached or
// answers with a non-success status.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status code %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client talks to the public market-data API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	header     http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader adds headers sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.header.Set("User-Agent", ua)
		}
	}
}

func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchSymbolCatalog retrieves the symbol catalog and converts its columnar
// layout into one SymbolInfo per pair.
func (c *Client) FetchSymbolCatalog(ctx context.Context) ([]SymbolInfo, error) {
	var cols catalogColumns
	if err := c.get(ctx, "fetch symbols", "/symbols", nil, &cols); err != nil {
		return nil, err
	}
	return cols.rows()
}

// FetchTickers retrieves the current ticker of every pair in one request.
func (c *Client) FetchTickers(ctx context.Context, pairs []string) ([]Ticker, error) {
	pairs = uniquePairs(pairs)
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}
	q := url.Values{}
	q.Add("symbols", strings.Join(pairs, ","))

	var tickers []Ticker
	if err := c.get(ctx, "fetch tickers", "/tickers", q, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header = c.header.Clone()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
			Err:        fmt.Errorf("status %s", resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}

func uniquePairs(pairs []string) []string {
	out := make([]string, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
