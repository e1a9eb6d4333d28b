// Package api is the resource client for the football tracker REST service.
// One call maps to exactly one HTTP request: no retries, no caching, no deduplication.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "http://localhost:8000/api"
	defaultTimeout = 15 * time.Second
	// error bodies are kept for logs only, so cap what we read
	maxBodyBytes = 4 << 20
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config tunes the client. Zero values fall back to defaults.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Client issues requests against one base URL. It holds no entity state and is
// safe for concurrent use.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	validate  *validator.Validate
	log       zerolog.Logger
}

func New(cfg Config, logger zerolog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	l := logger.With().Str("module", "api").Str("base_url", baseURL).Logger()
	return &Client{
		http:      httpClient,
		baseURL:   baseURL,
		userAgent: cfg.UserAgent,
		validate:  newValidator(),
		log:       l,
	}
}

// BaseURL returns the normalized base every path is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Players() *Players   { return &Players{c: c} }
func (c *Client) Games() *Games       { return &Games{c: c} }
func (c *Client) Stadiums() *Stadiums { return &Stadiums{c: c} }

// do sends one request. in is JSON-encoded when non-nil; out is decoded from a
// 2xx body when non-nil and the body is not empty.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return &TransportError{Method: method, Path: path, Err: err}
		}
		body = bytes.NewReader(buf)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Dur("took", time.Since(start)).Msg("request failed")
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Dur("took", time.Since(start)).Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	return nil
}

func resourcePath(collection, id string, rest ...string) string {
	var b strings.Builder
	b.WriteString(collection)
	b.WriteByte('/')
	b.WriteString(url.PathEscape(id))
	for _, r := range rest {
		b.WriteByte('/')
		b.WriteString(r)
	}
	return b.String()
}
