// Package catalog is the HTTP client for a bluebook document server. It loads
// the document list and the hierarchical index that back the selection form.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/logging"
)

const (
	DocumentsPath = "/get_pdfs"
	IndexPath     = "/get_cached_titles"

	// RequestIDHeader carries a per-request id so client and server logs can
	// be correlated.
	RequestIDHeader = "X-Request-ID"

	userAgent = "bluebook-client"
)

// LoadError is returned when an endpoint cannot be fetched or decoded.
type LoadError struct {
	Endpoint string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Endpoint, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Client talks to a single document server.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse server url: %q must include scheme and host", baseURL)
	}

	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
		log:  logging.Component("catalog"),
	}, nil
}

// BaseURL returns the server URL the client was created with.
func (c *Client) BaseURL() string { return c.base.String() }

// ViewURL resolves a server-relative view path to an absolute URL.
func (c *Client) ViewURL(path string) string {
	return c.base.String() + path
}

// ListDocuments fetches the documents available on the server.
func (c *Client) ListDocuments(ctx context.Context) ([]bluebook.DocumentEntry, error) {
	var docs []bluebook.DocumentEntry
	if err := c.getJSON(ctx, DocumentsPath, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FetchIndex fetches the full document index keyed by filename.
func (c *Client) FetchIndex(ctx context.Context) (map[string]bluebook.DocumentStructure, error) {
	var docs map[string]bluebook.DocumentStructure
	if err := c.getJSON(ctx, IndexPath, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = map[string]bluebook.DocumentStructure{}
	}
	return docs, nil
}

// LoadIndex fetches the index into idx. On failure the error is logged and
// idx is marked failed.
func (c *Client) LoadIndex(ctx context.Context, idx *bluebook.Index) error {
	docs, err := c.FetchIndex(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to load cached titles")
		idx.Fail(err)
		return err
	}

	idx.Load(docs)
	c.log.Debug().Int("documents", len(docs)).Msg("index loaded")
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	endpoint := c.base.String() + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &LoadError{Endpoint: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	c.log.Debug().Ctx(ctx).Str("path", path).Str("request_id", reqID).Msg("fetch")

	resp, err := c.http.Do(req)
	if err != nil {
		return &LoadError{Endpoint: path, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug().Err(err).Str("path", path).Msg("close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return &LoadError{Endpoint: path, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &LoadError{Endpoint: path, Err: fmt.Errorf("read body: %w", err)}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &LoadError{Endpoint: path, Err: fmt.Errorf("decode: %w", err)}
	}

	return nil
}
