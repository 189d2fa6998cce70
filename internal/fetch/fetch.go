// Package fetch provides the read_page tool: it downloads a URL and
// extracts the readable text so the agent can inspect a search result
// beyond its snippet.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
)

const (
	// maxTextSize caps the extracted text handed back to the model.
	maxTextSize    = 50 * 1024
	defaultTimeout = 30 * time.Second
	userAgent      = "scout/1.0"
)

// Reader downloads pages and extracts their readable text.
type Reader struct {
	client *http.Client
}

type ReaderOption func(*Reader)

// WithClient overrides the default HTTP client.
func WithClient(client *http.Client) ReaderOption {
	return func(r *Reader) { r.client = client }
}

// NewReader constructs a page reader with a default timeout.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{client: &http.Client{Timeout: defaultTimeout}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read fetches rawURL and returns its readable text content. HTML pages go
// through readability extraction; anything else is returned as-is,
// truncated to the size cap.
func (r *Reader) Read(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("read_page: invalid URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("read_page: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("read_page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("read_page: http %d", resp.StatusCode)
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxTextSize))
		if err != nil {
			return "", fmt.Errorf("read_page: %w", err)
		}
		return string(body), nil
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("read_page: parse: %w", err)
	}

	var textBuf bytes.Buffer
	if err := article.RenderText(&textBuf); err != nil {
		return "", fmt.Errorf("read_page: render: %w", err)
	}

	text := textBuf.String()
	if len(text) > maxTextSize {
		text = text[:maxTextSize] + "\n... [truncated]"
	}
	return fmt.Sprintf("Title: %s\nURL: %s\n\n%s", article.Title(), rawURL, text), nil
}
