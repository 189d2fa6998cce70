package websearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const braveEndpoint = "https://api.search.brave.com/res/v1/web/search"

// Brave calls the Brave Search API.
type Brave struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type BraveOption func(*Brave)

// WithBraveClient overrides the default HTTP client.
func WithBraveClient(client *http.Client) BraveOption {
	return func(b *Brave) { b.client = client }
}

// WithBraveBaseURL overrides the API endpoint (useful for testing).
func WithBraveBaseURL(u string) BraveOption {
	return func(b *Brave) { b.baseURL = strings.TrimRight(u, "/") }
}

// NewBrave constructs a Brave search provider.
func NewBrave(apiKey string, opts ...BraveOption) *Brave {
	b := &Brave{
		apiKey:  apiKey,
		baseURL: braveEndpoint,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Brave) Name() string { return "brave" }

// Search queries the Brave web search endpoint.
func (b *Brave) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if strings.TrimSpace(b.apiKey) == "" {
		return nil, errors.New("brave: API key is missing")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	reqURL := fmt.Sprintf("%s?q=%s&count=%d", b.baseURL, url.QueryEscape(query), maxResults)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("brave: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var response struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(response.Web.Results))
	for _, r := range response.Web.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Description})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}
