package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// Tavily calls the Tavily search API.
type Tavily struct {
	apiKey string
	// depth controls Tavily's search_depth parameter (basic or advanced).
	depth   string
	baseURL string
	client  *http.Client
}

type TavilyOption func(*Tavily)

// WithTavilyDepth sets the search depth (basic or advanced).
func WithTavilyDepth(depth string) TavilyOption {
	return func(t *Tavily) {
		if depth != "" {
			t.depth = depth
		}
	}
}

// WithTavilyClient overrides the default HTTP client, e.g. to change the
// timeout.
func WithTavilyClient(client *http.Client) TavilyOption {
	return func(t *Tavily) { t.client = client }
}

// WithTavilyBaseURL overrides the API endpoint (useful for testing).
func WithTavilyBaseURL(u string) TavilyOption {
	return func(t *Tavily) { t.baseURL = strings.TrimRight(u, "/") }
}

// NewTavily constructs a Tavily search provider.
func NewTavily(apiKey string, opts ...TavilyOption) *Tavily {
	t := &Tavily{
		apiKey:  apiKey,
		depth:   "basic",
		baseURL: tavilyEndpoint,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tavily) Name() string { return "tavily" }

// Search posts a query to Tavily.
func (t *Tavily) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if strings.TrimSpace(t.apiKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	body := map[string]any{
		"query":        query,
		"api_key":      t.apiKey,
		"search_depth": t.depth,
		"max_results":  maxResults,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	delay := 1 * time.Second
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = t.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		// Back off and retry on 429, doubling the delay each time up to 30 s.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily: http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Content})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}
