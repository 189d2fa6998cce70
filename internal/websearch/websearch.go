// Package websearch provides the web search capability exposed to the
// agent as a tool. Each backend is a Provider; the agent only ever sees
// the web_search function tool built on top of one.
package websearch

import "context"

// DefaultMaxResults caps how many hits a provider returns when the caller
// does not ask for a specific amount.
const DefaultMaxResults = 5

// Result is a single search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Provider executes a web search against one backend.
type Provider interface {
	// Name identifies the backend, e.g. "tavily".
	Name() string

	// Search returns up to maxResults hits for the query.
	// A maxResults of zero or less means DefaultMaxResults.
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}
