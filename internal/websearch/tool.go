package websearch

import (
	"context"

	"github.com/nlpodyssey/openai-agents-go/agents"
)

// SearchArgs are the arguments the model supplies to the web_search tool.
type SearchArgs struct {
	Query string `json:"query" jsonschema_description:"The search query to execute."`
}

// NewTool wraps a Provider as the web_search function tool. The tool
// output is the JSON-encoded list of results, so the model sees titles,
// URLs and snippets it can cite.
func NewTool(p Provider) agents.FunctionTool {
	return agents.NewFunctionTool("web_search",
		"Search the web and return the top results with their titles, URLs and snippets.",
		func(ctx context.Context, args SearchArgs) ([]Result, error) {
			return p.Search(ctx, args.Query, DefaultMaxResults)
		})
}
