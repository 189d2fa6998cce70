package fetch

import (
	"context"

	"github.com/nlpodyssey/openai-agents-go/agents"
)

// PageArgs are the arguments the model supplies to the read_page tool.
type PageArgs struct {
	URL string `json:"url" jsonschema_description:"The URL of the page to read."`
}

// NewTool wraps a Reader as the read_page function tool.
func NewTool(r *Reader) agents.FunctionTool {
	return agents.NewFunctionTool("read_page",
		"Fetch a URL and return its readable text content.",
		func(ctx context.Context, args PageArgs) (string, error) {
			return r.Read(ctx, args.URL)
		})
}
