package websearch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scout/internal/websearch"
)

type stubProvider struct {
	lastQuery string
	results   []websearch.Result
	err       error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Search(_ context.Context, query string, _ int) ([]websearch.Result, error) {
	p.lastQuery = query
	return p.results, p.err
}

func TestNewTool(t *testing.T) {
	provider := &stubProvider{
		results: []websearch.Result{
			{Title: "Posting", URL: "https://linkedin.com/jobs/1", Snippet: "details"},
		},
	}
	tool := websearch.NewTool(provider)
	assert.Equal(t, "web_search", tool.Name)

	output, err := tool.OnInvokeTool(t.Context(), `{"query": "ai engineer jobs"}`)
	require.NoError(t, err)
	assert.Equal(t, "ai engineer jobs", provider.lastQuery)

	out, ok := output.(string)
	require.True(t, ok)
	assert.Contains(t, out, "https://linkedin.com/jobs/1")
	assert.Contains(t, out, "Posting")
}

func TestNewToolBadArguments(t *testing.T) {
	tool := websearch.NewTool(&stubProvider{})
	_, err := tool.OnInvokeTool(t.Context(), `{invalid`)
	assert.Error(t, err)
}
