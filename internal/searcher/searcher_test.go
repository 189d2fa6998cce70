package searcher_test

import (
	"context"
	"testing"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/agentstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scout/internal/contract"
	"scout/internal/searcher"
	"scout/internal/websearch"
)

type stubProvider struct {
	queries []string
	results []websearch.Result
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Search(_ context.Context, query string, _ int) ([]websearch.Result, error) {
	p.queries = append(p.queries, query)
	return p.results, nil
}

func TestInvokeReturnsValidatedResponse(t *testing.T) {
	provider := &stubProvider{
		results: []websearch.Result{
			{Title: "Posting 1", URL: "https://linkedin.com/jobs/1", Snippet: "ai engineer"},
			{Title: "Posting 2", URL: "https://linkedin.com/jobs/2", Snippet: "langchain"},
		},
	}

	model := agentstesting.NewFakeModel(false, nil)
	model.AddMultipleTurnOutputs([]agentstesting.FakeModelTurnOutput{
		{Value: []agents.TResponseOutputItem{
			agentstesting.GetFunctionToolCall("web_search", `{"query": "ai engineer jobs bay area"}`),
		}},
		{Value: []agents.TResponseOutputItem{
			agentstesting.GetFinalOutputMessage(
				`{"answer": "Found 2 postings.", "sources": [{"url": "https://linkedin.com/jobs/1"}, {"url": "https://linkedin.com/jobs/2"}]}`),
		}},
	})

	s := searcher.New(searcher.Config{
		ModelInstance:  model,
		Tools:          []agents.Tool{websearch.NewTool(provider)},
		DisableTracing: true,
	})

	resp, err := s.Invoke(t.Context(), "find ai engineer job postings in the bay area")
	require.NoError(t, err)

	assert.Equal(t, "Found 2 postings.", resp.Answer)
	assert.Equal(t, []contract.Source{
		{URL: "https://linkedin.com/jobs/1"},
		{URL: "https://linkedin.com/jobs/2"},
	}, resp.Sources)
	assert.Equal(t, []string{"ai engineer jobs bay area"}, provider.queries)
}

func TestInvokeWithoutToolCalls(t *testing.T) {
	model := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{
			agentstesting.GetFinalOutputMessage(`{"answer": "No search needed."}`),
		},
	})

	s := searcher.New(searcher.Config{
		ModelInstance:  model,
		DisableTracing: true,
	})

	resp, err := s.Invoke(t.Context(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "No search needed.", resp.Answer)
	assert.Equal(t, []contract.Source{}, resp.Sources)
}

func TestInvokeRejectsNonConformingOutput(t *testing.T) {
	model := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{
			agentstesting.GetFinalOutputMessage(`{"sources": []}`),
		},
	})

	s := searcher.New(searcher.Config{
		ModelInstance:  model,
		DisableTracing: true,
	})

	_, err := s.Invoke(t.Context(), "hello")
	require.Error(t, err)
	assert.ErrorContains(t, err, "answer")
}

func TestInvokePropagatesModelErrors(t *testing.T) {
	model := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Error: agents.NewModelBehaviorError("boom"),
	})

	s := searcher.New(searcher.Config{
		ModelInstance:  model,
		DisableTracing: true,
	})

	_, err := s.Invoke(t.Context(), "hello")
	assert.ErrorContains(t, err, "boom")
}
