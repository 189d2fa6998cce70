// Package searcher wires the one web-search agent together with its tools
// and response contract, and exposes a single Invoke boundary around the
// external agent runtime. The runtime's reasoning and tool-calling loop is
// not this package's concern; it only hands a query in and a validated
// response out.
package searcher

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/nlpodyssey/openai-agents-go/agents"

	"scout/internal/contract"
)

const defaultInstructions = "You are a web research agent. Use the web_search " +
	"tool to find current information, and the read_page tool to open a result " +
	"when its snippet is not enough. Answer the user's question directly, and " +
	"cite the URL of every page you relied on in the sources list."

const defaultWorkflowName = "Web search agent"

// Config configures the agent behind a Searcher.
type Config struct {
	// Model is the model name resolved by the agent runtime, e.g. "gpt-5".
	Model string

	// ModelInstance overrides Model with a concrete model implementation.
	// Used by tests to inject a fake model.
	ModelInstance agents.Model

	// Instructions replace the default system instructions when non-empty.
	Instructions string

	// Tools the agent may call while answering.
	Tools []agents.Tool

	// MaxTurns caps model invocations per run. Zero keeps the runtime default.
	MaxTurns uint64

	// WorkflowName names the run for tracing.
	WorkflowName string

	// DisableTracing turns off run tracing entirely.
	DisableTracing bool
}

// Searcher owns one configured agent and runs it once per Invoke call.
type Searcher struct {
	agent  *agents.Agent
	runner agents.Runner
}

// New builds a Searcher from the given configuration.
func New(cfg Config) *Searcher {
	instructions := cfg.Instructions
	if instructions == "" {
		instructions = defaultInstructions
	}

	agent := agents.New("Web search agent").
		WithInstructions(instructions).
		WithOutputType(contract.MustNew()).
		WithTools(cfg.Tools...)
	if cfg.ModelInstance != nil {
		agent = agent.WithModelInstance(cfg.ModelInstance)
	} else {
		agent = agent.WithModel(cfg.Model)
	}

	workflowName := cfg.WorkflowName
	if workflowName == "" {
		workflowName = defaultWorkflowName
	}

	// One group id per Searcher links the traces of its invocations.
	u := uuid.New()
	groupID := hex.EncodeToString(u[:])[:16]

	return &Searcher{
		agent: agent,
		runner: agents.Runner{Config: agents.RunConfig{
			WorkflowName:    workflowName,
			GroupID:         groupID,
			MaxTurns:        cfg.MaxTurns,
			TracingDisabled: cfg.DisableTracing,
		}},
	}
}

// Invoke submits one query to the agent and returns its validated
// response. Errors from the runtime, the tools, or the response contract
// are propagated as-is.
func (s *Searcher) Invoke(ctx context.Context, query string) (contract.AgentResponse, error) {
	result, err := s.runner.Run(ctx, s.agent, query)
	if err != nil {
		return contract.AgentResponse{}, err
	}

	resp, ok := result.FinalOutput.(contract.AgentResponse)
	if !ok {
		return contract.AgentResponse{}, fmt.Errorf("unexpected final output type %T", result.FinalOutput)
	}
	return resp, nil
}
