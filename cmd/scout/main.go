package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/tracing"
	"github.com/nlpodyssey/openai-agents-go/tracing/wrappers/traceloop"

	"scout/internal/config"
	"scout/internal/fetch"
	"scout/internal/searcher"
	"scout/internal/websearch"
)

const query = "search for 3 job postings for an ai engineer using langchain " +
	"in the bay area on linkedin and list their details?"

func main() {
	// Load .env file (silently ignore if it doesn't exist).
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	if cfg.TraceloopAPIKey != "" {
		processor, err := traceloop.NewTracingProcessor(ctx, traceloop.ProcessorParams{
			APIKey:  cfg.TraceloopAPIKey,
			BaseURL: "api.traceloop.com",
		})
		if err != nil {
			log.Fatalf("Failed to create Traceloop processor: %v", err)
		}
		tracing.AddTraceProcessor(processor)
		defer processor.Shutdown(ctx)
	}

	var provider websearch.Provider
	if cfg.TavilyAPIKey != "" {
		provider = websearch.NewTavily(cfg.TavilyAPIKey, websearch.WithTavilyDepth(cfg.SearchDepth))
	} else {
		provider = websearch.NewBrave(cfg.BraveAPIKey)
	}

	logger.Info("agent configured",
		"model", cfg.Model,
		"search_provider", provider.Name(),
		"max_turns", cfg.MaxTurns,
	)

	s := searcher.New(searcher.Config{
		Model: cfg.Model,
		Tools: []agents.Tool{
			websearch.NewTool(provider),
			fetch.NewTool(fetch.NewReader()),
		},
		MaxTurns:       cfg.MaxTurns,
		DisableTracing: cfg.DisableTracing,
	})

	resp, err := s.Invoke(ctx, query)
	if err != nil {
		log.Fatalf("Agent run failed: %v", err)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
	fmt.Println(string(out))

	logger.Info("run complete", "sources", len(resp.Sources))
}
