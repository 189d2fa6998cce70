// Package config holds the process-wide settings, loaded once from the
// environment at startup and read-only afterwards.
package config

import (
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the process configuration. API keys for the model and search
// providers come straight from the environment (or a .env file loaded by
// the entry point).
type Config struct {
	OpenAIAPIKey    string
	TavilyAPIKey    string
	BraveAPIKey     string
	TraceloopAPIKey string

	// Model is the model name the agent runtime resolves, e.g. "gpt-5".
	Model string

	// MaxTurns caps model invocations per run. Zero keeps the runtime default.
	MaxTurns uint64

	// SearchDepth is Tavily's search depth, "basic" or "advanced".
	SearchDepth string

	DisableTracing bool
	Environment    string
}

// Load reads the configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		TavilyAPIKey:    os.Getenv("TAVILY_API_KEY"),
		BraveAPIKey:     os.Getenv("BRAVE_API_KEY"),
		TraceloopAPIKey: os.Getenv("TRACELOOP_API_KEY"),
		Model:           getEnv("SCOUT_MODEL", "gpt-5"),
		MaxTurns:        getEnvUint("SCOUT_MAX_TURNS", 10),
		SearchDepth:     getEnv("SCOUT_SEARCH_DEPTH", "basic"),
		DisableTracing:  getEnv("SCOUT_DISABLE_TRACING", "false") == "true",
		Environment:     getEnv("ENVIRONMENT", "dev"),
	}
}

// Validate reports whether the configuration is complete enough to run.
// A failure here is fatal at startup.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OpenAIAPIKey,
			validation.Required.Error("OPENAI_API_KEY must be set")),
		validation.Field(&c.TavilyAPIKey,
			validation.Required.When(c.BraveAPIKey == "").
				Error("either TAVILY_API_KEY or BRAVE_API_KEY must be set")),
		validation.Field(&c.SearchDepth,
			validation.In("basic", "advanced").
				Error(`SCOUT_SEARCH_DEPTH must be "basic" or "advanced"`)),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
