// Package contract declares the shape of an acceptable agent answer and
// validates payloads against it. The agent runtime is responsible for
// producing output that conforms to this contract; nothing here knows how
// that output is generated.
package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// Source is a single citation backing a claim made in the answer.
type Source struct {
	URL string `json:"url" jsonschema_description:"The URL of the source."`
}

// AgentResponse is the structured output the agent must produce for a
// query. Sources are kept in citation order and default to empty when the
// model omits them. Duplicate citations are legal.
type AgentResponse struct {
	Answer  string   `json:"answer" jsonschema_description:"The agent's answer to the query."`
	Sources []Source `json:"sources,omitempty" jsonschema_description:"Sources used to generate the answer, in citation order."`
}

// ValidationError reports a payload that does not satisfy the response
// contract. Fields holds the offending field paths as reported by the
// schema validator, Messages the matching per-field descriptions.
type ValidationError struct {
	Fields   []string
	Messages []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("agent response failed contract validation:")
	for _, m := range e.Messages {
		_, _ = fmt.Fprintf(&sb, "\n- %s", m)
	}
	return sb.String()
}

// ResponseContract validates payloads purporting to be an AgentResponse.
// It implements agents.OutputTypeInterface, so it can be attached to an
// agent as its declared output type.
//
// The schema is not strict: "sources" is optional with an empty default,
// which strict mode cannot express.
type ResponseContract struct {
	schemaMap map[string]any
	schema    *gojsonschema.Schema
}

// New builds the contract, reflecting the JSON schema from AgentResponse
// and compiling it for validation.
func New() (*ResponseContract, error) {
	reflector := jsonschema.Reflector{
		Anonymous:                 true,
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
	}
	schema := reflector.Reflect(AgentResponse{})

	b, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to JSON-marshal response schema: %w", err)
	}
	var schemaMap map[string]any
	if err = json.Unmarshal(b, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to JSON-unmarshal response schema: %w", err)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schemaMap))
	if err != nil {
		return nil, fmt.Errorf("failed to compile response schema: %w", err)
	}

	return &ResponseContract{schemaMap: schemaMap, schema: compiled}, nil
}

// MustNew is like New but panics in case of errors.
func MustNew() *ResponseContract {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *ResponseContract) IsPlainText() bool        { return false }
func (c *ResponseContract) Name() string             { return "AgentResponse" }
func (c *ResponseContract) IsStrictJSONSchema() bool { return false }

// JSONSchema returns the JSON schema of the response contract.
func (c *ResponseContract) JSONSchema() (map[string]any, error) {
	return c.schemaMap, nil
}

// Validate checks a semi-structured payload against the contract and
// returns the typed response. Pure: the payload is not modified.
func (c *ResponseContract) Validate(payload map[string]any) (AgentResponse, error) {
	return c.validate(gojsonschema.NewGoLoader(payload), func(resp *AgentResponse) error {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, resp)
	})
}

// ValidateJSON checks a JSON string against the contract and returns the
// parsed response. The any return type satisfies agents.OutputTypeInterface;
// the value is always an AgentResponse on success.
func (c *ResponseContract) ValidateJSON(_ context.Context, jsonStr string) (any, error) {
	return c.validate(gojsonschema.NewStringLoader(jsonStr), func(resp *AgentResponse) error {
		return json.Unmarshal([]byte(jsonStr), resp)
	})
}

func (c *ResponseContract) validate(loader gojsonschema.JSONLoader, decode func(*AgentResponse) error) (AgentResponse, error) {
	result, err := c.schema.Validate(loader)
	if err != nil {
		return AgentResponse{}, fmt.Errorf("failed to load and validate payload: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, e := range result.Errors() {
			verr.Fields = append(verr.Fields, e.Field())
			verr.Messages = append(verr.Messages, e.String())
		}
		return AgentResponse{}, verr
	}

	var resp AgentResponse
	if err := decode(&resp); err != nil {
		return AgentResponse{}, fmt.Errorf("failed to unmarshal validated payload: %w", err)
	}
	if resp.Sources == nil {
		resp.Sources = []Source{}
	}
	return resp, nil
}
