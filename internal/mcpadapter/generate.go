package mcpadapter

import (
	"context"

	"github.com/ipenchev/modelbridge/internal/llm"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GenerateInput is the MCP tool input schema (matches HTTP API field names).
type GenerateInput struct {
	Prompt string         `json:"prompt" jsonschema:"prompt text to complete"`
	Params map[string]any `json:"params,omitempty" jsonschema:"optional generation parameters"`
}

// GenerateOutput is the MCP tool result payload.
type GenerateOutput struct {
	Provider    string   `json:"provider"`
	Completions []string `json:"completions"`
}

// NewGenerateHandler returns a tool handler that generates through the
// given adapter. Pass the returned function to mcp.AddTool.
func NewGenerateHandler(lm llm.LM, provider string) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		completions, err := lm.Generate(ctx, llm.Request{
			Prompt: input.Prompt,
			Params: llm.Params(input.Params),
		})
		if err != nil {
			return nil, GenerateOutput{}, err
		}
		return nil, GenerateOutput{Provider: provider, Completions: completions}, nil
	}
}
