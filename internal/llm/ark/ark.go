package ark

import (
	"context"
	"strings"

	"github.com/ipenchev/modelbridge/internal/arkapi"
	"github.com/ipenchev/modelbridge/internal/llm"
)

// PrepareParams normalizes caller-supplied generation parameters:
//
//  1. max_tokens is renamed to max_output_tokens (the only translation
//     the service needs).
//  2. The result is merged over the adapter defaults; caller values win.
//  3. n is extracted and discarded — the service has no multi-completion
//     concept. Legacy rule: n>1 combined with temperature 0.0 is
//     contradictory (greedy decoding repeats itself), so temperature is
//     nudged to 0.7.
//  4. Keys outside the default-parameter set are dropped silently.
func (c *Client) PrepareParams(params llm.Params) llm.Params {
	merged := c.defaults.Clone()
	for k, v := range params {
		if k == "max_tokens" {
			k = "max_output_tokens"
		}
		merged[k] = v
	}

	if n, ok := merged["n"]; ok {
		delete(merged, "n")
		if asInt(n) > 1 && asFloat(merged["temperature"]) == 0.0 {
			merged["temperature"] = 0.7
		}
	}

	out := make(llm.Params, len(c.defaults))
	for k, v := range merged {
		if _, known := c.defaults[k]; known {
			out[k] = v
		}
	}
	return out
}

// BasicRequest issues a single chat call: one user message, normalized
// parameters. On success it appends a history record and returns a
// one-element slice with the completion text. On failure the service's
// error propagates unchanged and no history is written.
func (c *Client) BasicRequest(ctx context.Context, prompt string, params llm.Params) ([]string, error) {
	rawParams := params.Clone()
	prepared := c.PrepareParams(params)

	req := &arkapi.ChatRequest{
		Parameters: prepared,
		Messages: []arkapi.Message{
			{Role: arkapi.RoleUser, Content: prompt},
		},
	}

	resp, err := c.service.Chat(ctx, c.endpointID, req)
	if err != nil {
		return nil, err
	}

	content := resp.Choice.Message.Content
	c.logger.Debug().
		Str("endpoint_id", c.endpointID).
		Str("req_id", resp.ReqID).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("Chat completion succeeded")

	c.history = append(c.history, llm.HistoryRecord{
		Prompt: prompt,
		Response: llm.Response{
			Prompt:  prompt,
			Choices: []string{content},
		},
		Params:    params.Clone(),
		RawParams: rawParams,
	})

	return []string{content}, nil
}

// Request wraps BasicRequest in the retry policy: exponential backoff
// bounded by total elapsed time, retrying only rate-limited failures.
func (c *Client) Request(ctx context.Context, prompt string, params llm.Params) ([]string, error) {
	var completions []string
	err := c.policy.Do(ctx, "BasicRequest", params, func() error {
		var reqErr error
		completions, reqErr = c.BasicRequest(ctx, prompt, params)
		return reqErr
	})
	if err != nil {
		return nil, err
	}
	return completions, nil
}

// Generate is the llm.LM entry point. The OnlyCompleted and
// ReturnSorted flags are accepted but inert: exactly one completion is
// returned, so there is nothing to filter or sort.
func (c *Client) Generate(ctx context.Context, req llm.Request) ([]string, error) {
	return c.Request(ctx, req.Prompt, req.Params)
}

func containsRateLimit(err error) bool {
	return err != nil && strings.Contains(err.Error(), rateLimitIndicator)
}

// asInt and asFloat coerce the loosely typed parameter values; JSON
// decoding yields float64 where callers in Go tend to pass int.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
