// Package arkapi is a minimal client for the Ark (MaaS) chat endpoint
// API. It covers exactly what the adapters need: credential binding and
// a synchronous chat call against a named endpoint deployment.
package arkapi

import (
	"context"
)

// RoleUser is the only chat role the adapters send; requests are
// single-turn.
const RoleUser = "user"

// Service is the capability the adapters require from the remote
// service client. Kept small so tests can substitute a mock without a
// network.
type Service interface {
	SetAccessKey(ak string)
	SetSecretKey(sk string)
	Chat(ctx context.Context, endpointID string, req *ChatRequest) (*ChatResponse, error)
}

// Message is one conversational turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the wire request: generation parameters plus the
// message list.
type ChatRequest struct {
	Parameters map[string]any `json:"parameters,omitempty"`
	Messages   []Message      `json:"messages"`
}

// Choice is the selected completion in a chat response.
type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// Usage reports token accounting for one call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse is the wire response. The service returns a single
// selected choice; there is no multi-completion concept in this API.
type ChatResponse struct {
	ReqID  string `json:"req_id,omitempty"`
	Choice Choice `json:"choice"`
	Usage  Usage  `json:"usage,omitempty"`
}
