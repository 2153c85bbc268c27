package llm

import (
	"context"
)

// LM is the uniform calling convention every provider adapter implements.
// Adapters are single-turn and synchronous: one prompt in, a list of
// completion texts out. This allows swapping providers without touching
// call sites, and mocking in tests without real API calls.
type LM interface {
	Generate(ctx context.Context, req Request) ([]string, error)
}
