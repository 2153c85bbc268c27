package llm

// Params is a free-form generation parameter mapping (temperature,
// token limits, sampling settings). Adapters decide which keys they
// recognize; unrecognized keys are dropped during normalization.
type Params map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Request is a single-turn generation request.
type Request struct {
	Prompt string
	Params Params

	// OnlyCompleted and ReturnSorted exist for compatibility with the
	// broader framework's calling convention. Adapters here always
	// return exactly one completion, so neither flag changes anything.
	OnlyCompleted bool
	ReturnSorted  bool
}

// Response echoes the prompt alongside the completion texts, matching
// the shape recorded in call history.
type Response struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

// HistoryRecord captures one successfully completed call. Records are
// append-only and exist for external inspection; adapters never read
// them back.
type HistoryRecord struct {
	Prompt    string
	Response  Response
	Params    Params
	RawParams Params
}
