package api

// GenerateRequest is the POST /api/v1/generate body.
type GenerateRequest struct {
	Prompt string         `json:"prompt"`
	Params map[string]any `json:"params,omitempty"`

	// Accepted for compatibility with the framework calling convention;
	// adapters return a single completion and ignore both.
	OnlyCompleted bool `json:"only_completed,omitempty"`
	ReturnSorted  bool `json:"return_sorted,omitempty"`
}

// GenerateResponse carries the completions for one request.
type GenerateResponse struct {
	Provider    string   `json:"provider"`
	Endpoint    string   `json:"endpoint"`
	Completions []string `json:"completions"`
	Cached      bool     `json:"cached"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
