package arkapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(baseURL string) *Client {
	c := NewClient("maas.test", "test-region")
	c.SetAccessKey("test-ak")
	c.SetSecretKey("test-sk")
	c.baseURL = baseURL
	return c
}

func TestChat_Success(t *testing.T) {
	var gotPath, gotMethod string
	var gotReq ChatRequest
	var gotAuth, gotDate, gotSha string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		gotDate = r.Header.Get("X-Date")
		gotSha = r.Header.Get("X-Content-Sha256")
		json.NewDecoder(r.Body).Decode(&gotReq)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatResponse{
			ReqID: "r-1",
			Choice: Choice{
				Message: Message{Role: "assistant", Content: "pong"},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	resp, err := c.Chat(context.Background(), "ep-1", &ChatRequest{
		Parameters: map[string]any{"temperature": 0.7},
		Messages:   []Message{{Role: RoleUser, Content: "ping"}},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if resp.Choice.Message.Content != "pong" {
		t.Errorf("Expected content 'pong', got %q", resp.Choice.Message.Content)
	}
	if resp.ReqID != "r-1" {
		t.Errorf("Expected req id 'r-1', got %q", resp.ReqID)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotPath != "/api/v2/endpoint/ep-1/chat" {
		t.Errorf("Unexpected path %q", gotPath)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "ping" {
		t.Errorf("Request body not forwarded: %+v", gotReq)
	}
	if !strings.HasPrefix(gotAuth, "HMAC-SHA256 Credential=test-ak/") {
		t.Errorf("Unexpected Authorization header %q", gotAuth)
	}
	if gotDate == "" || gotSha == "" {
		t.Error("Expected X-Date and X-Content-Sha256 headers to be set")
	}
}

func TestChat_DecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":"RateLimitExceeded","message":"request exceeded rate limits"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Chat(context.Background(), "ep-1", &ChatRequest{})
	if err == nil {
		t.Fatal("Expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.HTTPStatus != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", apiErr.HTTPStatus)
	}
	if apiErr.Code != "RateLimitExceeded" {
		t.Errorf("Expected code RateLimitExceeded, got %q", apiErr.Code)
	}
	if !strings.Contains(apiErr.Error(), "rate limits") {
		t.Errorf("Expected message text preserved, got %q", apiErr.Error())
	}
}

func TestChat_FallsBackToRawErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Chat(context.Background(), "ep-1", &ChatRequest{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Message != "upstream unavailable" {
		t.Errorf("Expected raw body as message, got %q", apiErr.Message)
	}
	if apiErr.Code != "" {
		t.Errorf("Expected empty code, got %q", apiErr.Code)
	}
}

func TestAPIError_Error(t *testing.T) {
	withCode := &APIError{Code: "Throttled", Message: "request exceeded rate limits"}
	if got := withCode.Error(); got != "ark api: Throttled: request exceeded rate limits" {
		t.Errorf("Unexpected error string %q", got)
	}

	bare := &APIError{Message: "boom"}
	if got := bare.Error(); got != "ark api: boom" {
		t.Errorf("Unexpected error string %q", got)
	}
}
