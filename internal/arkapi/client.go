package arkapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const chatPathFormat = "/api/v2/endpoint/%s/chat"

// Client is the HTTP implementation of Service. One Client is created
// per adapter instance and reused for its lifetime; it holds no
// connection state beyond the shared http.Client pool.
type Client struct {
	domain string
	region string
	ak     string
	sk     string
	client *http.Client

	// baseURL overrides the https://{domain} target; used by tests.
	baseURL string
}

// NewClient creates a service client bound to the given domain and
// region. Credentials are attached separately via SetAccessKey and
// SetSecretKey; a client with empty credentials still issues requests,
// which the service rejects (failure is deferred to first use).
func NewClient(domain, region string) *Client {
	return &Client{
		domain: strings.TrimSuffix(domain, "/"),
		region: region,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// SetAccessKey sets the access key used to sign requests.
func (c *Client) SetAccessKey(ak string) { c.ak = ak }

// SetSecretKey sets the secret key used to sign requests.
func (c *Client) SetSecretKey(sk string) { c.sk = sk }

// Chat issues a synchronous chat completion against the endpoint
// deployment named by endpointID. Non-2xx responses are returned as
// *APIError with the service's code and message preserved.
func (c *Client) Chat(ctx context.Context, endpointID string, chatReq *ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	path := fmt.Sprintf(chatPathFormat, endpointID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.sign(req, body)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp.StatusCode, respBody)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("unmarshal chat response: %w", err)
	}
	return &chatResp, nil
}

func (c *Client) url(path string) string {
	if c.baseURL != "" {
		return c.baseURL + path
	}
	return "https://" + c.domain + path
}

// decodeAPIError maps an error body to *APIError. The service wraps
// failures as {"error": {"code", "message"}}; anything else falls back
// to the raw body text so the message-based retry rule still sees it.
func decodeAPIError(status int, body []byte) *APIError {
	var wrapped struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error.Message != "" {
		return &APIError{HTTPStatus: status, Code: wrapped.Error.Code, Message: wrapped.Error.Message}
	}
	return &APIError{HTTPStatus: status, Message: strings.TrimSpace(string(body))}
}
