package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RequestPayload is the request body for the chat completions endpoint.
// Field names are fixed by the API contract.
type RequestPayload struct {
	Messages         []Message       `json:"messages"`
	Model            string          `json:"model,omitempty"`
	Stream           bool            `json:"stream"`
	Temperature      float64         `json:"temperature"`
	MaxTokens        int             `json:"max_tokens,omitempty"`
	TopP             float64         `json:"top_p,omitempty"`
	FrequencyPenalty float64         `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64         `json:"presence_penalty,omitempty"`
	ResponseFormat   *ResponseFormat `json:"response_format,omitempty"`
}

// ResponseFormat selects the completion output format, e.g. {"type": "json_object"}.
type ResponseFormat struct {
	Type string `json:"type"`
}

// Resource issues requests against the configured API endpoint. It performs
// one blocking call per request with no retry or backoff; transport errors
// and non-2xx statuses are surfaced to the caller unmodified.
type Resource struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

// NewResource creates a Resource for the given endpoint and key.
func NewResource(baseURL, key string, httpClient *http.Client) *Resource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Resource{
		baseURL:    baseURL,
		key:        key,
		httpClient: httpClient,
	}
}

// SendRequest serializes the payload, posts it to the chat completions
// endpoint, and decodes the response into a Result.
func (r *Resource) SendRequest(ctx context.Context, payload RequestPayload) (*Result, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+chatCompletionsPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.key)

	body, err := r.do(req)
	if err != nil {
		return nil, err
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error parsing response: %v", err)
	}
	result.Raw = body

	return &result, nil
}

// ListModels fetches the models endpoint.
func (r *Resource) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var result modelsResponse
	if err := r.get(ctx, modelsPath, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetBalance fetches the user balance endpoint.
func (r *Resource) GetBalance(ctx context.Context) (*BalanceInfo, error) {
	var result BalanceInfo
	if err := r.get(ctx, balancePath, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get issues an authorized GET and decodes the JSON response into out.
func (r *Resource) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.key)

	body, err := r.do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error parsing response: %v", err)
	}
	return nil
}

// do sends the request and returns the response body, turning non-2xx
// statuses into errors that carry the status code and body.
func (r *Resource) do(req *http.Request) ([]byte, error) {
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("API request failed (HTTP %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
