package deepseek

import (
	"context"
	"errors"
)

// ErrNoResult is returned by Result when no request has completed yet.
var ErrNoResult = errors.New("deepseek: no result available, call Run first")

// Client accumulates conversation messages and request settings, and sends
// them as one chat completion request. All builder methods mutate the client
// and return it for chaining.
//
// A Client is not safe for concurrent use; each instance owns its own message
// buffer and settings.
type Client struct {
	resource *Resource

	messages         []Message
	model            string
	stream           bool
	temperature      float64
	maxTokens        int
	topP             float64
	frequencyPenalty float64
	presencePenalty  float64
	responseFormat   string

	result *Result
}

// Query appends a message to the conversation. The role defaults to RoleUser
// when omitted. Content is passed through as-is; the API decides what it
// accepts.
func (c *Client) Query(content string, role ...Role) *Client {
	r := RoleUser
	if len(role) > 0 && role[0] != "" {
		r = role[0]
	}
	c.messages = append(c.messages, Message{Role: r, Content: content})
	return c
}

// WithModel sets the model for subsequent requests. The name is not validated
// here; an unknown model is rejected by the API. An empty model is omitted
// from the payload.
func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// WithStream toggles the stream flag. Calling it without an argument enables
// streaming. The response is still consumed as a single body; the raw bytes
// are available on the Result.
func (c *Client) WithStream(stream ...bool) *Client {
	s := true
	if len(stream) > 0 {
		s = stream[0]
	}
	c.stream = s
	return c
}

// SetTemperature overwrites the sampling temperature. No bounds are enforced;
// out-of-range values are rejected by the API. See the Temperature presets
// for recommended values.
func (c *Client) SetTemperature(temperature float64) *Client {
	c.temperature = temperature
	return c
}

// SetMaxTokens limits the completion length. Zero means no limit is sent.
func (c *Client) SetMaxTokens(maxTokens int) *Client {
	c.maxTokens = maxTokens
	return c
}

// SetTopP sets the nucleus sampling parameter. Zero means unset.
func (c *Client) SetTopP(topP float64) *Client {
	c.topP = topP
	return c
}

// SetFrequencyPenalty sets the frequency penalty. Zero means unset.
func (c *Client) SetFrequencyPenalty(penalty float64) *Client {
	c.frequencyPenalty = penalty
	return c
}

// SetPresencePenalty sets the presence penalty. Zero means unset.
func (c *Client) SetPresencePenalty(penalty float64) *Client {
	c.presencePenalty = penalty
	return c
}

// SetResponseFormat sets the response format type, e.g. "json_object".
func (c *Client) SetResponseFormat(formatType string) *Client {
	c.responseFormat = formatType
	return c
}

// Run assembles the payload from the accumulated state, sends it, stores the
// Result, and returns the extracted reply content.
//
// The message buffer is flushed as soon as the payload snapshot is taken, so
// a failed request still discards the buffered messages. Model, stream, and
// temperature settings persist across calls.
func (c *Client) Run(ctx context.Context) (string, error) {
	payload := c.buildPayload()
	c.messages = nil

	result, err := c.resource.SendRequest(ctx, payload)
	if err != nil {
		return "", err
	}
	c.result = result

	return result.Content()
}

// Result returns the Result stored by the most recent successful Run. It
// returns ErrNoResult before the first one.
func (c *Client) Result() (*Result, error) {
	if c.result == nil {
		return nil, ErrNoResult
	}
	return c.result, nil
}

// Models fetches the models available to the configured API key.
func (c *Client) Models(ctx context.Context) ([]ModelInfo, error) {
	return c.resource.ListModels(ctx)
}

// Balance fetches the account balance for the configured API key.
func (c *Client) Balance(ctx context.Context) (*BalanceInfo, error) {
	return c.resource.GetBalance(ctx)
}

// buildPayload snapshots the current state into a request payload.
func (c *Client) buildPayload() RequestPayload {
	payload := RequestPayload{
		Messages:         c.messages,
		Model:            c.model,
		Stream:           c.stream,
		Temperature:      c.temperature,
		MaxTokens:        c.maxTokens,
		TopP:             c.topP,
		FrequencyPenalty: c.frequencyPenalty,
		PresencePenalty:  c.presencePenalty,
	}
	if payload.Messages == nil {
		payload.Messages = []Message{}
	}
	if c.responseFormat != "" {
		payload.ResponseFormat = &ResponseFormat{Type: c.responseFormat}
	}
	return payload
}
