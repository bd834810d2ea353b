// Package deepseek provides a fluent client for the DeepSeek chat completion API.
//
// A client is obtained from Build (or the fluent ClientBuilder for non-default
// endpoints), messages are accumulated with Query, and Run sends the assembled
// request and returns the reply text:
//
//	client, err := deepseek.Build(os.Getenv("DEEPSEEK_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	reply, err := client.
//		Query("You are a helpful assistant.", deepseek.RoleSystem).
//		Query("Hello, world!").
//		Run(context.Background())
package deepseek

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the DeepSeek API endpoint used when no base URL is configured.
	DefaultBaseURL = "https://api.deepseek.com"

	// DefaultTimeout is the HTTP client timeout used when none is configured.
	DefaultTimeout = 30 * time.Second
)

// API endpoint paths, relative to the base URL.
const (
	chatCompletionsPath = "/chat/completions"
	modelsPath          = "/models"
	balancePath         = "/user/balance"
)

// ClientBuilder assembles a configured Client. All setters return the builder
// for chaining; options left unset fall back to the package defaults.
type ClientBuilder struct {
	key        string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewBuilder returns a ClientBuilder with default base URL and timeout.
func NewBuilder() *ClientBuilder {
	return &ClientBuilder{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
}

// SetKey sets the API key used for the Authorization header.
func (b *ClientBuilder) SetKey(apiKey string) *ClientBuilder {
	b.key = apiKey
	return b
}

// SetBaseURL overrides the API base URL. A trailing slash is stripped so that
// endpoint paths can be appended directly.
func (b *ClientBuilder) SetBaseURL(baseURL string) *ClientBuilder {
	if baseURL != "" {
		b.baseURL = strings.TrimRight(baseURL, "/")
	}
	return b
}

// SetTimeout overrides the HTTP client timeout.
func (b *ClientBuilder) SetTimeout(timeout time.Duration) *ClientBuilder {
	if timeout > 0 {
		b.timeout = timeout
	}
	return b
}

// SetHTTPClient supplies a custom HTTP client. The builder timeout is not
// applied to a custom client.
func (b *ClientBuilder) SetHTTPClient(httpClient *http.Client) *ClientBuilder {
	b.httpClient = httpClient
	return b
}

// Build constructs the Client. It fails when no API key has been set; every
// other option has a usable default.
func (b *ClientBuilder) Build() (*Client, error) {
	if b.key == "" {
		return nil, fmt.Errorf("deepseek: API key is required")
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: b.timeout}
	}

	return &Client{
		resource:    NewResource(b.baseURL, b.key, httpClient),
		temperature: TemperatureGeneralConversation,
	}, nil
}

// Build constructs a Client with the default base URL and timeout. Use
// NewBuilder to customize either.
func Build(apiKey string) (*Client, error) {
	return NewBuilder().SetKey(apiKey).Build()
}
