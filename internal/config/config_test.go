package config

import (
	"testing"
	"time"

	"github.com/aymanalhattami/deepseek-go-client/deepseek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("DSC_TEST_TOKEN", "sk-from-env")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain value passes through", value: "sk-literal", want: "sk-literal"},
		{name: "dollar syntax", value: "$DSC_TEST_TOKEN", want: "sk-from-env"},
		{name: "brace syntax", value: "${DSC_TEST_TOKEN}", want: "sk-from-env"},
		{name: "unset variable expands to empty", value: "$DSC_TEST_UNSET", want: ""},
		{name: "empty value", value: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnvVar(tt.value))
		})
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig("/tmp/prompts")

	assert.Equal(t, deepseek.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "$DEEPSEEK_API_KEY", cfg.Token)
	assert.Equal(t, deepseek.ModelChat, cfg.Model)
	assert.Equal(t, deepseek.TemperatureGeneralConversation, cfg.Temperature)
	assert.Equal(t, []string{"/tmp/prompts"}, cfg.PromptDirs)
}

func TestGetToken(t *testing.T) {
	cfg := &Config{Token: "sk-test"}
	token, err := cfg.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", token)

	cfg.Token = ""
	_, err = cfg.GetToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEEPSEEK_API_KEY")
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{name: "configured", seconds: 10, want: 10 * time.Second},
		{name: "zero falls back to default", seconds: 0, want: deepseek.DefaultTimeout},
		{name: "negative falls back to default", seconds: -1, want: deepseek.DefaultTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{TimeoutSeconds: tt.seconds}
			assert.Equal(t, tt.want, cfg.Timeout())
		})
	}
}
