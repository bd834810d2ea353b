package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrompt(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".toml"), []byte(content), 0644))
}

func TestFormatMessageWithoutTemplate(t *testing.T) {
	formatted, err := FormatMessage("Hello", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello", formatted.User)
	assert.Empty(t, formatted.System)
	assert.Nil(t, formatted.Model)
}

func TestFormatMessagePlaceholders(t *testing.T) {
	dir := t.TempDir()
	writePrompt(t, dir, "translate", `
system = "Translate from {{from}} to {{to}}."
user = "{{input}}"
model = "deepseek-chat"
temperature = 1.3
`)

	formatted, err := FormatMessage("Hello", "translate", []string{dir}, []string{"from:English", "to:Japanese"})
	require.NoError(t, err)

	assert.Equal(t, "Translate from English to Japanese.", formatted.System)
	assert.Equal(t, "Hello", formatted.User)
	require.NotNil(t, formatted.Model)
	assert.Equal(t, "deepseek-chat", *formatted.Model)
	require.NotNil(t, formatted.Temperature)
	assert.Equal(t, 1.3, *formatted.Temperature)
}

func TestFormatMessageLaterDirectoriesWin(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	writePrompt(t, low, "greet", `
system = "low priority"
user = "{{input}}"
`)
	writePrompt(t, high, "greet", `
system = "high priority"
user = "{{input}}"
`)

	formatted, err := FormatMessage("Hello", "greet", []string{low, high}, nil)
	require.NoError(t, err)
	assert.Equal(t, "high priority", formatted.System)
}

func TestFormatMessageMissingTemplate(t *testing.T) {
	_, err := FormatMessage("Hello", "nope", []string{t.TempDir()}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProcessArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    map[string]string
		wantErr bool
	}{
		{
			name: "key value pairs",
			args: []string{"from:English", "to:Japanese"},
			want: map[string]string{"from": "English", "to": "Japanese"},
		},
		{
			name: "escaped colon in value",
			args: []string{`url:https\://example.com`},
			want: map[string]string{"url": "https://example.com"},
		},
		{
			name:    "missing colon",
			args:    []string{"broken"},
			wantErr: true,
		},
		{
			name:    "reserved input key",
			args:    []string{"input:nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := processArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
