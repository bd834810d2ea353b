package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aymanalhattami/deepseek-go-client/deepseek"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempSessionDir points session storage at a temporary directory by
// simulating a config file next to it.
func useTempSessionDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	viper.SetConfigFile(filepath.Join(dir, "config.toml"))
	t.Cleanup(viper.Reset)
	return filepath.Join(dir, "sessions")
}

func TestNewSession(t *testing.T) {
	sess := NewSession(deepseek.ModelChat, 1.3)

	assert.Len(t, sess.ID, 36)
	assert.Equal(t, deepseek.ModelChat, sess.Model)
	assert.Equal(t, 1.3, sess.Temperature)
	assert.Empty(t, sess.Messages)
	assert.False(t, sess.CreatedAt.IsZero())
}

func TestAddMessage(t *testing.T) {
	sess := NewSession(deepseek.ModelChat, 1.3)
	before := sess.UpdatedAt

	sess.AddMessage(deepseek.RoleUser, "Hello")
	sess.AddMessage(deepseek.RoleAssistant, "Hi there!")

	require.Equal(t, 2, sess.MessageCount())
	assert.Equal(t, "user", sess.Messages[0].Role)
	assert.Equal(t, "Hello", sess.Messages[0].Content)
	assert.Equal(t, "assistant", sess.Messages[1].Role)
	assert.False(t, sess.UpdatedAt.Before(before))
}

func TestHistory(t *testing.T) {
	tests := []struct {
		name         string
		systemPrompt string
		want         []deepseek.Message
	}{
		{
			name: "without system prompt",
			want: []deepseek.Message{
				{Role: deepseek.RoleUser, Content: "Hello"},
				{Role: deepseek.RoleAssistant, Content: "Hi there!"},
			},
		},
		{
			name:         "system prompt is prepended",
			systemPrompt: "You are terse.",
			want: []deepseek.Message{
				{Role: deepseek.RoleSystem, Content: "You are terse."},
				{Role: deepseek.RoleUser, Content: "Hello"},
				{Role: deepseek.RoleAssistant, Content: "Hi there!"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSession(deepseek.ModelChat, 1.3)
			sess.SystemPrompt = tt.systemPrompt
			sess.AddMessage(deepseek.RoleUser, "Hello")
			sess.AddMessage(deepseek.RoleAssistant, "Hi there!")

			assert.Equal(t, tt.want, sess.History())
		})
	}
}

func TestShortIDAndDisplayName(t *testing.T) {
	sess := NewSession(deepseek.ModelChat, 1.3)

	assert.Len(t, sess.ShortID(), 8)
	assert.Equal(t, sess.ShortID(), sess.DisplayName())

	sess.Name = "budget planning"
	assert.Equal(t, "budget planning", sess.DisplayName())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempSessionDir(t)

	sess := NewSession(deepseek.ModelReasoner, 0.7)
	sess.Name = "test"
	sess.AddMessage(deepseek.RoleUser, "Hello")
	require.NoError(t, Save(sess))

	loaded, err := Load(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, "test", loaded.Name)
	assert.Equal(t, deepseek.ModelReasoner, loaded.Model)
	assert.Equal(t, 0.7, loaded.Temperature)
	require.Equal(t, 1, loaded.MessageCount())
	assert.Equal(t, "Hello", loaded.Messages[0].Content)
}

func TestLoadMissingSession(t *testing.T) {
	useTempSessionDir(t)

	_, err := Load("00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestFindByPrefix(t *testing.T) {
	useTempSessionDir(t)

	sess := NewSession(deepseek.ModelChat, 1.3)
	require.NoError(t, Save(sess))

	found, err := FindByPrefix(sess.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, sess.ID, found.ID)

	found, err = FindByPrefix("latest")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, found.ID)

	_, err = FindByPrefix("ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 4 characters")
}

func TestListSortsByUpdatedAt(t *testing.T) {
	useTempSessionDir(t)

	older := NewSession(deepseek.ModelChat, 1.3)
	older.UpdatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, Save(older))

	newer := NewSession(deepseek.ModelChat, 1.3)
	require.NoError(t, Save(newer))

	sessions, err := List()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, newer.ID, sessions[0].ID)
	assert.Equal(t, older.ID, sessions[1].ID)
}

func TestPrune(t *testing.T) {
	useTempSessionDir(t)

	stale := NewSession(deepseek.ModelChat, 1.3)
	stale.UpdatedAt = time.Now().AddDate(0, 0, -60)
	require.NoError(t, Save(stale))

	fresh := NewSession(deepseek.ModelChat, 1.3)
	require.NoError(t, Save(fresh))

	deleted, err := Prune(30)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	sessions, err := List()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, fresh.ID, sessions[0].ID)

	// Retention of zero disables pruning.
	deleted, err = Prune(0)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
