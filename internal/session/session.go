package session

import (
	"time"

	"github.com/aymanalhattami/deepseek-go-client/deepseek"
	"github.com/google/uuid"
)

// Message is one stored conversation message.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session represents a stored conversation.
type Session struct {
	ID           string    `json:"id"` // UUID v4
	Name         string    `json:"name"`
	TemplateName string    `json:"template_name"`
	SystemPrompt string    `json:"system_prompt"`
	Model        string    `json:"model"`
	Temperature  float64   `json:"temperature"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Messages     []Message `json:"messages"`
}

// NewSession creates a new session for the given model and temperature.
func NewSession(model string, temperature float64) *Session {
	now := time.Now()
	return &Session{
		ID:          uuid.New().String(),
		Model:       model,
		Temperature: temperature,
		CreatedAt:   now,
		UpdatedAt:   now,
		Messages:    []Message{},
	}
}

// AddMessage appends a message to the session.
func (s *Session) AddMessage(role deepseek.Role, content string) {
	s.Messages = append(s.Messages, Message{
		Role:      string(role),
		Content:   content,
		Timestamp: time.Now(),
	})
	s.UpdatedAt = time.Now()
}

// History converts the stored messages into API messages, in conversation
// order. The system prompt is prepended when set.
func (s *Session) History() []deepseek.Message {
	messages := make([]deepseek.Message, 0, len(s.Messages)+1)
	if s.SystemPrompt != "" {
		messages = append(messages, deepseek.Message{Role: deepseek.RoleSystem, Content: s.SystemPrompt})
	}
	for _, msg := range s.Messages {
		messages = append(messages, deepseek.Message{Role: deepseek.Role(msg.Role), Content: msg.Content})
	}
	return messages
}

// ShortID returns the shortened session ID (first 8 characters).
func (s *Session) ShortID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// DisplayName returns the session name, or the short ID when unnamed.
func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ShortID()
}

// MessageCount returns the number of messages in the session.
func (s *Session) MessageCount() int {
	return len(s.Messages)
}
