package deepseek

// Role identifies the author of a conversation message.
type Role string

// Roles accepted by the chat completion endpoint.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one role-tagged piece of conversation content. Message order is
// conversation order and is preserved in the request payload.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
