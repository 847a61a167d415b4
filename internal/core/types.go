package core

// Message represents a role-tagged chat turn sent to the model or stored
// in the transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ToolDefinition describes a tool available to the model. The same
// definitions drive both the prompt fragment shown to the LLM and the
// dispatcher's argument validation, so the two cannot drift apart.
type ToolDefinition struct {
	Name        string      `json:"tool_name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

// Parameter describes one declared tool argument.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "string" or "integer"
	Description string `json:"description"`
	Required    bool   `json:"-"`
}
