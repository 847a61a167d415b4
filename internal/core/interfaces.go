package core

import "context"

// LLMClient abstracts the low-level chat-completions client (Groq, local
// LLM, etc). Implementations must honor ctx cancellation; the agent sets a
// deadline on every call.
type LLMClient interface {
	ChatCompletion(ctx context.Context, messages []Message) (string, error)
}

// ToolExecutor executes a named tool with a raw argument map and returns a
// user-facing message. It never returns an error for conditions the user can
// act on; those become conversational text.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, args map[string]any) string
	Definitions() []ToolDefinition
	Descriptions() string
}
