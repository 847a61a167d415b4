// Package agent runs the conversation: it assembles the prompt, calls the
// model, interprets the reply into a resolved intent, dispatches tool calls,
// and keeps the transcript. Every failure on the way degrades to a
// conversational message; no turn ever errors out to the user.
package agent

import (
	"context"
	"log"
	"time"

	"github.com/foodiespot/foodiebot/internal/config"
	"github.com/foodiespot/foodiebot/internal/core"
	"github.com/foodiespot/foodiebot/internal/gateway"
	"github.com/foodiespot/foodiebot/internal/store"
)

// Fixed user-facing fallbacks for failures outside the domain: the LLM
// boundary erroring, and the catch-all for states that should be impossible.
const (
	llmFailureReply      = "Sorry, I encountered an error trying to reach the AI service. Please try again later."
	unexpectedStateReply = "Sorry, an unexpected error occurred while processing the response."
)

// Loop drives one conversation turn at a time:
// build prompt -> call LLM -> interpret -> dispatch or reply -> append history.
type Loop struct {
	Config   *config.Config
	DB       *store.DB
	Client   core.LLMClient
	Executor core.ToolExecutor
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewLoop wires a conversation loop.
func NewLoop(cfg *config.Config, db *store.DB, client core.LLMClient, exec core.ToolExecutor) *Loop {
	return &Loop{Config: cfg, DB: db, Client: client, Executor: exec, Now: time.Now}
}

// RunOneTurn handles a single user message and returns the assistant reply.
// The returned error is reserved for wiring faults (e.g. a dead transcript
// store); everything the user can act on comes back as text.
func (l *Loop) RunOneTurn(ctx context.Context, msg gateway.Message) (string, error) {
	history, err := l.DB.RecentMessages(ctx, l.Config.HistoryLimit, msg.ThreadID)
	if err != nil {
		return "", err
	}
	if _, err := l.DB.InsertMessage(ctx, core.RoleUser, msg.Content, msg.SenderID, msg.Channel, msg.ThreadID); err != nil {
		return "", err
	}

	system := BuildSystemPrompt(l.Executor.Descriptions(), l.Now())
	messages := make([]core.Message, 0, len(history)+2)
	messages = append(messages, core.Message{Role: core.RoleSystem, Content: system})
	for _, h := range history {
		messages = append(messages, core.Message{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, core.Message{Role: core.RoleUser, Content: msg.Content})

	reply := l.resolve(ctx, messages)
	if reply == "" {
		// Interpret and the dispatcher are total, so this branch should be
		// unreachable; it exists so no state is ever silently unhandled.
		log.Printf("[AGENT] empty reply after dispatch; substituting fallback")
		reply = unexpectedStateReply
	}

	if _, err := l.DB.InsertMessage(ctx, core.RoleAssistant, reply, "foodiebot", msg.Channel, msg.ThreadID); err != nil {
		return "", err
	}
	return reply, nil
}

// resolve calls the model and turns whatever comes back into user-facing
// text. The LLM call carries a deadline: the external service can hang, and
// a turn must not hang with it.
func (l *Loop) resolve(ctx context.Context, messages []core.Message) string {
	llmCtx, cancel := context.WithTimeout(ctx, l.Config.LLMTimeout)
	defer cancel()

	raw, err := l.Client.ChatCompletion(llmCtx, messages)
	if err != nil {
		log.Printf("[AGENT] LLM call failed: %v", err)
		return llmFailureReply
	}

	intent := Interpret(raw)
	if intent.IsToolCall() {
		log.Printf("[AGENT] executing tool %s", intent.ToolName)
		return l.Executor.Execute(ctx, intent.ToolName, intent.Arguments)
	}
	return intent.Reply
}
