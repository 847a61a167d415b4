package agent

import (
	"encoding/json"
	"log"
	"strings"
)

// emptyResponseFallback is the terminal fallback when the model yields
// neither a tool call nor any text. It is always safe to show the user.
const emptyResponseFallback = "Sorry, I received an empty response. Could you please try again?"

// Intent is the resolved meaning of a raw model reply: either a tool call
// (ToolName set, not "none") or a direct reply (Reply set). Exactly one of
// the two is always populated.
type Intent struct {
	ToolName  string
	Arguments map[string]any
	Reply     string
}

// IsToolCall reports whether the intent resolves to a tool invocation.
func (i Intent) IsToolCall() bool {
	return i.ToolName != "" && i.ToolName != "none"
}

// Interpret turns a raw model reply into an Intent. The model is asked for a
// JSON object ({"tool_name", "arguments"} or {"tool_name": "none",
// "response": ...}) but nothing guarantees it complies, so interpretation is
// a layered fallback:
//
//  1. strip a fenced code block wrapper if present
//  2. strict JSON parse; failure means the cleaned text IS the reply
//  3. valid JSON that is not an object is also treated as the reply
//  4. a tool name alongside a response: the tool call wins (logged)
//  5. tool_name "none" without a response: the cleaned text is the reply
//  6. nothing at all: a fixed apology-and-retry reply
//
// Interpret is total: it never fails and never returns an empty intent.
func Interpret(raw string) Intent {
	cleaned := stripFence(raw)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.Printf("[AGENT] model reply is not JSON; treating as direct response")
		return directReply(cleaned)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		log.Printf("[AGENT] model reply is JSON but not an object; treating as direct response")
		return directReply(cleaned)
	}

	toolName, _ := obj["tool_name"].(string)
	response, _ := obj["response"].(string)
	arguments, _ := obj["arguments"].(map[string]any)

	if toolName != "" && toolName != "none" {
		if response != "" {
			log.Printf("[AGENT] model returned both tool %q and a response; prioritizing the tool call", toolName)
		}
		if arguments == nil {
			arguments = map[string]any{}
		}
		return Intent{ToolName: toolName, Arguments: arguments}
	}

	if response == "" {
		// tool_name "none" (or absent) with no response field: fall back to
		// the cleaned text itself.
		return directReply(cleaned)
	}
	return Intent{ToolName: "none", Reply: response}
}

func directReply(text string) Intent {
	if strings.TrimSpace(text) == "" {
		return Intent{ToolName: "none", Reply: emptyResponseFallback}
	}
	return Intent{ToolName: "none", Reply: text}
}

// stripFence removes a ```json (or bare ```) fenced wrapper around the whole
// reply, a habit many models have even when told to emit raw JSON.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	for _, open := range []string{"```json", "```"} {
		if strings.HasPrefix(s, open) && strings.HasSuffix(s, "```") && len(s) > len(open)+3 {
			return strings.TrimSpace(s[len(open) : len(s)-3])
		}
	}
	return s
}
