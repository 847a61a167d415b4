package agent

import (
	"testing"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTool  string
		wantReply string
		wantArg   string // value of arguments["cuisine"] when a tool call
	}{
		{
			name:     "valid tool call",
			raw:      `{"tool_name": "search_restaurants", "arguments": {"cuisine": "Italian"}}`,
			wantTool: "search_restaurants",
			wantArg:  "Italian",
		},
		{
			name:     "fenced json tool call",
			raw:      "```json\n{\"tool_name\": \"search_restaurants\", \"arguments\": {\"cuisine\": \"Italian\"}}\n```",
			wantTool: "search_restaurants",
			wantArg:  "Italian",
		},
		{
			name:     "bare fence",
			raw:      "```\n{\"tool_name\": \"search_restaurants\", \"arguments\": {\"cuisine\": \"Italian\"}}\n```",
			wantTool: "search_restaurants",
			wantArg:  "Italian",
		},
		{
			name:      "valid none with response",
			raw:       `{"tool_name": "none", "response": "What date works for you?"}`,
			wantReply: "What date works for you?",
		},
		{
			name:      "plain text is the reply",
			raw:       `Sure, I can help!`,
			wantReply: "Sure, I can help!",
		},
		{
			name:     "tool call with missing arguments gets an empty map",
			raw:      `{"tool_name": "search_restaurants"}`,
			wantTool: "search_restaurants",
		},
		{
			// Rule 4: the tool call wins over a stray response field.
			name:     "tool and response conflict",
			raw:      `{"tool_name": "search_restaurants", "arguments": {"cuisine": "Italian"}, "response": "Searching now..."}`,
			wantTool: "search_restaurants",
			wantArg:  "Italian",
		},
		{
			// Rule 5: none without a response falls back to the cleaned text.
			name:      "none without response",
			raw:       `{"tool_name": "none"}`,
			wantReply: `{"tool_name": "none"}`,
		},
		{
			name:      "json array is a direct reply",
			raw:       `[1, 2, 3]`,
			wantReply: `[1, 2, 3]`,
		},
		{
			name:      "json string is a direct reply",
			raw:       `"hello"`,
			wantReply: `"hello"`,
		},
		{
			name:      "object missing both fields falls back to cleaned text",
			raw:       `{"foo": "bar"}`,
			wantReply: `{"foo": "bar"}`,
		},
		{
			name:      "empty input yields the apology",
			raw:       "",
			wantReply: emptyResponseFallback,
		},
		{
			name:      "whitespace only yields the apology",
			raw:       "   \n\t  ",
			wantReply: emptyResponseFallback,
		},
		{
			name:      "empty fenced block yields the apology",
			raw:       "```json\n \n```",
			wantReply: emptyResponseFallback,
		},
		{
			name:     "non-string tool_name is ignored",
			raw:      `{"tool_name": 42, "response": "hmm"}`,
			wantReply: "hmm",
		},
		{
			name:     "arguments of wrong shape become empty map",
			raw:      `{"tool_name": "make_reservation", "arguments": "FS01"}`,
			wantTool: "make_reservation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.raw)

			// Totality: exactly one of tool call or non-empty reply.
			if got.IsToolCall() {
				if got.Reply != "" {
					t.Errorf("tool-call intent carries a reply: %+v", got)
				}
				if got.Arguments == nil {
					t.Error("tool-call intent must carry a non-nil argument map")
				}
			} else if got.Reply == "" {
				t.Fatalf("intent is neither tool call nor reply: %+v", got)
			}

			if tt.wantTool != "" {
				if got.ToolName != tt.wantTool {
					t.Errorf("tool = %q, want %q", got.ToolName, tt.wantTool)
				}
				if tt.wantArg != "" {
					if v, _ := got.Arguments["cuisine"].(string); v != tt.wantArg {
						t.Errorf("arguments[cuisine] = %q, want %q", v, tt.wantArg)
					}
				}
			} else if got.IsToolCall() {
				t.Errorf("unexpected tool call %q", got.ToolName)
			}
			if tt.wantReply != "" && got.Reply != tt.wantReply {
				t.Errorf("reply = %q, want %q", got.Reply, tt.wantReply)
			}
		})
	}
}
