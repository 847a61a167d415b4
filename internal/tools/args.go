package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/foodiespot/foodiebot/internal/core"
)

// Args is the raw argument map from a resolved tool call.
type Args map[string]any

// ArgumentError describes an argument-contract violation on a known tool.
// It is surfaced as a polite re-ask, never as a raw fault.
type ArgumentError struct {
	Tool     string
	Missing  []string
	Invalid  []string
	Unknown  []string
}

func (e *ArgumentError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.Invalid, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unexpected: "+strings.Join(e.Unknown, ", "))
	}
	return fmt.Sprintf("arguments for %s (%s)", e.Tool, strings.Join(parts, "; "))
}

// UserMessage is the conversational form of the violation.
func (e *ArgumentError) UserMessage() string {
	verb := strings.ReplaceAll(e.Tool, "_", " ")
	msg := fmt.Sprintf("Sorry, I seem to have the wrong details to %s. Could you please provide the required information again?", verb)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(" (I still need: %s.)", strings.Join(e.Missing, ", "))
	}
	return msg
}

// validate checks args against the declared parameter contract: every
// required parameter present, every supplied parameter declared and of the
// declared primitive type.
func validate(def core.ToolDefinition, args Args) *ArgumentError {
	argErr := &ArgumentError{Tool: def.Name}
	declared := make(map[string]core.Parameter, len(def.Parameters))
	for _, p := range def.Parameters {
		declared[p.Name] = p
	}

	for name := range args {
		if _, ok := declared[name]; !ok {
			argErr.Unknown = append(argErr.Unknown, name)
		}
	}
	for _, p := range def.Parameters {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if p.Required {
				argErr.Missing = append(argErr.Missing, p.Name)
			}
			continue
		}
		switch p.Type {
		case "integer":
			if _, ok := asInt(v); !ok {
				argErr.Invalid = append(argErr.Invalid, p.Name)
			}
		default:
			if _, ok := asString(v); !ok {
				argErr.Invalid = append(argErr.Invalid, p.Name)
			}
		}
	}

	if len(argErr.Missing) > 0 || len(argErr.Invalid) > 0 || len(argErr.Unknown) > 0 {
		return argErr
	}
	return nil
}

// String returns the named argument as a string. Missing or empty values
// return "".
func (a Args) String(name string) string {
	s, _ := asString(a[name])
	return strings.TrimSpace(s)
}

// Int returns the named argument as an int. Missing or malformed values
// return 0.
func (a Args) Int(name string) int {
	n, _ := asInt(a[name])
	return n
}

// asString accepts JSON strings only. Returns ok=true for absent values too
// (optional parameters); validate handles required-ness separately.
func asString(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}

// asInt accepts JSON numbers (integral), numeric strings, and json.Number.
// Models emit all three.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
