package tools

import (
	"fmt"
	"strings"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
	"github.com/jowharshamshiri/incode-go/internal/incodeerr"
)

// requireString returns args[key] as a string, or InvalidParameter if
// missing or of the wrong type.
func requireString(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", incodeerr.NewInvalidParameterError(fmt.Sprintf("missing required argument %q", key))
	}
	s, ok := v.(string)
	if !ok {
		return "", incodeerr.NewInvalidParameterError(fmt.Sprintf("argument %q must be a string", key))
	}
	return s, nil
}

func optString(args map[string]interface{}, key string) *string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func optBool(args map[string]interface{}, key string, def bool) bool {
	v, ok := args[key]
	if !ok || v == nil {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// numberOf coerces a decoded JSON number (float64, since
// encoding/json decodes all bare numbers that way) into a uint64.
func numberOf(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		return uint64(n), true
	case int:
		return uint64(n), true
	case int64:
		return uint64(n), true
	case uint64:
		return n, true
	}
	return 0, false
}

// requireAddress reads key as either a JSON number or a hex/decimal
// string and decodes it to an unsigned integer, per spec.md's
// argument-coercion contract.
func requireAddress(args map[string]interface{}, key string) (uint64, error) {
	v, ok := args[key]
	if !ok {
		return 0, incodeerr.NewInvalidParameterError(fmt.Sprintf("missing required argument %q", key))
	}
	if n, ok := numberOf(v); ok {
		return n, nil
	}
	if s, ok := v.(string); ok {
		return debugger.ParseAddress(s)
	}
	return 0, incodeerr.NewInvalidParameterError(fmt.Sprintf("argument %q must be a number or numeric string", key))
}

func optAddress(args map[string]interface{}, key string) (*uint64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	if n, ok := numberOf(v); ok {
		return &n, nil
	}
	if s, ok := v.(string); ok {
		n, err := debugger.ParseAddress(s)
		if err != nil {
			return nil, err
		}
		return &n, nil
	}
	return nil, incodeerr.NewInvalidParameterError(fmt.Sprintf("argument %q must be a number or numeric string", key))
}

func requireUint32(args map[string]interface{}, key string) (uint32, error) {
	n, err := requireAddress(args, key)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

func optUint32(args map[string]interface{}, key string) (*uint32, error) {
	n, err := optAddress(args, key)
	if err != nil || n == nil {
		return nil, err
	}
	v := uint32(*n)
	return &v, nil
}

// expressionDenylist blocks tokens that would let an "expression" or
// "breakpoint command" argument reach into process/OS control rather
// than pure inspection, per spec.md §4.C's tool-layer safety checks.
var expressionDenylist = []string{
	"system(", "exec(", "fork(", "kill(", "delete ", "free(",
	"malloc(", "realloc(", "memcpy(", "memset(", "strcpy(",
	"exit(", "abort(", "_exit(", "remove(", "unlink(", "rmdir(",
}

// commandDenylist extends expressionDenylist with the additional
// tokens reserved for raw lldb command text.
var commandDenylist = append(append([]string{}, expressionDenylist...),
	"process kill", "process detach", "quit", "exit", "target delete",
	"settings clear", "platform disconnect", "script import",
	"command script", "process connect", "gdb-remote", "kdp-remote",
	"platform connect",
)

func checkDenylist(s string, denylist []string) error {
	lower := strings.ToLower(s)
	for _, token := range denylist {
		if strings.Contains(lower, token) {
			return incodeerr.NewInvalidParameterError(fmt.Sprintf("input contains disallowed token %q", token))
		}
	}
	return nil
}

func requireExpression(args map[string]interface{}, key string) (string, error) {
	s, err := requireString(args, key)
	if err != nil {
		return "", err
	}
	if err := checkDenylist(s, expressionDenylist); err != nil {
		return "", err
	}
	return s, nil
}

func requireCommand(args map[string]interface{}, key string) (string, error) {
	s, err := requireString(args, key)
	if err != nil {
		return "", err
	}
	if err := checkDenylist(s, commandDenylist); err != nil {
		return "", err
	}
	return s, nil
}

func optStringSlice(args map[string]interface{}, key string) []string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func requireBytes(args map[string]interface{}, key string) ([]byte, error) {
	v, ok := args[key]
	if !ok {
		return nil, incodeerr.NewInvalidParameterError(fmt.Sprintf("missing required argument %q", key))
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, incodeerr.NewInvalidParameterError(fmt.Sprintf("argument %q must be an array of byte values", key))
	}
	out := make([]byte, 0, len(raw))
	for _, item := range raw {
		n, ok := numberOf(item)
		if !ok {
			return nil, incodeerr.NewInvalidParameterError(fmt.Sprintf("argument %q must contain only numbers", key))
		}
		out = append(out, byte(n))
	}
	return out, nil
}
