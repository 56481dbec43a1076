// 📁 registry/args.go
// Aksesor argumen: body JSON di-decode ke map[string]any, jadi angka
// selalu float64 — helper ini yang menormalkan.
package registry

import "strings"

func (tc ToolCall) String(key string) string {
	if v, ok := tc.Args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func (tc ToolCall) Float(key string) (float64, bool) {
	switch v := tc.Args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (tc ToolCall) Int(key string) (int, bool) {
	f, ok := tc.Float(key)
	return int(f), ok
}

func (tc ToolCall) StringSlice(key string) []string {
	raw, ok := tc.Args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
