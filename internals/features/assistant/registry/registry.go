// 📁 registry/registry.go
// Registry deklaratif untuk tool & komponen asisten AI.
// Tool didaftarkan eksplisit dengan JSON-schema parameternya; manifest
// yang diekspos ke frontend dibangun dari registry ini, bukan hardcode.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrUnknownTool  = errors.New("unknown tool")
	ErrAuthRequired = errors.New("tool requires authentication")
)

// ToolCall adalah satu invokasi tool: argumen + identitas pemanggil.
// Caller kosong (uuid.Nil) berarti anonim.
type ToolCall struct {
	Args      map[string]any
	UserID    uuid.UUID
	UserName  string
	UserEmail string
	UserRole  string
}

type ToolHandler func(ctx context.Context, call ToolCall) (any, error)

type Tool struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Parameters   map[string]any `json:"parameters"`
	RequiresAuth bool           `json:"requires_auth"`

	Handler ToolHandler `json:"-"`
}

// Component mendeskripsikan komponen UI yang boleh dirender asisten.
type Component struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	PropsSchema map[string]any `json:"props_schema"`
}

type Registry struct {
	mu         sync.RWMutex
	tools      map[string]Tool
	components map[string]Component
}

func New() *Registry {
	return &Registry{
		tools:      make(map[string]Tool),
		components: make(map[string]Component),
	}
}

// RegisterTool menolak duplikat & tool tanpa handler; salah daftar harus
// ketahuan saat startup, bukan saat dispatch.
func (r *Registry) RegisterTool(t Tool) error {
	if t.Name == "" || t.Handler == nil {
		return fmt.Errorf("tool %q: name and handler are required", t.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q already registered", t.Name)
	}
	r.tools[t.Name] = t
	return nil
}

func (r *Registry) RegisterComponent(cmp Component) error {
	if cmp.Name == "" {
		return errors.New("component name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.components[cmp.Name]; exists {
		return fmt.Errorf("component %q already registered", cmp.Name)
	}
	r.components[cmp.Name] = cmp
	return nil
}

// Dispatch menjalankan tool berdasarkan nama.
func (r *Registry) Dispatch(ctx context.Context, name string, call ToolCall) (any, error) {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if tool.RequiresAuth && call.UserID == uuid.Nil {
		return nil, ErrAuthRequired
	}
	return tool.Handler(ctx, call)
}

func (r *Registry) Tool(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Tools mengembalikan semua tool terurut nama (stabil untuk manifest).
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Components() []Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Component, 0, len(r.components))
	for _, cmp := range r.components {
		out = append(out, cmp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Manifest adalah payload deklaratif yang dikonsumsi frontend asisten.
func (r *Registry) Manifest() map[string]any {
	return map[string]any{
		"tools":      r.Tools(),
		"components": r.Components(),
	}
}

/* ==========================
   JSON-schema builders
========================== */

// ObjectSchema membangun schema object sederhana untuk parameter tool.
func ObjectSchema(properties map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func StringProp(description string, enum ...string) map[string]any {
	p := map[string]any{"type": "string", "description": description}
	if len(enum) > 0 {
		p["enum"] = enum
	}
	return p
}

func NumberProp(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

func IntegerProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func ArrayProp(description string, items map[string]any) map[string]any {
	return map[string]any{"type": "array", "description": description, "items": items}
}
