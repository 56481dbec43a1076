package registry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: "echoes its args",
		Parameters:  ObjectSchema(map[string]any{"msg": StringProp("Message")}),
		Handler: func(_ context.Context, call ToolCall) (any, error) {
			return call.Args, nil
		},
	}
}

func TestRegisterTool_Validation(t *testing.T) {
	r := New()

	assert.Error(t, r.RegisterTool(Tool{Name: "no-handler"}))
	assert.Error(t, r.RegisterTool(Tool{Handler: func(context.Context, ToolCall) (any, error) { return nil, nil }}))

	require.NoError(t, r.RegisterTool(echoTool("echo")))
	assert.Error(t, r.RegisterTool(echoTool("echo")), "duplicate names must be rejected")
}

func TestDispatch_UnknownTool(t *testing.T) {
	r := New()
	_, err := r.Dispatch(context.Background(), "nope", ToolCall{})
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestDispatch_AuthRequired(t *testing.T) {
	r := New()
	tool := echoTool("private")
	tool.RequiresAuth = true
	require.NoError(t, r.RegisterTool(tool))

	_, err := r.Dispatch(context.Background(), "private", ToolCall{})
	assert.ErrorIs(t, err, ErrAuthRequired)

	out, err := r.Dispatch(context.Background(), "private", ToolCall{
		UserID: uuid.New(),
		Args:   map[string]any{"msg": "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"msg": "hi"}, out)
}

func TestManifest_SortedAndComplete(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterTool(echoTool("zeta")))
	require.NoError(t, r.RegisterTool(echoTool("alpha")))
	require.NoError(t, r.RegisterComponent(Component{
		Name:        "EventList",
		Description: "list",
		PropsSchema: ObjectSchema(map[string]any{}),
	}))

	manifest := r.Manifest()

	tools, ok := manifest["tools"].([]Tool)
	require.True(t, ok)
	require.Len(t, tools, 2)
	assert.Equal(t, "alpha", tools[0].Name)
	assert.Equal(t, "zeta", tools[1].Name)

	components, ok := manifest["components"].([]Component)
	require.True(t, ok)
	require.Len(t, components, 1)
	assert.Equal(t, "EventList", components[0].Name)
}

func TestToolCall_ArgAccessors(t *testing.T) {
	call := ToolCall{Args: map[string]any{
		"name":   "  Ada  ",
		"limit":  float64(7), // JSON decode selalu float64
		"price":  19.5,
		"skills": []any{"go", " sql ", 42, ""},
	}}

	assert.Equal(t, "Ada", call.String("name"))
	assert.Equal(t, "", call.String("missing"))

	n, ok := call.Int("limit")
	require.True(t, ok)
	assert.Equal(t, 7, n)

	f, ok := call.Float("price")
	require.True(t, ok)
	assert.Equal(t, 19.5, f)

	_, ok = call.Float("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"go", "sql"}, call.StringSlice("skills"))
	assert.Nil(t, call.StringSlice("missing"))
}
