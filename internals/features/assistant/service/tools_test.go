package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistry_RegistersEverything(t *testing.T) {
	r, err := BuildRegistry(nil, nil)
	require.NoError(t, err)

	wantTools := []string{
		"create_event",
		"get_current_user",
		"get_event_details",
		"get_events",
		"get_my_events",
		"get_my_registrations",
		"register_for_event",
		"update_profile",
	}
	tools := r.Tools()
	require.Len(t, tools, len(wantTools))
	for i, tool := range tools {
		assert.Equal(t, wantTools[i], tool.Name)
		assert.NotEmpty(t, tool.Description)
		assert.NotNil(t, tool.Parameters)
	}

	// tool yang menyentuh data user wajib auth
	for _, name := range []string{"register_for_event", "get_current_user", "get_my_registrations", "get_my_events", "create_event", "update_profile"} {
		tool, ok := r.Tool(name)
		require.True(t, ok, name)
		assert.True(t, tool.RequiresAuth, "%s must require auth", name)
	}
	for _, name := range []string{"get_events", "get_event_details"} {
		tool, ok := r.Tool(name)
		require.True(t, ok, name)
		assert.False(t, tool.RequiresAuth, "%s must stay public", name)
	}

	wantComponents := []string{
		"EventAnalytics",
		"EventCalendar",
		"EventList",
		"EventSchedule",
		"ParticipantList",
		"PrizeDisplay",
		"TeamMatcher",
	}
	components := r.Components()
	require.Len(t, components, len(wantComponents))
	for i, cmp := range components {
		assert.Equal(t, wantComponents[i], cmp.Name)
		assert.NotNil(t, cmp.PropsSchema)
	}
}
