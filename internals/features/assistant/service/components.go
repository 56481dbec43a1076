// 📁 service/components.go
package service

import "eventku_backend/internals/features/assistant/registry"

// registerComponents mendaftarkan komponen UI yang boleh dirender asisten.
// PropsSchema dikonsumsi frontend untuk memvalidasi props sebelum render.
func registerComponents(r *registry.Registry) error {
	components := []registry.Component{
		{
			Name:        "EventList",
			Description: "Grid of event cards with title, date, location and price",
			PropsSchema: registry.ObjectSchema(map[string]any{
				"events": registry.ArrayProp("Events to display", registry.ObjectSchema(map[string]any{
					"event_id":    registry.StringProp("Event UUID"),
					"event_title": registry.StringProp("Event title"),
				})),
				"title": registry.StringProp("Optional heading above the list"),
			}, "events"),
		},
		{
			Name:        "TeamMatcher",
			Description: "Suggests teammates based on overlapping skills and team preference",
			PropsSchema: registry.ObjectSchema(map[string]any{
				"event_id": registry.StringProp("Event UUID"),
				"skills":   registry.ArrayProp("Skills to match against", registry.StringProp("Skill name")),
			}, "event_id"),
		},
		{
			Name:        "EventSchedule",
			Description: "Timeline of schedule items for one event",
			PropsSchema: registry.ObjectSchema(map[string]any{
				"event_id": registry.StringProp("Event UUID"),
			}, "event_id"),
		},
		{
			Name:        "PrizeDisplay",
			Description: "Podium-style display of event prizes ordered by rank",
			PropsSchema: registry.ObjectSchema(map[string]any{
				"event_id": registry.StringProp("Event UUID"),
			}, "event_id"),
		},
		{
			Name:        "ParticipantList",
			Description: "List of registered participants with avatars and skills",
			PropsSchema: registry.ObjectSchema(map[string]any{
				"event_id": registry.StringProp("Event UUID"),
				"limit":    registry.IntegerProp("Maximum participants to show"),
			}, "event_id"),
		},
		{
			Name:        "EventCalendar",
			Description: "Month calendar highlighting days that have events",
			PropsSchema: registry.ObjectSchema(map[string]any{
				"month": registry.StringProp("Month to display, YYYY-MM (defaults to current)"),
				"type":  registry.StringProp("Optional event type filter"),
			}),
		},
		{
			Name:        "EventAnalytics",
			Description: "Registration and capacity summary for an organizer's event",
			PropsSchema: registry.ObjectSchema(map[string]any{
				"event_id": registry.StringProp("Event UUID"),
			}, "event_id"),
		},
	}

	for _, cmp := range components {
		if err := r.RegisterComponent(cmp); err != nil {
			return err
		}
	}
	return nil
}
