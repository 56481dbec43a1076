// 📁 service/tools.go
// Pengikatan tool asisten ke data & workflow backend. Semua tool dan
// komponen didaftarkan eksplisit di sini — satu tempat untuk melihat
// seluruh permukaan yang bisa dipakai asisten.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	"eventku_backend/internals/features/assistant/registry"
	eventModel "eventku_backend/internals/features/events/event/model"
	registrationModel "eventku_backend/internals/features/registrations/model"
	registrationService "eventku_backend/internals/features/registrations/service"
	userModel "eventku_backend/internals/features/users/user/model"
)

var ErrOrganizerOnly = errors.New("only organizers can use this tool")

// BuildRegistry mendaftarkan 8 tool + 7 komponen asisten.
// Error di sini fatal: dipanggil sekali saat startup.
func BuildRegistry(db *gorm.DB, regSvc *registrationService.RegistrationService) (*registry.Registry, error) {
	r := registry.New()

	tools := []registry.Tool{
		{
			Name:        "get_events",
			Description: "List published events, optionally filtered by type",
			Parameters: registry.ObjectSchema(map[string]any{
				"type":  registry.StringProp("Event type filter", constants.EventTypes...),
				"limit": registry.IntegerProp("Maximum number of events to return (default 20)"),
			}),
			Handler: getEvents(db),
		},
		{
			Name:        "get_event_details",
			Description: "Get full details of one event: organizer, prizes, schedule, teams and remaining spots",
			Parameters: registry.ObjectSchema(map[string]any{
				"event_id": registry.StringProp("Event UUID"),
			}, "event_id"),
			Handler: getEventDetails(db),
		},
		{
			Name:        "register_for_event",
			Description: "Register the current user for an event; paid events return a checkout URL",
			Parameters: registry.ObjectSchema(map[string]any{
				"event_id":        registry.StringProp("Event UUID"),
				"team_preference": registry.StringProp("Team preference", "solo", "looking", "have_team"),
				"skills":          registry.ArrayProp("Skills to share with other participants", registry.StringProp("Skill name")),
				"motivation":      registry.StringProp("Why the user wants to join"),
			}, "event_id"),
			RequiresAuth: true,
			Handler:      registerForEvent(regSvc),
		},
		{
			Name:         "get_current_user",
			Description:  "Get the profile of the currently logged-in user",
			Parameters:   registry.ObjectSchema(map[string]any{}),
			RequiresAuth: true,
			Handler:      getCurrentUser(db),
		},
		{
			Name:         "get_my_registrations",
			Description:  "List the current user's event registrations with event details",
			Parameters:   registry.ObjectSchema(map[string]any{}),
			RequiresAuth: true,
			Handler:      getMyRegistrations(db),
		},
		{
			Name:         "get_my_events",
			Description:  "List events organized by the current user, including drafts",
			Parameters:   registry.ObjectSchema(map[string]any{}),
			RequiresAuth: true,
			Handler:      getMyEvents(db),
		},
		{
			Name:        "create_event",
			Description: "Create a new event (organizers only)",
			Parameters: registry.ObjectSchema(map[string]any{
				"title":       registry.StringProp("Event title"),
				"description": registry.StringProp("Event description"),
				"type":        registry.StringProp("Event type", constants.EventTypes...),
				"start_date":  registry.StringProp("Start date, RFC 3339"),
				"end_date":    registry.StringProp("End date, RFC 3339"),
				"location":    registry.StringProp("Event location"),
				"capacity":    registry.IntegerProp("Maximum number of attendees"),
				"price":       registry.NumberProp("Ticket price in major currency units, 0 for free"),
				"currency":    registry.StringProp("ISO 4217 currency code, defaults to USD"),
				"tags":        registry.ArrayProp("Tags", registry.StringProp("Tag")),
			}, "title", "type", "start_date", "end_date", "capacity"),
			RequiresAuth: true,
			Handler:      createEvent(db),
		},
		{
			Name:        "update_profile",
			Description: "Update the current user's profile",
			Parameters: registry.ObjectSchema(map[string]any{
				"name":      registry.StringProp("Display name"),
				"bio":       registry.StringProp("Short bio"),
				"skills":    registry.ArrayProp("Skills", registry.StringProp("Skill name")),
				"interests": registry.ArrayProp("Interests", registry.StringProp("Interest")),
			}),
			RequiresAuth: true,
			Handler:      updateProfile(db),
		},
	}

	for _, t := range tools {
		if err := r.RegisterTool(t); err != nil {
			return nil, err
		}
	}

	if err := registerComponents(r); err != nil {
		return nil, err
	}
	return r, nil
}

/* ==========================
   Tool handlers
========================== */

func getEvents(db *gorm.DB) registry.ToolHandler {
	return func(ctx context.Context, call registry.ToolCall) (any, error) {
		limit := 20
		if n, ok := call.Int("limit"); ok && n > 0 && n <= 100 {
			limit = n
		}

		tx := db.WithContext(ctx).
			Where("event_status = ?", constants.EventStatusPublished)
		if t := strings.ToUpper(call.String("type")); t != "" {
			tx = tx.Where("event_type = ?", t)
		}

		var events []eventModel.EventModel
		if err := tx.Order("event_start_date asc").Limit(limit).Find(&events).Error; err != nil {
			return nil, err
		}
		return map[string]any{"events": events, "count": len(events)}, nil
	}
}

func getEventDetails(db *gorm.DB) registry.ToolHandler {
	return func(ctx context.Context, call registry.ToolCall) (any, error) {
		eventID, err := uuid.Parse(call.String("event_id"))
		if err != nil {
			return nil, fmt.Errorf("invalid event_id: %w", err)
		}

		var event eventModel.EventModel
		if err := db.WithContext(ctx).
			Preload("Organizer", func(db *gorm.DB) *gorm.DB {
				return db.Select("user_id", "user_name", "user_avatar_url")
			}).
			Preload("Prizes", func(db *gorm.DB) *gorm.DB {
				return db.Order("prize_rank asc")
			}).
			Preload("ScheduleItems", func(db *gorm.DB) *gorm.DB {
				return db.Order("schedule_item_order asc, schedule_item_start_time asc")
			}).
			Preload("Teams.Members").
			First(&event, "event_id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, registrationService.ErrEventNotFound
			}
			return nil, err
		}

		var registered int64
		if err := db.WithContext(ctx).
			Model(&registrationModel.RegistrationModel{}).
			Where("registration_event_id = ? AND registration_status <> ?",
				eventID, constants.RegistrationStatusCancelled).
			Count(&registered).Error; err != nil {
			return nil, err
		}

		spotsLeft := event.EventCapacity - int(registered)
		if spotsLeft < 0 {
			spotsLeft = 0
		}

		return map[string]any{
			"event":            event,
			"registered_count": registered,
			"spots_left":       spotsLeft,
		}, nil
	}
}

func registerForEvent(regSvc *registrationService.RegistrationService) registry.ToolHandler {
	return func(ctx context.Context, call registry.ToolCall) (any, error) {
		eventID, err := uuid.Parse(call.String("event_id"))
		if err != nil {
			return nil, fmt.Errorf("invalid event_id: %w", err)
		}

		res, err := regSvc.Register(ctx, registrationService.RegisterInput{
			UserID:         call.UserID,
			UserName:       call.UserName,
			UserEmail:      call.UserEmail,
			EventID:        eventID,
			TeamPreference: call.String("team_preference"),
			Skills:         call.StringSlice("skills"),
			Motivation:     call.String("motivation"),
		})
		if err != nil {
			return nil, err
		}

		out := map[string]any{"registration": res.Registration}
		if res.CheckoutURL != "" {
			out["checkout_url"] = res.CheckoutURL
			out["message"] = "Please complete payment to confirm registration"
		} else {
			out["message"] = "Successfully registered for the event!"
		}
		return out, nil
	}
}

func getCurrentUser(db *gorm.DB) registry.ToolHandler {
	return func(ctx context.Context, call registry.ToolCall) (any, error) {
		var user userModel.UserModel
		if err := db.WithContext(ctx).
			First(&user, "user_id = ?", call.UserID).Error; err != nil {
			return nil, err
		}
		return map[string]any{"user": user}, nil
	}
}

func getMyRegistrations(db *gorm.DB) registry.ToolHandler {
	return func(ctx context.Context, call registry.ToolCall) (any, error) {
		var registrations []registrationModel.RegistrationModel
		if err := db.WithContext(ctx).
			Preload("Event", func(db *gorm.DB) *gorm.DB {
				return db.Select("event_id", "event_title", "event_type", "event_status",
					"event_start_date", "event_end_date", "event_location")
			}).
			Where("registration_user_id = ?", call.UserID).
			Order("created_at desc").
			Find(&registrations).Error; err != nil {
			return nil, err
		}
		return map[string]any{"registrations": registrations, "count": len(registrations)}, nil
	}
}

func getMyEvents(db *gorm.DB) registry.ToolHandler {
	return func(ctx context.Context, call registry.ToolCall) (any, error) {
		var events []eventModel.EventModel
		if err := db.WithContext(ctx).
			Where("event_organizer_id = ?", call.UserID).
			Order("event_start_date asc").
			Find(&events).Error; err != nil {
			return nil, err
		}
		return map[string]any{"events": events, "count": len(events)}, nil
	}
}

func createEvent(db *gorm.DB) registry.ToolHandler {
	return func(ctx context.Context, call registry.ToolCall) (any, error) {
		if call.UserRole != constants.RoleOrganizer {
			return nil, ErrOrganizerOnly
		}

		startDate, err := time.Parse(time.RFC3339, call.String("start_date"))
		if err != nil {
			return nil, fmt.Errorf("invalid start_date: %w", err)
		}
		endDate, err := time.Parse(time.RFC3339, call.String("end_date"))
		if err != nil {
			return nil, fmt.Errorf("invalid end_date: %w", err)
		}
		if !endDate.After(startDate) {
			return nil, errors.New("end_date must be after start_date")
		}

		capacity, ok := call.Int("capacity")
		if !ok || capacity <= 0 {
			return nil, errors.New("capacity must be greater than zero")
		}
		price, _ := call.Float("price")
		if price < 0 {
			return nil, errors.New("price cannot be negative")
		}

		currency := strings.ToUpper(call.String("currency"))
		if currency == "" {
			currency = "USD"
		}

		event := eventModel.EventModel{
			EventOrganizerID: call.UserID,
			EventTitle:       call.String("title"),
			EventDescription: call.String("description"),
			EventType:        strings.ToUpper(call.String("type")),
			EventStatus:      constants.EventStatusDraft,
			EventStartDate:   startDate,
			EventEndDate:     endDate,
			EventLocation:    call.String("location"),
			EventCapacity:    capacity,
			EventPrice:       price,
			EventCurrency:    currency,
			EventTags:        pq.StringArray(call.StringSlice("tags")),
		}
		if err := db.WithContext(ctx).Create(&event).Error; err != nil {
			return nil, err
		}
		return map[string]any{"event": event, "message": "Event created as draft"}, nil
	}
}

func updateProfile(db *gorm.DB) registry.ToolHandler {
	return func(ctx context.Context, call registry.ToolCall) (any, error) {
		updates := map[string]interface{}{}
		if v := call.String("name"); v != "" {
			updates["user_name"] = v
		}
		if v := call.String("bio"); v != "" {
			updates["user_bio"] = v
		}
		if v := call.StringSlice("skills"); v != nil {
			updates["user_skills"] = pq.StringArray(v)
		}
		if v := call.StringSlice("interests"); v != nil {
			updates["user_interests"] = pq.StringArray(v)
		}
		if len(updates) == 0 {
			return nil, errors.New("no fields to update")
		}

		if err := db.WithContext(ctx).
			Model(&userModel.UserModel{}).
			Where("user_id = ?", call.UserID).
			Updates(updates).Error; err != nil {
			return nil, err
		}

		var user userModel.UserModel
		if err := db.WithContext(ctx).
			First(&user, "user_id = ?", call.UserID).Error; err != nil {
			return nil, err
		}
		return map[string]any{"user": user, "message": "Profile updated"}, nil
	}
}
