// 📁 controller/event_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	"eventku_backend/internals/features/events/event/dto"
	"eventku_backend/internals/features/events/event/model"
	registrationModel "eventku_backend/internals/features/registrations/model"
	helper "eventku_backend/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// 🟢 GET /api/events
// Filter: ?type=, ?status=, ?organizer=me, plus paging (?page, ?per_page/?limit).
// Publik hanya melihat PUBLISHED kecuali filter organizer=me.
func (ctrl *EventController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.EventModel{})

	if t := strings.ToUpper(strings.TrimSpace(c.Query("type"))); t != "" {
		tx = tx.Where("event_type = ?", t)
	}

	mine := strings.EqualFold(strings.TrimSpace(c.Query("organizer")), "me")
	if mine {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
		}
		tx = tx.Where("event_organizer_id = ?", userID)
		// organizer boleh lihat draft miliknya, status tetap bisa difilter
		if s := strings.ToUpper(strings.TrimSpace(c.Query("status"))); s != "" {
			tx = tx.Where("event_status = ?", s)
		}
	} else if s := strings.ToUpper(strings.TrimSpace(c.Query("status"))); s != "" {
		tx = tx.Where("event_status = ?", s)
	} else {
		tx = tx.Where("event_status = ?", constants.EventStatusPublished)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	var events []model.EventModel
	if err := tx.
		Preload("Organizer", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "user_name", "user_avatar_url")
		}).
		Order("event_start_date asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	return helper.JsonList(c, "", events, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/events/:id
// Detail + organizer, prizes (urut rank), schedule (urut order), teams,
// jumlah registrasi aktif & sisa kursi.
func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Organizer", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "user_name", "user_avatar_url", "user_bio")
		}).
		Preload("Prizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("prize_rank asc")
		}).
		Preload("ScheduleItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("schedule_item_order asc, schedule_item_start_time asc")
		}).
		Preload("Teams.Members.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "user_name", "user_avatar_url", "user_skills")
		}).
		First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	var registered int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&registrationModel.RegistrationModel{}).
		Where("registration_event_id = ? AND registration_status <> ?", eventID, constants.RegistrationStatusCancelled).
		Count(&registered).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	spotsLeft := event.EventCapacity - int(registered)
	if spotsLeft < 0 {
		spotsLeft = 0
	}

	return helper.JsonOK(c, "", fiber.Map{
		"event":            event,
		"registered_count": registered,
		"spots_left":       spotsLeft,
	})
}

// 🟢 POST /api/events — khusus ORGANIZER
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}
	if helper.GetUserRoleFromToken(c) != constants.RoleOrganizer {
		return helper.JsonError(c, fiber.StatusForbidden, "Only organizers can create events")
	}

	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status := body.EventStatus
	if status == "" {
		status = constants.EventStatusDraft
	}
	currency := strings.ToUpper(body.EventCurrency)
	if currency == "" {
		currency = "USD"
	}

	event := model.EventModel{
		EventOrganizerID:  userID,
		EventTitle:        body.EventTitle,
		EventDescription:  body.EventDescription,
		EventType:         body.EventType,
		EventStatus:       status,
		EventStartDate:    body.EventStartDate,
		EventEndDate:      body.EventEndDate,
		EventLocation:     body.EventLocation,
		EventCapacity:     body.EventCapacity,
		EventPrice:        body.EventPrice,
		EventCurrency:     currency,
		EventImageURL:     body.EventImageURL,
		EventTags:         pq.StringArray(body.EventTags),
		EventRequirements: pq.StringArray(body.EventRequirements),
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&event).Error; err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created successfully", fiber.Map{"event": event})
}

// 🟢 PUT /api/events/:id — hanya organizer pemilik; partial update
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}
	if event.EventOrganizerID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only update your own events")
	}

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.EventTitle != nil {
		updates["event_title"] = *body.EventTitle
	}
	if body.EventDescription != nil {
		updates["event_description"] = *body.EventDescription
	}
	if body.EventType != nil {
		updates["event_type"] = *body.EventType
	}
	if body.EventStatus != nil {
		updates["event_status"] = *body.EventStatus
	}
	if body.EventStartDate != nil {
		updates["event_start_date"] = *body.EventStartDate
	}
	if body.EventEndDate != nil {
		updates["event_end_date"] = *body.EventEndDate
	}
	if body.EventLocation != nil {
		updates["event_location"] = *body.EventLocation
	}
	if body.EventCapacity != nil {
		updates["event_capacity"] = *body.EventCapacity
	}
	if body.EventPrice != nil {
		updates["event_price"] = *body.EventPrice
	}
	if body.EventCurrency != nil {
		updates["event_currency"] = strings.ToUpper(*body.EventCurrency)
	}
	if body.EventImageURL != nil {
		updates["event_image_url"] = *body.EventImageURL
	}
	if body.EventTags != nil {
		updates["event_tags"] = pq.StringArray(body.EventTags)
	}
	if body.EventRequirements != nil {
		updates["event_requirements"] = pq.StringArray(body.EventRequirements)
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&event).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update event %s: %v", eventID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.JsonUpdated(c, "Event updated successfully", fiber.Map{"event": event})
}

// 🟢 DELETE /api/events/:id — hanya organizer pemilik (soft delete)
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}
	if event.EventOrganizerID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only delete your own events")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	return helper.JsonDeleted(c, "Event deleted successfully", fiber.Map{"event_id": eventID})
}
