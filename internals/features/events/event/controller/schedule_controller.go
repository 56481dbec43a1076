// 📁 controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventku_backend/internals/features/events/event/dto"
	"eventku_backend/internals/features/events/event/model"
	helper "eventku_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// 🟢 GET /api/events/:id/schedule — publik, urut order lalu jam mulai
func (ctrl *ScheduleController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var items []model.ScheduleItemModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("schedule_item_event_id = ?", eventID).
		Order("schedule_item_order asc, schedule_item_start_time asc").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	return helper.JsonOK(c, "", fiber.Map{"schedule_items": items})
}

// 🟢 POST /api/events/:id/schedule — hanya organizer pemilik event
func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusForbidden, "You can only manage the schedule for your own events")
	}

	var body dto.CreateScheduleItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item := model.ScheduleItemModel{
		ScheduleItemEventID:     eventID,
		ScheduleItemTitle:       body.ScheduleItemTitle,
		ScheduleItemDescription: body.ScheduleItemDescription,
		ScheduleItemStartTime:   body.ScheduleItemStartTime,
		ScheduleItemEndTime:     body.ScheduleItemEndTime,
		ScheduleItemLocation:    body.ScheduleItemLocation,
		ScheduleItemSpeaker:     body.ScheduleItemSpeaker,
		ScheduleItemOrder:       body.ScheduleItemOrder,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule item")
	}

	return helper.JsonCreated(c, "Schedule item added successfully", fiber.Map{"schedule_item": item})
}
