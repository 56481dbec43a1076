// 📁 controller/prize_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventku_backend/internals/features/events/event/dto"
	"eventku_backend/internals/features/events/event/model"
	helper "eventku_backend/internals/helpers"
)

type PrizeController struct {
	DB *gorm.DB
}

func NewPrizeController(db *gorm.DB) *PrizeController {
	return &PrizeController{DB: db}
}

// 🟢 GET /api/events/:id/prizes — publik, urut rank
func (ctrl *PrizeController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var prizes []model.PrizeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("prize_event_id = ?", eventID).
		Order("prize_rank asc").
		Find(&prizes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch prizes")
	}

	return helper.JsonOK(c, "", fiber.Map{"prizes": prizes})
}

// 🟢 POST /api/events/:id/prizes — hanya organizer pemilik event
func (ctrl *PrizeController) Create(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusForbidden, "You can only manage prizes for your own events")
	}

	var body dto.CreatePrizeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	currency := strings.ToUpper(body.PrizeCurrency)
	if currency == "" {
		currency = event.EventCurrency
	}

	prize := model.PrizeModel{
		PrizeEventID:     eventID,
		PrizeRank:        body.PrizeRank,
		PrizeTitle:       body.PrizeTitle,
		PrizeDescription: body.PrizeDescription,
		PrizeValue:       body.PrizeValue,
		PrizeCurrency:    currency,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&prize).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create prize")
	}

	return helper.JsonCreated(c, "Prize added successfully", fiber.Map{"prize": prize})
}
