// 📁 controller/registration_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventku_backend/internals/features/registrations/dto"
	"eventku_backend/internals/features/registrations/model"
	"eventku_backend/internals/features/registrations/service"
	helper "eventku_backend/internals/helpers"
)

var validate = validator.New()

type RegistrationController struct {
	DB      *gorm.DB
	Service *service.RegistrationService
}

func NewRegistrationController(db *gorm.DB, svc *service.RegistrationService) *RegistrationController {
	return &RegistrationController{DB: db, Service: svc}
}

// 🟢 POST /api/events/:id/register
// Gratis → 201 + registrasi CONFIRMED. Berbayar → 200 + checkout_url.
func (ctrl *RegistrationController) Register(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userName, _ := c.Locals("user_name").(string)
	userEmail, _ := c.Locals("user_email").(string)

	res, err := ctrl.Service.Register(c.UserContext(), service.RegisterInput{
		UserID:          userID,
		UserName:        userName,
		UserEmail:       userEmail,
		EventID:         eventID,
		TeamPreference:  body.TeamPreference,
		Skills:          body.Skills,
		Motivation:      body.Motivation,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		case errors.Is(err, service.ErrAlreadyRegistered):
			return helper.JsonError(c, fiber.StatusBadRequest, "Already registered for this event")
		case errors.Is(err, service.ErrEventFull):
			return helper.JsonError(c, fiber.StatusBadRequest, "Event is full")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register for event")
		}
	}

	if res.CheckoutURL != "" {
		return helper.JsonOK(c, "Please complete payment to confirm registration", fiber.Map{
			"checkout_url": res.CheckoutURL,
			"registration": res.Registration,
		})
	}

	return helper.JsonCreated(c, "Successfully registered for the event!", fiber.Map{
		"registration": res.Registration,
	})
}

// 🟢 GET /api/events/:id/register
// Semua registrasi event + registrasi milik caller (jika login).
func (ctrl *RegistrationController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var registrations []model.RegistrationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "user_name", "user_avatar_url", "user_skills", "user_bio")
		}).
		Where("registration_event_id = ?", eventID).
		Order("created_at desc").
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	var userRegistration *model.RegistrationModel
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		for i := range registrations {
			if registrations[i].RegistrationUserID == userID {
				userRegistration = &registrations[i]
				break
			}
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"registrations":     registrations,
		"user_registration": userRegistration,
		"count":             len(registrations),
	})
}
