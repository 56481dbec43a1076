// 📁 controller/assistant_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"eventku_backend/internals/features/assistant/model"
	"eventku_backend/internals/features/assistant/registry"
	assistantService "eventku_backend/internals/features/assistant/service"
	registrationService "eventku_backend/internals/features/registrations/service"
	helper "eventku_backend/internals/helpers"
)

type AssistantController struct {
	DB       *gorm.DB
	Registry *registry.Registry
}

func NewAssistantController(db *gorm.DB, reg *registry.Registry) *AssistantController {
	return &AssistantController{DB: db, Registry: reg}
}

// 🟢 GET /api/assistant/manifest
// Daftar deklaratif tool + komponen untuk frontend asisten.
func (ctrl *AssistantController) Manifest(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", ctrl.Registry.Manifest())
}

type invokeRequest struct {
	Args map[string]any `json:"args"`
}

// 🟢 POST /api/assistant/tools/:name
// Jalankan satu tool. Identitas caller diambil dari sesi (kalau ada);
// tiap invokasi dicatat ke assistant_invocations.
func (ctrl *AssistantController) InvokeTool(c *fiber.Ctx) error {
	name := c.Params("name")

	var body invokeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if body.Args == nil {
		body.Args = map[string]any{}
	}

	call := registry.ToolCall{Args: body.Args}
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		call.UserID = userID
		call.UserName, _ = c.Locals("user_name").(string)
		call.UserEmail, _ = c.Locals("user_email").(string)
		call.UserRole = helper.GetUserRoleFromToken(c)
	}

	started := time.Now()
	result, err := ctrl.Registry.Dispatch(c.UserContext(), name, call)
	ctrl.logInvocation(c, name, call, err, time.Since(started))

	if err != nil {
		switch {
		case errors.Is(err, registry.ErrUnknownTool):
			return helper.JsonError(c, fiber.StatusNotFound, "Unknown tool: "+name)
		case errors.Is(err, registry.ErrAuthRequired):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
		case errors.Is(err, assistantService.ErrOrganizerOnly):
			return helper.JsonError(c, fiber.StatusForbidden, "Only organizers can use this tool")
		case errors.Is(err, registrationService.ErrEventNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		case errors.Is(err, registrationService.ErrAlreadyRegistered):
			return helper.JsonError(c, fiber.StatusBadRequest, "Already registered for this event")
		case errors.Is(err, registrationService.ErrEventFull):
			return helper.JsonError(c, fiber.StatusBadRequest, "Event is full")
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"tool":   name,
		"result": result,
	})
}

// logInvocation best-effort: kegagalan audit tidak menggagalkan request.
func (ctrl *AssistantController) logInvocation(c *fiber.Ctx, tool string, call registry.ToolCall, callErr error, dur time.Duration) {
	entry := model.AssistantInvocationModel{
		InvocationTool:       tool,
		InvocationArgs:       datatypes.JSONMap(call.Args),
		InvocationSuccess:    callErr == nil,
		InvocationDurationMs: dur.Milliseconds(),
	}
	if call.UserID != uuid.Nil {
		id := call.UserID
		entry.InvocationUserID = &id
	}
	if callErr != nil {
		entry.InvocationError = callErr.Error()
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		log.Printf("[WARN] assistant invocation log: %v", err)
	}
}
