// 📁 controller/team_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventku_backend/internals/features/events/event/model"
	helper "eventku_backend/internals/helpers"
)

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

// 🟢 GET /api/events/:id/teams — publik, beserta member + profil singkat
func (ctrl *TeamController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var teams []model.TeamModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Members.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "user_name", "user_avatar_url", "user_skills")
		}).
		Where("team_event_id = ?", eventID).
		Order("created_at asc").
		Find(&teams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teams")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"teams": teams,
		"count": len(teams),
	})
}
