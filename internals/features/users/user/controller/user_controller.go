// 📁 controller/user_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"eventku_backend/internals/configs"
	"eventku_backend/internals/constants"
	eventModel "eventku_backend/internals/features/events/event/model"
	registrationModel "eventku_backend/internals/features/registrations/model"
	authService "eventku_backend/internals/features/users/auth/service"
	"eventku_backend/internals/features/users/user/dto"
	"eventku_backend/internals/features/users/user/model"
	helper "eventku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/user/profile — profil lengkap caller + ringkasan aktivitas
func (ctrl *UserController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	registrationCount, organizedCount := ctrl.activityCounts(c, userID)
	return helper.JsonOK(c, "", fiber.Map{
		"user":               user,
		"registration_count": registrationCount,
		"organized_count":    organizedCount,
	})
}

// 🟢 GET /api/users/:id — profil publik (tanpa email)
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Select("user_id", "user_name", "user_role", "user_avatar_url", "user_bio",
			"user_skills", "user_interests", "created_at").
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	registrationCount, organizedCount := ctrl.activityCounts(c, userID)
	return helper.JsonOK(c, "", fiber.Map{
		"user":               user,
		"registration_count": registrationCount,
		"organized_count":    organizedCount,
	})
}

// 🟢 PUT /api/user/profile — partial update; cookie sesi di-refresh supaya
// claim user_name selalu mengikuti nama terbaru.
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	updates := map[string]interface{}{}
	if body.UserName != nil {
		updates["user_name"] = *body.UserName
	}
	if body.UserAvatarURL != nil {
		updates["user_avatar_url"] = *body.UserAvatarURL
	}
	if body.UserBio != nil {
		updates["user_bio"] = *body.UserBio
	}
	if body.UserSkills != nil {
		updates["user_skills"] = pq.StringArray(body.UserSkills)
	}
	if body.UserInterests != nil {
		updates["user_interests"] = pq.StringArray(body.UserInterests)
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	if token, err := authService.CreateSessionToken(configs.JWTSecret, &user); err == nil {
		c.Cookie(&fiber.Cookie{
			Name:     helper.SessionCookieName,
			Value:    token,
			Expires:  time.Now().Add(authService.SessionTTL),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
	}

	return helper.JsonUpdated(c, "Profile updated successfully", fiber.Map{"user": user})
}

// 🟢 GET /api/user/registrations — registrasi caller + event & info tim
func (ctrl *UserController) GetMyRegistrations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	var registrations []registrationModel.RegistrationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Event", func(db *gorm.DB) *gorm.DB {
			return db.Select("event_id", "event_title", "event_type", "event_status",
				"event_start_date", "event_end_date", "event_location",
				"event_price", "event_currency", "event_image_url")
		}).
		Where("registration_user_id = ?", userID).
		Order("created_at desc").
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	teams := ctrl.teamsOf(c, userID)
	return helper.JsonOK(c, "", fiber.Map{
		"registrations": registrations,
		"teams":         teams,
		"count":         len(registrations),
	})
}

func (ctrl *UserController) activityCounts(c *fiber.Ctx, userID uuid.UUID) (int64, int64) {
	var registrationCount, organizedCount int64
	ctrl.DB.WithContext(c.UserContext()).
		Model(&registrationModel.RegistrationModel{}).
		Where("registration_user_id = ? AND registration_status <> ?", userID, constants.RegistrationStatusCancelled).
		Count(&registrationCount)
	ctrl.DB.WithContext(c.UserContext()).
		Model(&eventModel.EventModel{}).
		Where("event_organizer_id = ?", userID).
		Count(&organizedCount)
	return registrationCount, organizedCount
}

// teamsOf: tim yang diikuti user (best-effort; kosong kalau belum punya tim)
func (ctrl *UserController) teamsOf(c *fiber.Ctx, userID uuid.UUID) []eventModel.TeamModel {
	teams := []eventModel.TeamModel{}

	var memberships []eventModel.TeamMemberModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("team_member_user_id = ?", userID).
		Find(&memberships).Error; err != nil || len(memberships) == 0 {
		return teams
	}

	teamIDs := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamMemberTeamID)
	}
	ctrl.DB.WithContext(c.UserContext()).
		Where("team_id IN ?", teamIDs).
		Find(&teams)
	return teams
}
