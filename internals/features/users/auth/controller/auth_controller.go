// 📁 controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/configs"
	"eventku_backend/internals/features/users/auth/dto"
	authService "eventku_backend/internals/features/users/auth/service"
	userModel "eventku_backend/internals/features/users/user/model"
	helper "eventku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authService.RegisterUser(c.UserContext(), ctrl.DB, authService.RegisterParams{
		Name:     body.UserName,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		if errors.Is(err, authService.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	if err := ctrl.issueSession(c, user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.JsonCreated(c, "Account created successfully", fiber.Map{"user": user})
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authService.LoginUser(c.UserContext(), ctrl.DB, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}

	if err := ctrl.issueSession(c, user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{"user": user})
}

// 🟢 POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authService.LoginGoogle(c.UserContext(), ctrl.DB, configs.GoogleClientID, body.IDToken)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
		}
		log.Printf("[ERROR] google login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login with Google")
	}

	if err := ctrl.issueSession(c, user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{"user": user})
}

// 🟢 POST /api/auth/logout — hapus cookie sesi
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     helper.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonOK(c, "Logged out", nil)
}

// 🟢 GET /api/auth/me — profil user dari sesi aktif
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "", fiber.Map{"user": user})
}

// 🟢 POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := authService.ChangePassword(c.UserContext(), ctrl.DB, userID, body.CurrentPassword, body.NewPassword); err != nil {
		switch {
		case errors.Is(err, authService.ErrWrongPassword):
			return helper.JsonError(c, fiber.StatusBadRequest, "Current password is incorrect")
		case errors.Is(err, authService.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
		}
	}

	return helper.JsonOK(c, "Password changed successfully", nil)
}

// issueSession menandatangani JWT & memasang cookie HTTP-only 7 hari.
func (ctrl *AuthController) issueSession(c *fiber.Ctx, user *userModel.UserModel) error {
	token, err := authService.CreateSessionToken(configs.JWTSecret, user)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     helper.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(authService.SessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}
