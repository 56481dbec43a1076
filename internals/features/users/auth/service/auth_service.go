// 📁 service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	userModel "eventku_backend/internals/features/users/user/model"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

/* ==========================
   Register & login (email)
========================== */

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// RegisterUser membuat user baru dengan password bcrypt.
// Role selain ORGANIZER di-default ke ATTENDEE.
func RegisterUser(ctx context.Context, db *gorm.DB, p RegisterParams) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))

	var count int64
	if err := db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := constants.RoleAttendee
	if strings.EqualFold(p.Role, constants.RoleOrganizer) {
		role = constants.RoleOrganizer
	}

	user := &userModel.UserModel{
		UserName:     strings.TrimSpace(p.Name),
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     role,
	}

	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		// backstop unique index kalau ada race register ganda
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// LoginUser memverifikasi email + password.
// Pesan error sengaja tidak membedakan email salah vs password salah.
func LoginUser(ctx context.Context, db *gorm.DB, email, password string) (*userModel.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

/* ==========================
   Google sign-in
========================== */

// LoginGoogle memverifikasi Google ID token lalu login-or-create user.
func LoginGoogle(ctx context.Context, db *gorm.DB, clientID, idToken string) (*userModel.UserModel, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, ErrInvalidCredentials
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var user userModel.UserModel
	err = db.WithContext(ctx).
		Where("user_google_id = ? OR user_email = ?", googleID, email).
		First(&user).Error
	if err == nil {
		// tautkan akun lama yang belum punya google id
		if user.UserGoogleID == nil {
			if err := db.WithContext(ctx).Model(&user).
				Update("user_google_id", googleID).Error; err != nil {
				return nil, err
			}
			user.UserGoogleID = &googleID
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// user baru via Google: tanpa password lokal yang bisa dipakai login
	hashed, err := bcrypt.GenerateFromPassword([]byte(googleID+email), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = userModel.UserModel{
		UserName:     strings.TrimSpace(claimSet.Name),
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     constants.RoleAttendee,
		UserGoogleID: &googleID,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

/* ==========================
   Password change
========================== */

func ChangePassword(ctx context.Context, db *gorm.DB, userID any, current, next string) error {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Model(&user).
		Update("user_password", string(hashed)).Error
}
