// 📁 service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	userModel "eventku_backend/internals/features/users/user/model"
)

// Umur sesi: cookie & token sama-sama 7 hari
const SessionTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// CreateSessionToken membuat JWT HS256 berisi identitas user.
// Claim "id" dipakai middleware auth sebagai user_id.
func CreateSessionToken(secret string, user *userModel.UserModel) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.New("missing jwt secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"sub":       user.UserID.String(),
		"user_name": user.UserName,
		"email":     user.UserEmail,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken memvalidasi signature + expiry dan mengembalikan claims.
func VerifySessionToken(secret, raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
