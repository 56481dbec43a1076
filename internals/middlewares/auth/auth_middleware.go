// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"eventku_backend/internals/configs"
	helper "eventku_backend/internals/helpers"
)

// AuthJWT mewajibkan sesi valid: cookie "access_token" atau Bearer header.
// Locals yang diisi: user_id, user_name, user_role, user_email, jwt_claims.
func AuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseSessionToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		hydrateLocals(c, claims)
		return c.Next()
	}
}

// OptionalAuthJWT: seperti AuthJWT tapi tidak menolak request anonim.
// Dipakai endpoint publik yang mempersonalisasi respons jika ada sesi.
func OptionalAuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := helper.GetRawAccessToken(c); raw != "" {
			if claims, err := parseSessionToken(c); err == nil {
				hydrateLocals(c, claims)
			}
		}
		return c.Next()
	}
}

func parseSessionToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - please login first")
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return claims, nil
}

func hydrateLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	c.Locals("jwt_claims", claims)

	// user_id: id/sub dalam urutan preferensi, fail-fast kalau bukan UUID
	id := strClaim(claims, "id")
	if id == "" {
		id = strClaim(claims, "sub")
	}
	if id != "" {
		if _, err := uuid.Parse(id); err == nil {
			c.Locals("user_id", id)
		}
	}

	if v := strClaim(claims, "user_name"); v != "" {
		c.Locals("user_name", v)
	}
	if v := strClaim(claims, "email"); v != "" {
		c.Locals("user_email", v)
	}
	if v := strClaim(claims, "role"); v != "" {
		c.Locals("user_role", v)
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
