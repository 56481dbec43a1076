// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Nama cookie sesi (JWT HS256, 7 hari)
const SessionCookieName = "access_token"

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(SessionCookieName)); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
