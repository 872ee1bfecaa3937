package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthive/talenthive-backend/internal/util"
)

// UserIDKey is the locals key holding the authenticated user's id.
const UserIDKey = "userId"

// RequireUser reads the X-User-ID header set by the upstream auth gateway and
// stores it in locals. Token verification happens before traffic reaches this
// service; here it only has to be present and numeric.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("X-User-ID")
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "missing or invalid user identity",
			}, err)
		}
		c.Locals(UserIDKey, uint(id))
		return c.Next()
	}
}
