// file: internals/helpers/auth/token.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads the user id that the auth middleware stored in
// Locals. Returns 401 when missing or malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals("role")
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role")
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

// RequireRole guards a handler body: the caller must hold one of the given
// roles. Admin passes everywhere a doctor does, not the other way around.
func RequireRole(c *fiber.Ctx, roles ...string) error {
	role, err := GetRoleFromToken(c)
	if err != nil {
		return err
	}
	for _, r := range roles {
		if role == r {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "Forbidden - insufficient role")
}
