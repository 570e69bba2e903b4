package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edupulse/internal/domain"
	apperrors "github.com/spec-kit/edupulse/pkg/util"
)

// RequireRole ensures the resolved user holds one of the allowed roles.
// Callers with no resolved user get an unauthorized error; authenticated
// callers outside the set get a forbidden error, so "who are you" and
// "you can't do that" stay distinguishable.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewUnauthorized("not authenticated")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[user.Role]; !exists {
			return apperrors.NewForbidden("operation not permitted for this user role")
		}
		return c.Next()
	}
}

// RequireAuthenticated admits any resolved user regardless of role.
func RequireAuthenticated() fiber.Handler {
	return RequireRole()
}
