package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bloodbank-service/internal/domain"
	apperrors "github.com/spec-kit/bloodbank-service/pkg/util"
)

// RequireRole ensures the validated claims carry one of the allowed
// roles. Must run after AuthMiddleware.Handle.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewMissingToken("Missing Authorization Header")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[claims.Role]; !exists {
			return apperrors.NewForbidden()
		}
		return c.Next()
	}
}
