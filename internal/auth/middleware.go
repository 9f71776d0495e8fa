package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "github.com/spec-kit/bloodbank-service/pkg/util"
)

const claimsKey = "auth_claims"

// AuthMiddleware validates bearer tokens on protected routes. Token
// validity is purely a function of signature and expiry; no store
// lookups happen here.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Authentication
// failures short-circuit before any role check runs.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewMissingToken("Missing Authorization Header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewTokenDecode("Bad Authorization header. Expected 'Authorization: Bearer <JWT>'")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return classifyTokenError(err)
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// classifyTokenError maps jwt parse failures to the wire-level
// authentication errors.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.NewTokenExpired()
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return apperrors.NewTokenDecode("Signature verification failed")
	default:
		return apperrors.NewTokenDecode("Not enough segments")
	}
}

// ClaimsFromContext retrieves the validated claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
