package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bloodbank-service/internal/api/dto"
	"github.com/spec-kit/bloodbank-service/internal/service"
	apperrors "github.com/spec-kit/bloodbank-service/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /login. Missing or unreadable credentials fall
// through to the same invalid-credentials outcome as a wrong pair.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperrors.NewInvalidCredentials()
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token})
}
