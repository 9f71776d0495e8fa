package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bloodbank-service/internal/api/dto"
	"github.com/spec-kit/bloodbank-service/internal/auth"
	"github.com/spec-kit/bloodbank-service/internal/events"
	"github.com/spec-kit/bloodbank-service/internal/service"
	apperrors "github.com/spec-kit/bloodbank-service/pkg/util"
)

// StaffHandler exposes staff CRUD endpoints.
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	list, err := h.staffService.List(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.NewStaffResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// Get handles GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return err
	}

	staff, err := h.staffService.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewStaffResponse(staff)})
}

// Create handles POST /staff. The content-type, body presence and body
// syntax checks report three distinct errors before any field
// validation runs.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	if !c.Is("json") {
		return apperrors.NewValidationError("Content-type must be application/json")
	}
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return apperrors.NewValidationError("Empty request body")
	}

	var req dto.StaffCreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.NewValidationError("Invalid JSON")
	}

	staff, err := h.staffService.Create(c.UserContext(), actorFromContext(c), service.StaffCreateInput{
		BloodBankID: req.BloodBankID,
		AddressID:   req.AddressID,
		Category:    req.Category,
		Gender:      req.Gender,
		JobTitle:    req.JobTitle,
		Name:        req.Name,
		Birthdate:   req.Birthdate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "data": dto.NewStaffResponse(staff)})
}

// Update handles PUT /staff/:id. An empty body, an empty object and an
// unparseable body are all reported as Invalid JSON.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return err
	}

	var req dto.StaffUpdateRequest
	if err := json.Unmarshal(bytes.TrimSpace(c.Body()), &req); err != nil {
		return apperrors.NewValidationError("Invalid JSON")
	}

	staff, err := h.staffService.Update(c.UserContext(), actorFromContext(c), id, service.StaffUpdateInput{
		BloodBankID: req.BloodBankID,
		AddressID:   req.AddressID,
		Category:    req.Category,
		Gender:      req.Gender,
		JobTitle:    req.JobTitle,
		Name:        req.Name,
		Birthdate:   req.Birthdate,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewStaffResponse(staff)})
}

// Delete handles DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return err
	}

	if err := h.staffService.Delete(c.UserContext(), actorFromContext(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Staff successfully deleted"})
}

// parseStaffID reads the :id path param. A non-numeric id cannot match
// any record and reports not found, like an integer route converter.
func parseStaffID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewNotFound("Staff")
	}
	return id, nil
}

func actorFromContext(c *fiber.Ctx) events.Actor {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return events.Actor{}
	}
	return events.Actor{Identity: claims.Identity, Role: claims.Role}
}
