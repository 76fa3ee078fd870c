package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nexushq/talent-registry/api/http/presenter"
	"github.com/nexushq/talent-registry/pkg/auth"
	"github.com/nexushq/talent-registry/pkg/registry"
)

type RegistryHandler struct {
	uc registry.UseCase
}

func NewRegistryHandler(uc registry.UseCase) *RegistryHandler { return &RegistryHandler{uc: uc} }

// List returns candidates, filterable by status and a name/skill search term.
// @Summary List candidates
// @Tags    registry
// @Produce json
// @Param   search query string false "name/skill substring"
// @Param   status query string false "Pending | Approved | Rejected"
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} auth.User
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /admin/candidates [get]
func (h *RegistryHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	users, err := h.uc.List(c.Context(), registry.Filter{
		Search: c.Query("search"),
		Status: auth.Status(c.Query("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list candidates")
	}
	return presenter.JSON(c, http.StatusOK, users)
}

// Stats returns the dashboard counters and the per-domain distribution.
// @Summary Registry statistics
// @Tags    registry
// @Produce json
// @Security BearerAuth
// @Success 200 {object} registry.Stats
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /admin/stats [get]
func (h *RegistryHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to compute stats")
	}
	return presenter.JSON(c, http.StatusOK, stats)
}

func (h *RegistryHandler) mutate(c *fiber.Ctx, op func(uuid.UUID) error) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := op(id); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "candidate not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "registry operation failed")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true})
}

// Approve sets a candidate's status to Approved.
// @Summary Approve candidate
// @Tags    registry
// @Produce json
// @Param   id path string true "candidate id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/candidates/{id}/approve [post]
func (h *RegistryHandler) Approve(c *fiber.Ctx) error {
	return h.mutate(c, func(id uuid.UUID) error { return h.uc.Approve(c.Context(), id) })
}

// Reject sets a candidate's status to Rejected.
// @Summary Reject candidate
// @Tags    registry
// @Produce json
// @Param   id path string true "candidate id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/candidates/{id}/reject [post]
func (h *RegistryHandler) Reject(c *fiber.Ctx) error {
	return h.mutate(c, func(id uuid.UUID) error { return h.uc.Reject(c.Context(), id) })
}

// ResetToPending returns a candidate to the Pending status.
// @Summary Reset candidate to pending
// @Tags    registry
// @Produce json
// @Param   id path string true "candidate id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/candidates/{id}/pending [post]
func (h *RegistryHandler) ResetToPending(c *fiber.Ctx) error {
	return h.mutate(c, func(id uuid.UUID) error { return h.uc.ResetToPending(c.Context(), id) })
}

// ToggleVerification flips a candidate's verified flag.
// @Summary Toggle candidate verification
// @Tags    registry
// @Produce json
// @Param   id path string true "candidate id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/candidates/{id}/toggle-verification [post]
func (h *RegistryHandler) ToggleVerification(c *fiber.Ctx) error {
	return h.mutate(c, func(id uuid.UUID) error { return h.uc.ToggleVerification(c.Context(), id) })
}

// Remove deletes a candidate record.
// @Summary Delete candidate
// @Tags    registry
// @Produce json
// @Param   id path string true "candidate id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/candidates/{id} [delete]
func (h *RegistryHandler) Remove(c *fiber.Ctx) error {
	return h.mutate(c, func(id uuid.UUID) error { return h.uc.Remove(c.Context(), id) })
}
