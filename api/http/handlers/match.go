package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nexushq/talent-registry/api/http/presenter"
	"github.com/nexushq/talent-registry/pkg/auth"
	"github.com/nexushq/talent-registry/pkg/match"
	"github.com/nexushq/talent-registry/pkg/registry"
)

type MatchHandler struct {
	uc         match.UseCase
	candidates registry.UseCase
}

func NewMatchHandler(uc match.UseCase, candidates registry.UseCase) *MatchHandler {
	return &MatchHandler{uc: uc, candidates: candidates}
}

type correlateRequest struct {
	Requirement string `json:"requirement"`
}

// Correlate ranks all candidates against a free-text requirement. A
// collaborator failure degrades to an empty ranking.
// @Summary Correlate candidates with a requirement
// @Tags    match
// @Accept  json
// @Produce json
// @Param   input body correlateRequest true "free-text requirement"
// @Security BearerAuth
// @Success 200 {array} match.Match
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /admin/match [post]
func (h *MatchHandler) Correlate(c *fiber.Ctx) error {
	var req correlateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Requirement) == "" {
		return presenter.Error(c, http.StatusBadRequest, "requirement is required")
	}
	users, err := h.candidates.List(c.Context(), registry.Filter{})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load candidates")
	}
	return presenter.JSON(c, http.StatusOK, h.uc.Correlate(c.Context(), req.Requirement, users))
}

// Insight produces a short AI summary for one candidate. Collaborator failure
// yields a fixed fallback string.
// @Summary Candidate AI insight
// @Tags    match
// @Produce json
// @Param   id path string true "candidate id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/candidates/{id}/insight [post]
func (h *MatchHandler) Insight(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	users, err := h.candidates.List(c.Context(), registry.Filter{})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load candidates")
	}
	var candidate *auth.User
	for i := range users {
		if users[i].ID == id {
			candidate = &users[i]
			break
		}
	}
	if candidate == nil {
		return presenter.Error(c, http.StatusNotFound, "candidate not found")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"insight": h.uc.Insight(c.Context(), *candidate)})
}
