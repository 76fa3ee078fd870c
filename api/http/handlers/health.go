package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nexushq/talent-registry/api/http/presenter"
	"github.com/nexushq/talent-registry/pkg/health"
)

type HealthHandler struct {
	readiness health.ReadinessUseCase
}

func NewHealthHandler(readiness health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

// Health reports process liveness.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}

// Ready reports readiness of downstream dependencies.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.readiness.Ready(c.Context()); err != nil {
		return presenter.Error(c, http.StatusServiceUnavailable, "not ready")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ready"})
}
