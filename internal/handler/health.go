package handler

import (
	"github.com/gofiber/fiber/v2"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}
