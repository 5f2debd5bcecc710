package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

// Liveness проверяет, что приложение работает
func Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// Readiness сообщает готовность и число открытых сессий.
func (h *SnowflakeHandler) Readiness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ready",
		"sessions": h.sessions.Len(),
	})
}

// Startup проверяет, что приложение успешно запустилось
func Startup(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}
