package handlers

import (
	"errors"
	"log"
	"net/http"

	"koch-snowflake/internal/snowflake/controller"
	"koch-snowflake/internal/snowflake/mapper"
	"koch-snowflake/internal/snowflake/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Snowflake Handler
// ============================================================

type SnowflakeHandler struct {
	sessions *service.SessionManager
	renderer *mapper.Renderer
}

func NewSnowflakeHandler(sessions *service.SessionManager, renderer *mapper.Renderer) *SnowflakeHandler {
	return &SnowflakeHandler{
		sessions: sessions,
		renderer: renderer,
	}
}

// Register вешает маршруты сессий на роутер.
func (h *SnowflakeHandler) Register(r fiber.Router) {
	r.Get("/health/live", Liveness)
	r.Get("/health/ready", h.Readiness)
	r.Get("/health/startup", Startup)

	r.Post("/sessions", h.CreateSession)
	r.Get("/sessions/:id", h.GetSession)
	r.Delete("/sessions/:id", h.DeleteSession)
	r.Post("/sessions/:id/keys/:key", h.PressKey)
	r.Get("/sessions/:id/frame", h.GetFrame)
	r.Get("/sessions/:id/svg", h.GetSVG)
}

// CreateSession открывает новую сессию просмотра.
func (h *SnowflakeHandler) CreateSession(c fiber.Ctx) error {
	s, err := h.sessions.Issue()
	if err != nil {
		log.Printf("[VIEWER] Issue session: %v", err)
		if errors.Is(err, service.ErrTooManySessions) {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create session"})
	}

	log.Printf("[VIEWER] Session %s created", s.ID)
	return c.Status(http.StatusCreated).JSON(s.Status())
}

// GetSession возвращает состояние сессии.
func (h *SnowflakeHandler) GetSession(c fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return notFound(c)
	}
	return c.JSON(s.Status())
}

// DeleteSession закрывает сессию.
func (h *SnowflakeHandler) DeleteSession(c fiber.Ctx) error {
	if err := h.sessions.Drop(c.Params("id")); err != nil {
		return notFound(c)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PressKey передаёт нажатие клавиши контроллеру.
func (h *SnowflakeHandler) PressKey(c fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return notFound(c)
	}

	key := c.Params("key")
	cmd, ok := controller.ParseCommand(key)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "unknown key: " + key})
	}

	return c.JSON(s.Press(cmd))
}

// GetFrame отдаёт текущий кадр в JSON.
func (h *SnowflakeHandler) GetFrame(c fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return notFound(c)
	}
	return c.JSON(s.Frame())
}

// GetSVG отдаёт текущий кадр в SVG.
func (h *SnowflakeHandler) GetSVG(c fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return notFound(c)
	}

	svg, err := h.renderer.Render(s.Frame())
	if err != nil {
		log.Printf("[VIEWER] Render error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

func (h *SnowflakeHandler) session(c fiber.Ctx) (*service.Session, bool) {
	s, err := h.sessions.Resolve(c.Params("id"))
	if err != nil {
		return nil, false
	}
	return s, true
}

func notFound(c fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": service.ErrSessionNotFound.Error()})
}
