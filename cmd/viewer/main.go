package main

import (
	"fmt"
	"log"
	"time"

	"koch-snowflake/internal/common/config"
	"koch-snowflake/internal/common/middleware"
	"koch-snowflake/internal/snowflake/handlers"
	"koch-snowflake/internal/snowflake/mapper"
	"koch-snowflake/internal/snowflake/service"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Snowflake Viewer Service
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Snowflake Viewer",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Routes
	// ============================================================

	sessions := service.NewSessionManager(cfg.MaxSessions, time.Duration(cfg.SessionTTL)*time.Second)
	snowflakeHandler := handlers.NewSnowflakeHandler(sessions, mapper.NewRenderer())
	snowflakeHandler.Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Snowflake Viewer on %s (env: %s, max sessions: %d, session ttl: %ds)", addr, cfg.Environment, cfg.MaxSessions, cfg.SessionTTL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
