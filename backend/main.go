package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"companion/backend/config"
	"companion/backend/middleware"
	"companion/backend/routes"
	"companion/backend/seed"
	"companion/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.Run(db, logger, filepath.Join("seed", "sample-course.json")); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
		return
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			if code >= fiber.StatusInternalServerError {
				// Detail stays server-side only.
				logger.Printf("internal error: %v", err)
				return utils.Internal(c, "Internal server error")
			}
			return utils.Error(c, code, err.Error())
		},
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Static frontend
	app.Static("/", cfg.PublicDir)

	// Start server
	addr := cfg.Host + ":" + cfg.Port
	logger.Printf("listening on http://%s", addr)
	log.Fatal(app.Listen(addr))
}
