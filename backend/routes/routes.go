package routes

import (
	"companion/backend/config"
	"companion/backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// User routes
	usersController := controllers.NewUsersController(db, cfg)
	app.Get("/api/users", usersController.ListUsers)
	app.Post("/api/users", usersController.CreateUser)
	app.Get("/api/users/:userId/active-course", usersController.GetActiveCourse)
	app.Put("/api/users/:userId/active-course", usersController.SetActiveCourse)

	// Courses routes
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/api/courses", coursesController.ListCourses)
	app.Post("/api/courses", coursesController.CreateCourse)
	app.Get("/api/courses/:courseId", coursesController.GetCourse)

	// Completion log routes
	completionsController := controllers.NewCompletionsController(db, cfg)
	app.Post("/api/page-completion", completionsController.RecordCompletion)
	app.Get("/api/users/:userId/courses/:courseId/completions", completionsController.ListCompletions)
	app.Get("/api/users/:userId/journal", completionsController.GetJournal)
	app.Get("/api/users/:userId/quiz-history", completionsController.GetQuizHistory)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/users/:userId/courses/:courseId/progress", progressController.GetCourseProgress)
}
