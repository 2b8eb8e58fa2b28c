package lecturers

import (
	"github.com/gofiber/fiber/v2"
)

func SetupLecturerRoutes(app *fiber.App) {
	api := app.Group("/api/lecturers")
	api.Get("/", GetLecturersAPI)
	api.Get("/:id", GetLecturerAPI)
	api.Post("/", CreateLecturerAPI)
}
