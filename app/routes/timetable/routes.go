package timetable

import (
	"github.com/gofiber/fiber/v2"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Post("/generate", GenerateTimetableAPI)
	api.Get("/validate", ValidateTimetableAPI)
	api.Get("/conflicts", GetConflictsAPI)
	api.Get("/view", GetTimetableViewAPI)
	api.Get("/by-department/:code", GetTimetableByDepartmentAPI)
	api.Get("/by-lecturer/:id", GetTimetableByLecturerAPI)
	api.Post("/slots/rebuild", RebuildTimeSlotsAPI)
}
