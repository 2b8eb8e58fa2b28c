package groups

import (
	"github.com/gofiber/fiber/v2"
)

func SetupStudentGroupRoutes(app *fiber.App) {
	api := app.Group("/api/student-groups")
	api.Get("/", GetStudentGroupsAPI)
	api.Post("/", CreateStudentGroupAPI)
}
