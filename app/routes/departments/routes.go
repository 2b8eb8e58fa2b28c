package departments

import (
	"github.com/gofiber/fiber/v2"
)

func SetupDepartmentRoutes(app *fiber.App) {
	api := app.Group("/api/departments")
	api.Get("/", GetDepartmentsAPI)
	api.Post("/", CreateDepartmentAPI)
}
