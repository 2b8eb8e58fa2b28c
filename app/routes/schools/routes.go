package schools

import (
	"github.com/gofiber/fiber/v2"
)

func SetupSchoolRoutes(app *fiber.App) {
	api := app.Group("/api/schools")
	api.Get("/", GetSchoolsAPI)
	api.Post("/", CreateSchoolAPI)
}
