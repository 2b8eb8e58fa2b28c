package units

import (
	"github.com/gofiber/fiber/v2"
)

func SetupUnitRoutes(app *fiber.App) {
	api := app.Group("/api/units")
	api.Get("/", GetUnitsAPI)
	api.Post("/", CreateUnitAPI)
}
