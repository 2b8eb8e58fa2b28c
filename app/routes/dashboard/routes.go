package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/api/statistics", GetStatisticsAPI)
	app.Post("/api/initialize/sample-data", InitializeSampleDataAPI)
}
