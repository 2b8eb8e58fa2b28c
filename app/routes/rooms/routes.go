package rooms

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoomRoutes(app *fiber.App) {
	api := app.Group("/api/rooms")
	api.Get("/", GetRoomsAPI)
	api.Post("/", CreateRoomAPI)
}
