package rooms

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/models"
)

func GetRoomsAPI(c *fiber.Ctx) error {
	rooms, err := database.GetRooms(config.GetDB())
	if err != nil {
		log.Printf("Error fetching rooms: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch rooms"})
	}
	return c.JSON(rooms)
}

func CreateRoomAPI(c *fiber.Ctx) error {
	var room models.Room
	if err := c.BodyParser(&room); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&room); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateRoom(config.GetDB(), &room); err != nil {
		log.Printf("Error creating room: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create room"})
	}
	return c.Status(201).JSON(room)
}
