package lecturers

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/models"
)

func GetLecturersAPI(c *fiber.Ctx) error {
	lecturers, err := database.GetLecturers(config.GetDB())
	if err != nil {
		log.Printf("Error fetching lecturers: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lecturers"})
	}
	return c.JSON(lecturers)
}

func GetLecturerAPI(c *fiber.Ctx) error {
	lecturerID := c.Params("id")
	lecturer, err := database.GetLecturerByID(config.GetDB(), lecturerID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Lecturer not found"})
	}
	if err != nil {
		log.Printf("Error fetching lecturer %s: %v", lecturerID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lecturer"})
	}
	return c.JSON(lecturer)
}

func CreateLecturerAPI(c *fiber.Ctx) error {
	var lecturer models.Lecturer
	if err := c.BodyParser(&lecturer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&lecturer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateLecturer(config.GetDB(), &lecturer); err != nil {
		log.Printf("Error creating lecturer: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create lecturer"})
	}
	return c.Status(201).JSON(lecturer)
}
