package schools

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/models"
)

func GetSchoolsAPI(c *fiber.Ctx) error {
	schools, err := database.GetSchools(config.GetDB())
	if err != nil {
		log.Printf("Error fetching schools: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schools"})
	}
	return c.JSON(schools)
}

func CreateSchoolAPI(c *fiber.Ctx) error {
	var school models.School
	if err := c.BodyParser(&school); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&school); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateSchool(config.GetDB(), &school); err != nil {
		log.Printf("Error creating school: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create school"})
	}
	return c.Status(201).JSON(school)
}
