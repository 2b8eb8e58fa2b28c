package units

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/models"
)

func GetUnitsAPI(c *fiber.Ctx) error {
	units, err := database.GetUnits(config.GetDB())
	if err != nil {
		log.Printf("Error fetching units: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch units"})
	}
	return c.JSON(units)
}

func CreateUnitAPI(c *fiber.Ctx) error {
	var unit models.Unit
	if err := c.BodyParser(&unit); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&unit); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateUnit(config.GetDB(), &unit); err != nil {
		log.Printf("Error creating unit: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create unit"})
	}
	return c.Status(201).JSON(unit)
}
