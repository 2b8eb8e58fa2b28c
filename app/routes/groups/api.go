package groups

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/models"
)

func GetStudentGroupsAPI(c *fiber.Ctx) error {
	groups, err := database.GetStudentGroups(config.GetDB())
	if err != nil {
		log.Printf("Error fetching student groups: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student groups"})
	}
	return c.JSON(groups)
}

func CreateStudentGroupAPI(c *fiber.Ctx) error {
	var group models.StudentGroup
	if err := c.BodyParser(&group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateStudentGroup(config.GetDB(), &group); err != nil {
		log.Printf("Error creating student group: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student group"})
	}
	return c.Status(201).JSON(group)
}
