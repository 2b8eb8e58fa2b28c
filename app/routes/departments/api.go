package departments

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/models"
)

func GetDepartmentsAPI(c *fiber.Ctx) error {
	departments, err := database.GetDepartments(config.GetDB())
	if err != nil {
		log.Printf("Error fetching departments: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch departments"})
	}
	return c.JSON(departments)
}

func CreateDepartmentAPI(c *fiber.Ctx) error {
	var dept models.Department
	if err := c.BodyParser(&dept); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&dept); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateDepartment(config.GetDB(), &dept); err != nil {
		log.Printf("Error creating department: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create department"})
	}
	return c.Status(201).JSON(dept)
}
