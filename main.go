package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/routes/dashboard"
	"github.com/TitoKamau053/university-timetable/app/routes/departments"
	"github.com/TitoKamau053/university-timetable/app/routes/groups"
	"github.com/TitoKamau053/university-timetable/app/routes/lecturers"
	"github.com/TitoKamau053/university-timetable/app/routes/rooms"
	"github.com/TitoKamau053/university-timetable/app/routes/schools"
	"github.com/TitoKamau053/university-timetable/app/routes/timetable"
	"github.com/TitoKamau053/university-timetable/app/routes/units"
)

// apiErrorHandler keeps every error response in the same JSON shape.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "University Timetable System",
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": "University Timetable System"})
	})

	// Routes
	schools.SetupSchoolRoutes(app)
	departments.SetupDepartmentRoutes(app)
	lecturers.SetupLecturerRoutes(app)
	units.SetupUnitRoutes(app)
	rooms.SetupRoomRoutes(app)
	groups.SetupStudentGroupRoutes(app)
	timetable.SetupTimetableRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	port := config.AppConfig.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
