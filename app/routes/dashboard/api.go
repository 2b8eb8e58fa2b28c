package dashboard

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/routes/timetable"
	"github.com/TitoKamau053/university-timetable/app/scheduler"
	"github.com/TitoKamau053/university-timetable/app/services"
)

var statsCache = gocache.New(1*time.Minute, 5*time.Minute)

const cacheKeyStats = "statistics"

func GetStatisticsAPI(c *fiber.Ctx) error {
	if cached, found := statsCache.Get(cacheKeyStats); found {
		return c.JSON(cached)
	}

	stats, err := database.Statistics(config.GetDB())
	if err != nil {
		log.Printf("Error fetching statistics: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch statistics"})
	}
	statsCache.Set(cacheKeyStats, stats, gocache.DefaultExpiration)
	return c.JSON(stats)
}

// InitializeSampleDataAPI seeds the demo university and derives the slot
// catalog so a fresh database can generate a timetable immediately.
func InitializeSampleDataAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	if err := services.GenerateSampleData(db); err != nil {
		log.Printf("Error generating sample data: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to initialize sample data"})
	}

	schools, err := database.GetSchools(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schools"})
	}
	slots := scheduler.BuildSlotCatalog(scheduler.ConventionsForSchools(schools))
	if err := database.ReplaceTimeSlots(db, slots); err != nil {
		log.Printf("Error saving time slots: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build slot catalog"})
	}

	timetable.FlushCaches()
	statsCache.Flush()

	return c.JSON(fiber.Map{"message": "Sample data initialized successfully"})
}
