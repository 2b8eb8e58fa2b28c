package main

import (
	"log"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/scheduler"
	"github.com/TitoKamau053/university-timetable/app/services"
)

// Seeds a fresh database: runs migrations, populates the demo university and
// builds the slot catalog. Safe to run more than once.
func main() {
	config.InitDB()
	defer config.GetDB().Close()

	db := config.GetDB()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := services.GenerateSampleData(db); err != nil {
		log.Fatal("Failed to generate sample data:", err)
	}

	schools, err := database.GetSchools(db)
	if err != nil {
		log.Fatal("Failed to fetch schools:", err)
	}
	slots := scheduler.BuildSlotCatalog(scheduler.ConventionsForSchools(schools))
	if err := database.ReplaceTimeSlots(db, slots); err != nil {
		log.Fatal("Failed to build slot catalog:", err)
	}

	log.Printf("Seed complete: %d time slots ready", len(slots))
}
