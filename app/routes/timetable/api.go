package timetable

import (
	"database/sql"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/TitoKamau053/university-timetable/app/config"
	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/scheduler"
)

// Formatted views and statistics are cheap to cache and expensive to join.
// The cache is flushed whenever the entry set changes.
var viewCache = gocache.New(5*time.Minute, 10*time.Minute)

// generationInFlight serializes schedule generation: the engine's occupancy
// state is order-dependent, so only one run may exist at a time. A second
// request is rejected rather than queued.
var generationInFlight atomic.Bool

const cacheKeyView = "timetable:view"

// FlushCaches drops every cached view. Called after any mutation of the
// entry set or the slot catalog.
func FlushCaches() {
	viewCache.Flush()
}

func GenerateTimetableAPI(c *fiber.Ctx) error {
	if !generationInFlight.CompareAndSwap(false, true) {
		return c.Status(409).JSON(fiber.Map{"error": "A timetable generation is already in progress"})
	}
	defer generationInFlight.Store(false)

	db := config.GetDB()

	data, err := database.LoadDataset(db)
	if err != nil {
		log.Printf("Error loading dataset: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load reference data"})
	}

	// First run on a fresh database: derive the slot catalog before
	// scheduling against it.
	if len(data.Slots) == 0 {
		slots := scheduler.BuildSlotCatalog(data.Conventions)
		if err := database.ReplaceTimeSlots(db, slots); err != nil {
			log.Printf("Error saving time slots: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build slot catalog"})
		}
		data.Slots = slots
	}

	engine := scheduler.NewEngine(data)
	result, err := engine.Generate()
	if err != nil {
		var refErr *scheduler.ReferenceError
		if errors.As(err, &refErr) {
			return c.Status(422).JSON(fiber.Map{"error": refErr.Error()})
		}
		log.Printf("Error generating timetable: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate timetable"})
	}

	if err := database.ReplaceEntries(db, result.Entries); err != nil {
		log.Printf("Error saving timetable entries: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save timetable"})
	}
	FlushCaches()

	log.Printf("Timetable generated: %d entries, %d unscheduled", len(result.Entries), len(result.Unscheduled))
	return c.JSON(fiber.Map{
		"message":           "Timetable generated successfully",
		"entries_count":     len(result.Entries),
		"unscheduled_count": len(result.Unscheduled),
		"unscheduled":       result.Unscheduled,
	})
}

func ValidateTimetableAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	data, err := database.LoadDataset(db)
	if err != nil {
		log.Printf("Error loading dataset: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load reference data"})
	}
	entries, err := database.GetEntries(db)
	if err != nil {
		log.Printf("Error loading entries: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load timetable entries"})
	}

	opts := scheduler.ValidatorOptions{
		FlagCrossSchoolOverlap: c.QueryBool("cross_school_overlap"),
	}
	report, err := scheduler.ValidateWithOptions(entries, data, opts)
	if err != nil {
		var refErr *scheduler.ReferenceError
		if errors.As(err, &refErr) {
			return c.Status(422).JSON(fiber.Map{"error": refErr.Error()})
		}
		log.Printf("Error validating timetable: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to validate timetable"})
	}
	return c.JSON(report)
}

func GetConflictsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	data, err := database.LoadDataset(db)
	if err != nil {
		log.Printf("Error loading dataset: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load reference data"})
	}
	entries, err := database.GetEntries(db)
	if err != nil {
		log.Printf("Error loading entries: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load timetable entries"})
	}

	opts := scheduler.ValidatorOptions{
		FlagCrossSchoolOverlap: c.QueryBool("cross_school_overlap"),
	}
	grouped, err := scheduler.AnalyzeConflictsWithOptions(entries, data, opts)
	if err != nil {
		var refErr *scheduler.ReferenceError
		if errors.As(err, &refErr) {
			return c.Status(422).JSON(fiber.Map{"error": refErr.Error()})
		}
		log.Printf("Error analyzing conflicts: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to analyze conflicts"})
	}

	total := 0
	for _, conflicts := range grouped {
		total += len(conflicts)
	}
	return c.JSON(fiber.Map{
		"total_conflicts": total,
		"conflicts":       grouped,
	})
}

func GetTimetableViewAPI(c *fiber.Ctx) error {
	if cached, found := viewCache.Get(cacheKeyView); found {
		return c.JSON(cached)
	}

	views, err := database.GetTimetableViews(config.GetDB())
	if err != nil {
		log.Printf("Error fetching timetable view: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	viewCache.Set(cacheKeyView, views, gocache.DefaultExpiration)
	return c.JSON(views)
}

func GetTimetableByDepartmentAPI(c *fiber.Ctx) error {
	code := c.Params("code")
	db := config.GetDB()

	if _, err := database.GetDepartmentByCode(db, code); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
		}
		log.Printf("Error fetching department %s: %v", code, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch department"})
	}

	views, err := database.GetTimetableViewsByDepartment(db, code)
	if err != nil {
		log.Printf("Error fetching timetable for department %s: %v", code, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	return c.JSON(views)
}

func GetTimetableByLecturerAPI(c *fiber.Ctx) error {
	lecturerID := c.Params("id")
	db := config.GetDB()

	if _, err := database.GetLecturerByID(db, lecturerID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Lecturer not found"})
		}
		log.Printf("Error fetching lecturer %s: %v", lecturerID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lecturer"})
	}

	views, err := database.GetTimetableViewsByLecturer(db, lecturerID)
	if err != nil {
		log.Printf("Error fetching timetable for lecturer %s: %v", lecturerID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	return c.JSON(views)
}

// RebuildTimeSlotsAPI regenerates the slot catalog from the current schools'
// conventions. Existing entries reference the old catalog and are cleared
// with it.
func RebuildTimeSlotsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	schools, err := database.GetSchools(db)
	if err != nil {
		log.Printf("Error fetching schools: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schools"})
	}

	slots := scheduler.BuildSlotCatalog(scheduler.ConventionsForSchools(schools))
	if err := database.ReplaceTimeSlots(db, slots); err != nil {
		log.Printf("Error saving time slots: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to rebuild time slots"})
	}
	FlushCaches()

	return c.JSON(fiber.Map{
		"message":          "Time slots rebuilt successfully",
		"time_slots_count": len(slots),
	})
}
