package scheduler

import (
	"errors"
	"testing"

	"github.com/TitoKamau053/university-timetable/app/models"
)

// validatorDataset gives two lecturers and two rooms so entries can be
// arranged into specific conflicts by hand.
func validatorDataset() *Dataset {
	data := singleSlotDataset()
	data.Lecturers = append(data.Lecturers, models.Lecturer{
		ID: "lect-2", Name: "Otieno Ochieng", EmployeeID: "FT002",
		EmploymentType: models.FullTime, MaxUnits: 4,
	})
	data.Lecturers[0].MaxUnits = 4
	data.Rooms = append(data.Rooms, models.Room{
		ID: "room-2", Name: "Room 02", Capacity: 60, RoomType: models.RoomNormal,
	})
	data.Units = append(data.Units, models.Unit{
		ID: "unit-2", Name: "Calculus 2", Code: "MAC001", DepartmentID: "dept-1",
		YearLevel: 2, Semester: 1, LecturerID: "lect-2",
	})
	data.Groups = append(data.Groups, models.StudentGroup{
		ID: "group-2", DepartmentID: "dept-1", YearLevel: 2, GroupSize: 30,
	})
	return data
}

func entry(id, unit, lecturer, room, slot, group string, week models.WeekType) models.TimetableEntry {
	return models.TimetableEntry{
		ID: id, UnitID: unit, LecturerID: lecturer, RoomID: room,
		TimeSlotID: slot, StudentGroupID: group, WeekType: week,
	}
}

func TestValidateCleanSchedule(t *testing.T) {
	data := validatorDataset()
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekAll),
	}
	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !report.IsValid {
		t.Fatalf("expected valid schedule, got conflicts: %v", report.Conflicts)
	}
	if len(report.Conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %d", len(report.Conflicts))
	}
}

func TestValidateRoomConflict(t *testing.T) {
	data := validatorDataset()
	// Same room and slot, different lecturers and groups.
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekAll),
		entry("e2", "unit-2", "lect-2", "room-lab", "spas_3h-1-0700", "group-2", models.WeekAll),
	}
	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if report.IsValid {
		t.Fatal("expected invalid schedule")
	}

	var roomConflicts []Conflict
	for _, c := range report.Conflicts {
		if c.Kind == ConflictRoom {
			roomConflicts = append(roomConflicts, c)
		}
	}
	if len(roomConflicts) != 1 {
		t.Fatalf("expected exactly one room conflict, got %d (all: %v)", len(roomConflicts), report.Conflicts)
	}
	if len(roomConflicts[0].EntryIDs) != 2 {
		t.Fatalf("room conflict should name both entries, got %v", roomConflicts[0].EntryIDs)
	}
}

func TestValidateOddEvenWeeksShareSlot(t *testing.T) {
	data := validatorDataset()
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekOdd),
		entry("e2", "unit-2", "lect-2", "room-lab", "spas_3h-1-0700", "group-2", models.WeekEven),
	}
	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !report.IsValid {
		t.Fatalf("odd/even split should share a slot legally, got conflicts: %v", report.Conflicts)
	}
}

func TestValidateAllWeeksConflictsWithOdd(t *testing.T) {
	data := validatorDataset()
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekAll),
		entry("e2", "unit-2", "lect-2", "room-lab", "spas_3h-1-0700", "group-2", models.WeekOdd),
	}
	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if report.IsValid {
		t.Fatal("all-weeks entry must conflict with an odd-weeks entry in the same room and slot")
	}
}

func TestValidateCapacityExceeded(t *testing.T) {
	data := validatorDataset()
	data.Groups[0].GroupSize = 80 // lab holds 40
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekAll),
	}
	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if report.IsValid {
		t.Fatal("expected capacity conflict")
	}
	if report.Conflicts[0].Kind != ConflictCapacityExceeded {
		t.Fatalf("expected %s, got %s", ConflictCapacityExceeded, report.Conflicts[0].Kind)
	}
}

func TestValidateLabRoomRequired(t *testing.T) {
	data := validatorDataset()
	// unit-1 requires a lab but sits in a normal room.
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-2", "spas_3h-1-0700", "group-1", models.WeekAll),
	}
	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if report.IsValid {
		t.Fatal("expected lab room conflict")
	}
	found := false
	for _, c := range report.Conflicts {
		if c.Kind == ConflictLabRoomRequired {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a %s conflict, got %v", ConflictLabRoomRequired, report.Conflicts)
	}
}

func TestValidateConventionMismatch(t *testing.T) {
	data := validatorDataset()
	data.Slots = append(data.Slots, models.TimeSlot{
		ID: "shs_2h-1-0700", DayOfWeek: 1, StartTime: "07:00", EndTime: "09:00", SessionType: "shs_2h",
	})
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "shs_2h-1-0700", "group-1", models.WeekAll),
	}
	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if report.IsValid {
		t.Fatal("expected convention mismatch")
	}
	found := false
	for _, c := range report.Conflicts {
		if c.Kind == ConflictConvention {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a %s conflict, got %v", ConflictConvention, report.Conflicts)
	}
}

func TestValidateLecturerOverload(t *testing.T) {
	data := validatorDataset()
	data.Lecturers[0].MaxUnits = 1
	data.Slots = append(data.Slots, models.TimeSlot{
		ID: "spas_3h-2-0700", DayOfWeek: 2, StartTime: "07:00", EndTime: "10:00", SessionType: "spas_3h",
	})
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekAll),
		entry("e2", "unit-1", "lect-1", "room-lab", "spas_3h-2-0700", "group-1", models.WeekAll),
	}
	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	found := false
	for _, c := range report.Conflicts {
		if c.Kind == ConflictLecturerOverload {
			found = true
			if len(c.EntryIDs) != 2 {
				t.Fatalf("overload should list every entry, got %v", c.EntryIDs)
			}
		}
	}
	if !found {
		t.Fatalf("expected a %s conflict, got %v", ConflictLecturerOverload, report.Conflicts)
	}
}

func TestValidateReferenceError(t *testing.T) {
	data := validatorDataset()
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-missing", "spas_3h-1-0700", "group-1", models.WeekAll),
	}
	report, err := Validate(entries, data)
	if err == nil {
		t.Fatal("expected an error for the dangling room reference")
	}
	if report != nil {
		t.Fatal("no report should be returned alongside a reference error")
	}
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected *ReferenceError, got %T", err)
	}
	if refErr.Entity != "room" || refErr.ID != "room-missing" {
		t.Fatalf("wrong reference reported: %+v", refErr)
	}
}

func TestValidateCrossSchoolOverlapPolicy(t *testing.T) {
	data := validatorDataset()
	// A second school with a different convention whose Monday session
	// overlaps the SPAS 07:00-10:00 window.
	data.Schools = append(data.Schools, models.School{ID: "school-2", Name: "Health", Code: "SHS"})
	data.Departments = append(data.Departments, models.Department{
		ID: "dept-2", Name: "Nursing", Code: "NURS", SchoolID: "school-2",
	})
	data.Conventions["SHS"] = SessionConvention{
		Label:    "shs_2h",
		Sessions: []SessionWindow{{Start: "09:00", End: "11:00"}},
	}
	data.Units = append(data.Units, models.Unit{
		ID: "unit-shs", Name: "Anatomy 2", Code: "NURS001", DepartmentID: "dept-2",
		YearLevel: 2, Semester: 1, LecturerID: "lect-1",
	})
	data.Groups = append(data.Groups, models.StudentGroup{
		ID: "group-shs", DepartmentID: "dept-2", YearLevel: 2, GroupSize: 20,
	})
	data.Slots = append(data.Slots, models.TimeSlot{
		ID: "shs_2h-1-0900", DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", SessionType: "shs_2h",
	})

	// Same lecturer in both, overlapping wall-clock windows, distinct slots.
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekAll),
		entry("e2", "unit-shs", "lect-1", "room-2", "shs_2h-1-0900", "group-shs", models.WeekAll),
	}

	report, err := Validate(entries, data)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !report.IsValid {
		t.Fatalf("cross-school overlap must pass by default, got %v", report.Conflicts)
	}

	report, err = ValidateWithOptions(entries, data, ValidatorOptions{FlagCrossSchoolOverlap: true})
	if err != nil {
		t.Fatalf("ValidateWithOptions returned error: %v", err)
	}
	if report.IsValid {
		t.Fatal("expected a cross-school overlap conflict when the policy is enabled")
	}
	if report.Conflicts[0].Kind != ConflictCrossSchoolOverlap {
		t.Fatalf("expected %s, got %s", ConflictCrossSchoolOverlap, report.Conflicts[0].Kind)
	}
}

func TestAnalyzeConflictsGroupsByKind(t *testing.T) {
	data := validatorDataset()
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekAll),
		entry("e2", "unit-2", "lect-2", "room-lab", "spas_3h-1-0700", "group-2", models.WeekAll),
		entry("e3", "unit-1", "lect-1", "room-2", "spas_3h-1-0700", "group-1", models.WeekOdd),
	}
	grouped, err := AnalyzeConflicts(entries, data)
	if err != nil {
		t.Fatalf("AnalyzeConflicts returned error: %v", err)
	}
	if len(grouped[ConflictRoom]) == 0 {
		t.Fatal("expected room conflicts in the analysis")
	}
	if len(grouped[ConflictLabRoomRequired]) == 0 {
		t.Fatal("expected a lab room conflict in the analysis")
	}
	for kind, conflicts := range grouped {
		for _, c := range conflicts {
			if c.Kind != kind {
				t.Fatalf("conflict %v grouped under wrong kind %s", c, kind)
			}
		}
	}
}

func TestValidateDoesNotMutateEntries(t *testing.T) {
	data := validatorDataset()
	entries := []models.TimetableEntry{
		entry("e1", "unit-1", "lect-1", "room-lab", "spas_3h-1-0700", "group-1", models.WeekAll),
	}
	before := entries[0]
	if _, err := Validate(entries, data); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if entries[0] != before {
		t.Fatal("validator must not mutate its input")
	}
}
