package scheduler

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/TitoKamau053/university-timetable/app/models"
)

// singleSlotDataset is the smallest schedulable world: one school with a
// single 3-hour Monday session, one lab room, one lecturer.
func singleSlotDataset() *Dataset {
	conv := SessionConvention{
		Label:    "spas_3h",
		Sessions: []SessionWindow{{Start: "07:00", End: "10:00"}},
	}
	return &Dataset{
		Schools:     []models.School{{ID: "school-1", Name: "Sciences", Code: "SPAS"}},
		Departments: []models.Department{{ID: "dept-1", Name: "Computing", Code: "ITCS", SchoolID: "school-1"}},
		Lecturers: []models.Lecturer{
			{ID: "lect-1", Name: "Wanjiku Kamau", EmployeeID: "FT001", EmploymentType: models.FullTime, MaxUnits: 1},
		},
		Units: []models.Unit{
			{ID: "unit-1", Name: "Programming 2", Code: "ITCS001", DepartmentID: "dept-1", YearLevel: 2, Semester: 1, RequiresLab: true, LecturerID: "lect-1"},
		},
		Rooms:  []models.Room{{ID: "room-lab", Name: "Computer Lab A", Capacity: 40, RoomType: models.RoomLab}},
		Groups: []models.StudentGroup{{ID: "group-1", DepartmentID: "dept-1", YearLevel: 2, GroupSize: 40}},
		Slots: []models.TimeSlot{
			{ID: "spas_3h-1-0700", DayOfWeek: 1, StartTime: "07:00", EndTime: "10:00", SessionType: "spas_3h"},
		},
		Conventions: map[string]SessionConvention{"SPAS": conv},
	}
}

func TestGenerateSingleOffering(t *testing.T) {
	data := singleSlotDataset()
	result, err := NewEngine(data).Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if len(result.Unscheduled) != 0 {
		t.Fatalf("expected nothing unscheduled, got %v", result.Unscheduled)
	}
	entry := result.Entries[0]
	if entry.RoomID != "room-lab" || entry.TimeSlotID != "spas_3h-1-0700" {
		t.Fatalf("entry placed in wrong room/slot: %+v", entry)
	}
	if entry.LecturerID != "lect-1" || entry.StudentGroupID != "group-1" {
		t.Fatalf("entry references wrong lecturer/group: %+v", entry)
	}
	if entry.WeekType != models.WeekAll {
		t.Fatalf("generated entries should cover all weeks, got %s", entry.WeekType)
	}
}

func TestGenerateLecturerAtLoadLimit(t *testing.T) {
	data := singleSlotDataset()
	data.Units = append(data.Units, models.Unit{
		ID: "unit-2", Name: "Databases 2", Code: "ITCS002", DepartmentID: "dept-1",
		YearLevel: 2, Semester: 1, RequiresLab: true, LecturerID: "lect-1",
	})

	result, err := NewEngine(data).Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if len(result.Unscheduled) != 1 {
		t.Fatalf("expected 1 unscheduled offering, got %d", len(result.Unscheduled))
	}
	un := result.Unscheduled[0]
	if un.UnitCode != "ITCS002" {
		t.Fatalf("wrong offering unscheduled: %+v", un)
	}
	if un.Reason == "" {
		t.Fatal("unscheduled offering should carry a reason")
	}
}

func TestGenerateNoEligibleGroup(t *testing.T) {
	data := singleSlotDataset()
	data.Units[0].YearLevel = 3 // no year-3 group exists

	result, err := NewEngine(data).Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(result.Entries))
	}
	if len(result.Unscheduled) != 1 {
		t.Fatalf("expected 1 unscheduled offering, got %d", len(result.Unscheduled))
	}
	if result.Unscheduled[0].GroupID != "" {
		t.Fatalf("offering without a group should have no group id: %+v", result.Unscheduled[0])
	}
}

// widerDataset builds a multi-unit world that forces the engine to spread
// offerings across slots and rooms.
func widerDataset() *Dataset {
	data := &Dataset{
		Schools: []models.School{
			{ID: "school-spas", Name: "Sciences", Code: "SPAS"},
			{ID: "school-shs", Name: "Health", Code: "SHS"},
		},
		Departments: []models.Department{
			{ID: "dept-itcs", Name: "Computing", Code: "ITCS", SchoolID: "school-spas"},
			{ID: "dept-nurs", Name: "Nursing", Code: "NURS", SchoolID: "school-shs"},
		},
		Conventions: DefaultConventions(),
		Slots:       BuildSlotCatalog(DefaultConventions()),
	}
	data.Rooms = []models.Room{
		{ID: "room-1", Name: "Room 01", Capacity: 30, RoomType: models.RoomNormal},
		{ID: "room-2", Name: "Room 02", Capacity: 60, RoomType: models.RoomNormal},
		{ID: "room-lab", Name: "Computer Lab A", Capacity: 40, RoomType: models.RoomLab},
	}
	for i := 1; i <= 4; i++ {
		data.Lecturers = append(data.Lecturers, models.Lecturer{
			ID: fmt.Sprintf("lect-%d", i), Name: fmt.Sprintf("Lecturer %d", i),
			EmployeeID: fmt.Sprintf("FT%03d", i), EmploymentType: models.FullTime, MaxUnits: 4,
		})
	}
	data.Groups = []models.StudentGroup{
		{ID: "group-itcs-1", DepartmentID: "dept-itcs", YearLevel: 1, GroupSize: 35},
		{ID: "group-itcs-2", DepartmentID: "dept-itcs", YearLevel: 2, GroupSize: 55},
		{ID: "group-nurs-1", DepartmentID: "dept-nurs", YearLevel: 1, GroupSize: 28},
	}
	data.Units = []models.Unit{
		{ID: "u1", Name: "Programming 1", Code: "ITCS001", DepartmentID: "dept-itcs", YearLevel: 1, Semester: 1, RequiresLab: true, LecturerID: "lect-1"},
		{ID: "u2", Name: "Data Structures 1", Code: "ITCS002", DepartmentID: "dept-itcs", YearLevel: 1, Semester: 2, LecturerID: "lect-1"},
		{ID: "u3", Name: "Databases 2", Code: "ITCS003", DepartmentID: "dept-itcs", YearLevel: 2, Semester: 1, LecturerID: "lect-2"},
		{ID: "u4", Name: "Anatomy 1", Code: "NURS001", DepartmentID: "dept-nurs", YearLevel: 1, Semester: 1, LecturerID: "lect-3"},
		{ID: "u5", Name: "Physiology 1", Code: "NURS002", DepartmentID: "dept-nurs", YearLevel: 1, Semester: 1, LecturerID: "lect-4"},
		{ID: "u6", Name: "Pharmacology 1", Code: "NURS003", DepartmentID: "dept-nurs", YearLevel: 1, Semester: 2, LecturerID: "lect-3"},
	}
	return data
}

func TestGenerateInvariants(t *testing.T) {
	data := widerDataset()
	result, err := NewEngine(data).Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Entries) != 6 {
		t.Fatalf("expected all 6 offerings placed, got %d (unscheduled: %v)", len(result.Entries), result.Unscheduled)
	}

	idx := data.buildIndex()
	roomSlots := make(map[string]bool)
	lecturerSlots := make(map[string]bool)
	groupSlots := make(map[string]bool)
	lecturerCount := make(map[string]int)

	for _, entry := range result.Entries {
		rk := entry.RoomID + "|" + entry.TimeSlotID
		if roomSlots[rk] {
			t.Fatalf("room double-booked: %s", rk)
		}
		roomSlots[rk] = true

		lk := entry.LecturerID + "|" + entry.TimeSlotID
		if lecturerSlots[lk] {
			t.Fatalf("lecturer double-booked: %s", lk)
		}
		lecturerSlots[lk] = true

		gk := entry.StudentGroupID + "|" + entry.TimeSlotID
		if groupSlots[gk] {
			t.Fatalf("student group double-booked: %s", gk)
		}
		groupSlots[gk] = true

		unit := idx.units[entry.UnitID]
		room := idx.rooms[entry.RoomID]
		group := idx.groups[entry.StudentGroupID]
		slot := idx.slots[entry.TimeSlotID]

		if unit.RequiresLab && room.RoomType != models.RoomLab {
			t.Fatalf("lab unit %s placed in %s room", unit.Code, room.RoomType)
		}
		if room.Capacity < group.GroupSize {
			t.Fatalf("room %s capacity %d below group size %d", room.Name, room.Capacity, group.GroupSize)
		}

		label, err := data.conventionLabelForUnit(idx, unit)
		if err != nil {
			t.Fatalf("convention lookup failed: %v", err)
		}
		if slot.SessionType != label {
			t.Fatalf("unit %s in %s slot, wants %s", unit.Code, slot.SessionType, label)
		}

		lecturerCount[entry.LecturerID]++
	}

	for id, count := range lecturerCount {
		if count > idx.lecturers[id].MaxUnits {
			t.Fatalf("lecturer %s assigned %d units, max is %d", id, count, idx.lecturers[id].MaxUnits)
		}
	}
}

// placementKey strips the generated entry id so runs can be compared.
func placementKey(e models.TimetableEntry) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s", e.UnitID, e.StudentGroupID, e.LecturerID, e.RoomID, e.TimeSlotID, e.WeekType)
}

func TestGenerateDeterminism(t *testing.T) {
	first, err := NewEngine(widerDataset()).Generate()
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := NewEngine(widerDataset()).Generate()
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if len(first.Entries) != len(second.Entries) {
		t.Fatalf("entry counts differ: %d vs %d", len(first.Entries), len(second.Entries))
	}
	for i := range first.Entries {
		if placementKey(first.Entries[i]) != placementKey(second.Entries[i]) {
			t.Fatalf("placement %d differs:\n%s\n%s", i, placementKey(first.Entries[i]), placementKey(second.Entries[i]))
		}
	}
	if !reflect.DeepEqual(first.Unscheduled, second.Unscheduled) {
		t.Fatalf("unscheduled lists differ: %v vs %v", first.Unscheduled, second.Unscheduled)
	}
}

func TestGenerateBestFitRoomPacking(t *testing.T) {
	data := singleSlotDataset()
	data.Units[0].RequiresLab = false
	data.Groups[0].GroupSize = 25
	data.Rooms = []models.Room{
		{ID: "room-big", Name: "Room 02", Capacity: 80, RoomType: models.RoomNormal},
		{ID: "room-small", Name: "Room 01", Capacity: 30, RoomType: models.RoomNormal},
	}

	result, err := NewEngine(data).Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if result.Entries[0].RoomID != "room-small" {
		t.Fatalf("expected best-fit room-small, got %s", result.Entries[0].RoomID)
	}
}

func TestGenerateMissingLecturerReference(t *testing.T) {
	data := singleSlotDataset()
	data.Lecturers = nil

	_, err := NewEngine(data).Generate()
	if err == nil {
		t.Fatal("expected a reference error for the missing lecturer")
	}
	if _, ok := err.(*ReferenceError); !ok {
		t.Fatalf("expected *ReferenceError, got %T", err)
	}
}
