package scheduler

import (
	"fmt"
	"sort"

	"github.com/TitoKamau053/university-timetable/app/models"
)

// Conflict kinds reported by the validator.
const (
	ConflictRoom               = "room_conflict"
	ConflictLecturer           = "lecturer_conflict"
	ConflictGroup              = "group_conflict"
	ConflictLecturerOverload   = "lecturer_overload"
	ConflictCapacityExceeded   = "capacity_exceeded"
	ConflictLabRoomRequired    = "lab_room_required"
	ConflictConvention         = "convention_mismatch"
	ConflictCrossSchoolOverlap = "cross_school_overlap"
)

// Conflict is one detected violation of a hard constraint.
type Conflict struct {
	Kind     string   `json:"kind"`
	Message  string   `json:"message"`
	EntryIDs []string `json:"entry_ids"`
}

// ValidationReport is the full outcome of a validation run. Finding conflicts
// is a normal, successful result: IsValid is false and Conflicts is populated.
type ValidationReport struct {
	IsValid   bool       `json:"is_valid"`
	Conflicts []Conflict `json:"conflicts"`
}

// ReferenceError means an entry references an entity missing from the
// supplied reference data. Unlike conflicts, this is an execution failure of
// the validation call itself: a schedule must be self-consistent with the
// entities it names.
type ReferenceError struct {
	Entity string
	ID     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %q not found in reference data", e.Entity, e.ID)
}

// ValidatorOptions adjusts optional policy checks.
type ValidatorOptions struct {
	// FlagCrossSchoolOverlap also reports entries that double-book a
	// resource across different conventions at overlapping wall-clock
	// times. The slot catalog deliberately keeps such slots distinct, so
	// this is off by default.
	FlagCrossSchoolOverlap bool
}

// Validate re-derives occupancy from any entry set, generated or externally
// edited, and reports every hard-constraint violation. The input is never
// mutated.
func Validate(entries []models.TimetableEntry, data *Dataset) (*ValidationReport, error) {
	return ValidateWithOptions(entries, data, ValidatorOptions{})
}

func ValidateWithOptions(entries []models.TimetableEntry, data *Dataset, opts ValidatorOptions) (*ValidationReport, error) {
	conflicts, err := scanConflicts(entries, data, opts)
	if err != nil {
		return nil, err
	}
	return &ValidationReport{
		IsValid:   len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// AnalyzeConflicts runs the same scan as Validate but groups the findings by
// kind for diagnostic display.
func AnalyzeConflicts(entries []models.TimetableEntry, data *Dataset) (map[string][]Conflict, error) {
	return AnalyzeConflictsWithOptions(entries, data, ValidatorOptions{})
}

func AnalyzeConflictsWithOptions(entries []models.TimetableEntry, data *Dataset, opts ValidatorOptions) (map[string][]Conflict, error) {
	conflicts, err := scanConflicts(entries, data, opts)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]Conflict)
	for _, c := range conflicts {
		grouped[c.Kind] = append(grouped[c.Kind], c)
	}
	return grouped, nil
}

func scanConflicts(entries []models.TimetableEntry, data *Dataset, opts ValidatorOptions) ([]Conflict, error) {
	idx := data.buildIndex()

	// Resolve every reference up front so a missing entity fails the call
	// before any conflict is reported.
	for _, entry := range entries {
		if _, ok := idx.units[entry.UnitID]; !ok {
			return nil, &ReferenceError{Entity: "unit", ID: entry.UnitID}
		}
		if _, ok := idx.lecturers[entry.LecturerID]; !ok {
			return nil, &ReferenceError{Entity: "lecturer", ID: entry.LecturerID}
		}
		if _, ok := idx.rooms[entry.RoomID]; !ok {
			return nil, &ReferenceError{Entity: "room", ID: entry.RoomID}
		}
		if _, ok := idx.slots[entry.TimeSlotID]; !ok {
			return nil, &ReferenceError{Entity: "time slot", ID: entry.TimeSlotID}
		}
		if _, ok := idx.groups[entry.StudentGroupID]; !ok {
			return nil, &ReferenceError{Entity: "student group", ID: entry.StudentGroupID}
		}
	}

	var conflicts []Conflict
	conflicts = append(conflicts, doubleBookings(entries, idx)...)
	conflicts = append(conflicts, lecturerOverloads(entries, idx)...)

	for _, entry := range entries {
		unit := idx.units[entry.UnitID]
		room := idx.rooms[entry.RoomID]
		slot := idx.slots[entry.TimeSlotID]
		group := idx.groups[entry.StudentGroupID]

		if unit.RequiresLab && room.RoomType != models.RoomLab {
			conflicts = append(conflicts, Conflict{
				Kind:     ConflictLabRoomRequired,
				Message:  fmt.Sprintf("lab unit %s assigned to non-lab room %s", unit.Code, room.Name),
				EntryIDs: []string{entry.ID},
			})
		}
		if group.GroupSize > room.Capacity {
			conflicts = append(conflicts, Conflict{
				Kind:     ConflictCapacityExceeded,
				Message:  fmt.Sprintf("room %s holds %d but group needs %d for unit %s", room.Name, room.Capacity, group.GroupSize, unit.Code),
				EntryIDs: []string{entry.ID},
			})
		}
		label, err := data.conventionLabelForUnit(idx, unit)
		if err != nil {
			return nil, err
		}
		if !slotMatchesConvention(slot, label) {
			conflicts = append(conflicts, Conflict{
				Kind:     ConflictConvention,
				Message:  fmt.Sprintf("unit %s requires %s sessions but is placed in a %s slot", unit.Code, label, slot.SessionType),
				EntryIDs: []string{entry.ID},
			})
		}
	}

	if opts.FlagCrossSchoolOverlap {
		conflicts = append(conflicts, crossSchoolOverlaps(entries, idx)...)
	}
	return conflicts, nil
}

// doubleBookings reports every pair of entries claiming the same
// (resource, slot) pair on overlapping weeks, for rooms, lecturers and
// student groups independently.
func doubleBookings(entries []models.TimetableEntry, idx *refIndex) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.TimeSlotID != b.TimeSlotID || !weeksOverlap(a.WeekType, b.WeekType) {
				continue
			}
			slot := idx.slots[a.TimeSlotID]
			if a.RoomID == b.RoomID {
				room := idx.rooms[a.RoomID]
				conflicts = append(conflicts, Conflict{
					Kind:     ConflictRoom,
					Message:  fmt.Sprintf("room %s double-booked on %s", room.Name, slot.Label()),
					EntryIDs: []string{a.ID, b.ID},
				})
			}
			if a.LecturerID == b.LecturerID {
				lecturer := idx.lecturers[a.LecturerID]
				conflicts = append(conflicts, Conflict{
					Kind:     ConflictLecturer,
					Message:  fmt.Sprintf("lecturer %s double-booked on %s", lecturer.Name, slot.Label()),
					EntryIDs: []string{a.ID, b.ID},
				})
			}
			if a.StudentGroupID == b.StudentGroupID {
				conflicts = append(conflicts, Conflict{
					Kind:     ConflictGroup,
					Message:  fmt.Sprintf("student group %s double-booked on %s", a.StudentGroupID, slot.Label()),
					EntryIDs: []string{a.ID, b.ID},
				})
			}
		}
	}
	return conflicts
}

func lecturerOverloads(entries []models.TimetableEntry, idx *refIndex) []Conflict {
	counts := make(map[string][]string)
	for _, entry := range entries {
		counts[entry.LecturerID] = append(counts[entry.LecturerID], entry.ID)
	}
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var conflicts []Conflict
	for _, id := range ids {
		lecturer := idx.lecturers[id]
		if len(counts[id]) > lecturer.MaxUnits {
			conflicts = append(conflicts, Conflict{
				Kind:     ConflictLecturerOverload,
				Message:  fmt.Sprintf("lecturer %s has %d entries but max_units is %d", lecturer.Name, len(counts[id]), lecturer.MaxUnits),
				EntryIDs: counts[id],
			})
		}
	}
	return conflicts
}

// crossSchoolOverlaps flags same-resource bookings in different conventions
// whose wall-clock windows intersect on the same day. These never collide on
// slot id, so the standard double-booking scan cannot see them.
func crossSchoolOverlaps(entries []models.TimetableEntry, idx *refIndex) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			sa, sb := idx.slots[a.TimeSlotID], idx.slots[b.TimeSlotID]
			if sa.SessionType == sb.SessionType || sa.DayOfWeek != sb.DayOfWeek {
				continue
			}
			if !weeksOverlap(a.WeekType, b.WeekType) {
				continue
			}
			// HH:MM strings compare correctly as text.
			if sa.StartTime >= sb.EndTime || sb.StartTime >= sa.EndTime {
				continue
			}
			shared := ""
			switch {
			case a.RoomID == b.RoomID:
				shared = "room " + idx.rooms[a.RoomID].Name
			case a.LecturerID == b.LecturerID:
				shared = "lecturer " + idx.lecturers[a.LecturerID].Name
			case a.StudentGroupID == b.StudentGroupID:
				shared = "student group " + a.StudentGroupID
			}
			if shared == "" {
				continue
			}
			conflicts = append(conflicts, Conflict{
				Kind:     ConflictCrossSchoolOverlap,
				Message:  fmt.Sprintf("%s booked in overlapping %s and %s sessions on %s", shared, sa.SessionType, sb.SessionType, models.DayName(sa.DayOfWeek)),
				EntryIDs: []string{a.ID, b.ID},
			})
		}
	}
	return conflicts
}
