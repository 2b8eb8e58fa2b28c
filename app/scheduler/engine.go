package scheduler

import (
	"sort"

	"github.com/google/uuid"

	"github.com/TitoKamau053/university-timetable/app/models"
)

// Offering is the unit of scheduling: one (unit, student group) pairing
// needing a single weekly placement.
type Offering struct {
	Unit  models.Unit
	Group models.StudentGroup
}

// UnscheduledOffering records an offering the engine could not place, with
// the reason placement failed. These are data, not errors: a run with
// unscheduled offerings is still a successful run.
type UnscheduledOffering struct {
	UnitID   string `json:"unit_id"`
	UnitCode string `json:"unit_code"`
	GroupID  string `json:"student_group_id,omitempty"`
	Reason   string `json:"reason"`
}

// GenerationResult is the complete outcome of one scheduling pass.
type GenerationResult struct {
	Entries     []models.TimetableEntry `json:"entries"`
	Unscheduled []UnscheduledOffering   `json:"unscheduled"`
}

// Engine produces a conflict-free timetable over one dataset snapshot.
// A run is sequential and order-dependent: commitments made for one offering
// constrain every later offering, so an Engine must not be shared across
// concurrent runs. Each Generate call owns fresh bookkeeping.
type Engine struct {
	data *Dataset
}

func NewEngine(data *Dataset) *Engine {
	return &Engine{data: data}
}

// Generate runs a single greedy pass over every offering. Offerings are
// processed in a deterministic order (unit code, then group id), each taking
// the first slot/room pair that passes every hard constraint. Offerings with
// no feasible placement are collected rather than failing the run; earlier
// commitments are never rolled back.
func (e *Engine) Generate() (*GenerationResult, error) {
	idx := e.data.buildIndex()
	state := newConstraintState()
	result := &GenerationResult{
		Entries:     []models.TimetableEntry{},
		Unscheduled: []UnscheduledOffering{},
	}

	offerings, dangling := e.collectOfferings()
	result.Unscheduled = append(result.Unscheduled, dangling...)

	for _, off := range offerings {
		lecturer, ok := idx.lecturers[off.Unit.LecturerID]
		if !ok {
			return nil, &ReferenceError{Entity: "lecturer", ID: off.Unit.LecturerID}
		}
		label, err := e.data.conventionLabelForUnit(idx, off.Unit)
		if err != nil {
			return nil, err
		}

		entry, reason := e.place(state, off, lecturer, label)
		if reason != "" {
			result.Unscheduled = append(result.Unscheduled, UnscheduledOffering{
				UnitID:   off.Unit.ID,
				UnitCode: off.Unit.Code,
				GroupID:  off.Group.ID,
				Reason:   reason,
			})
			continue
		}
		state.commit(entry)
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

// collectOfferings expands every unit into its eligible group pairings in
// deterministic order. Units with no eligible group are reported up front.
func (e *Engine) collectOfferings() ([]Offering, []UnscheduledOffering) {
	units := make([]models.Unit, len(e.data.Units))
	copy(units, e.data.Units)
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].Code != units[j].Code {
			return units[i].Code < units[j].Code
		}
		return units[i].ID < units[j].ID
	})

	var offerings []Offering
	var dangling []UnscheduledOffering
	for _, unit := range units {
		groups := e.data.EligibleGroups(unit)
		if len(groups) == 0 {
			dangling = append(dangling, UnscheduledOffering{
				UnitID:   unit.ID,
				UnitCode: unit.Code,
				Reason:   "no eligible student group for department and year level",
			})
			continue
		}
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
		for _, g := range groups {
			offerings = append(offerings, Offering{Unit: unit, Group: g})
		}
	}
	return offerings, dangling
}

// place finds the first feasible (slot, room) pair for an offering. It
// returns either a ready-to-commit entry or the reason none exists.
func (e *Engine) place(state *constraintState, off Offering, lecturer models.Lecturer, conventionLabel string) (models.TimetableEntry, string) {
	if !state.lecturerUnderLoad(lecturer) {
		return models.TimetableEntry{}, "lecturer is at maximum unit load"
	}

	rooms := e.candidateRooms(off)
	if len(rooms) == 0 {
		return models.TimetableEntry{}, "no room satisfies the capacity and type requirements"
	}
	slots := e.candidateSlots(conventionLabel)
	if len(slots) == 0 {
		return models.TimetableEntry{}, "no time slots exist for the school's session convention"
	}

	for _, slot := range slots {
		if !state.lecturerFree(lecturer.ID, slot.ID, models.WeekAll) {
			continue
		}
		if !state.groupFree(off.Group.ID, slot.ID, models.WeekAll) {
			continue
		}
		for _, room := range rooms {
			if !state.roomFree(room.ID, slot.ID, models.WeekAll) {
				continue
			}
			return models.TimetableEntry{
				ID:             uuid.New().String(),
				UnitID:         off.Unit.ID,
				LecturerID:     lecturer.ID,
				RoomID:         room.ID,
				TimeSlotID:     slot.ID,
				StudentGroupID: off.Group.ID,
				WeekType:       models.WeekAll,
			}, ""
		}
	}
	return models.TimetableEntry{}, "no conflict-free slot and room combination remains"
}

// candidateRooms returns suitable rooms in best-fit order: smallest capacity
// first, so large rooms stay free for large cohorts. Ties break on name then
// id to keep runs reproducible.
func (e *Engine) candidateRooms(off Offering) []models.Room {
	var rooms []models.Room
	for _, room := range e.data.Rooms {
		if roomFits(room, off.Unit, off.Group) {
			rooms = append(rooms, room)
		}
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		if rooms[i].Capacity != rooms[j].Capacity {
			return rooms[i].Capacity < rooms[j].Capacity
		}
		if rooms[i].Name != rooms[j].Name {
			return rooms[i].Name < rooms[j].Name
		}
		return rooms[i].ID < rooms[j].ID
	})
	return rooms
}

// candidateSlots returns the convention's slots ordered by day then start
// time, matching the catalog's stable ordering.
func (e *Engine) candidateSlots(conventionLabel string) []models.TimeSlot {
	var slots []models.TimeSlot
	for _, slot := range e.data.Slots {
		if slotMatchesConvention(slot, conventionLabel) {
			slots = append(slots, slot)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return slots[i].DayOfWeek < slots[j].DayOfWeek
		}
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime < slots[j].StartTime
		}
		return slots[i].ID < slots[j].ID
	})
	return slots
}
