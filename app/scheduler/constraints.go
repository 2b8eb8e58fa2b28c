package scheduler

import (
	"github.com/TitoKamau053/university-timetable/app/models"
)

type resourceKind uint8

const (
	resourceRoom resourceKind = iota
	resourceLecturer
	resourceGroup
)

type occupancyKey struct {
	kind       resourceKind
	resourceID string
	slotID     string
}

// occupancyBook tracks which (resource, slot) pairs are taken, remembering
// the week tag of each booking so that disjoint odd/even entries can legally
// share a physical slot.
type occupancyBook struct {
	booked map[occupancyKey][]models.WeekType
}

func newOccupancyBook() *occupancyBook {
	return &occupancyBook{booked: make(map[occupancyKey][]models.WeekType)}
}

func (b *occupancyBook) occupied(kind resourceKind, resourceID, slotID string, week models.WeekType) bool {
	for _, existing := range b.booked[occupancyKey{kind, resourceID, slotID}] {
		if weeksOverlap(existing, week) {
			return true
		}
	}
	return false
}

func (b *occupancyBook) book(kind resourceKind, resourceID, slotID string, week models.WeekType) {
	key := occupancyKey{kind, resourceID, slotID}
	b.booked[key] = append(b.booked[key], week)
}

// weeksOverlap reports whether two week tags claim at least one common week.
// "all" overlaps everything; odd and even are disjoint. This is the reason
// the occupancy key carries week tags at all: an odd/even pair sharing a slot
// is a legitimate schedule, not a double booking.
func weeksOverlap(a, b models.WeekType) bool {
	if a == models.WeekAll || b == models.WeekAll {
		return true
	}
	return a == b
}

// constraintState is the mutable bookkeeping for one generation run. It is
// created per run and discarded with it; nothing here is shared process-wide.
type constraintState struct {
	occupancy    *occupancyBook
	lecturerLoad map[string]int
}

func newConstraintState() *constraintState {
	return &constraintState{
		occupancy:    newOccupancyBook(),
		lecturerLoad: make(map[string]int),
	}
}

func (s *constraintState) roomFree(roomID, slotID string, week models.WeekType) bool {
	return !s.occupancy.occupied(resourceRoom, roomID, slotID, week)
}

func (s *constraintState) lecturerFree(lecturerID, slotID string, week models.WeekType) bool {
	return !s.occupancy.occupied(resourceLecturer, lecturerID, slotID, week)
}

func (s *constraintState) groupFree(groupID, slotID string, week models.WeekType) bool {
	return !s.occupancy.occupied(resourceGroup, groupID, slotID, week)
}

func (s *constraintState) lecturerUnderLoad(lecturer models.Lecturer) bool {
	return s.lecturerLoad[lecturer.ID] < lecturer.MaxUnits
}

func (s *constraintState) commit(entry models.TimetableEntry) {
	s.occupancy.book(resourceRoom, entry.RoomID, entry.TimeSlotID, entry.WeekType)
	s.occupancy.book(resourceLecturer, entry.LecturerID, entry.TimeSlotID, entry.WeekType)
	s.occupancy.book(resourceGroup, entry.StudentGroupID, entry.TimeSlotID, entry.WeekType)
	s.lecturerLoad[entry.LecturerID]++
}

// roomFits checks the static suitability of a room for an offering: lab units
// need lab rooms, plain units need normal rooms, and the room must hold the
// whole group.
func roomFits(room models.Room, unit models.Unit, group models.StudentGroup) bool {
	if unit.RequiresLab {
		if room.RoomType != models.RoomLab {
			return false
		}
	} else if room.RoomType != models.RoomNormal {
		return false
	}
	return room.Capacity >= group.GroupSize
}

func slotMatchesConvention(slot models.TimeSlot, conventionLabel string) bool {
	return slot.SessionType == conventionLabel
}
