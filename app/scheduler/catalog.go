package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TitoKamau053/university-timetable/app/models"
)

// SessionWindow is one teaching window within a convention, applied to every
// teaching day. Times are HH:MM, 24-hour.
type SessionWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SessionConvention is a school's fixed daily pattern of session windows.
// Every unit of the school is taught in slots carrying the convention label.
type SessionConvention struct {
	Label    string          `json:"label"`
	Sessions []SessionWindow `json:"sessions"`
}

// DefaultConventions returns the built-in conventions keyed by school code:
// long 3-hour sessions for SPAS, short 2-hour sessions for everyone else.
func DefaultConventions() map[string]SessionConvention {
	spas := SessionConvention{
		Label: "spas_3h",
		Sessions: []SessionWindow{
			{Start: "07:00", End: "10:00"},
			{Start: "10:30", End: "13:30"},
			{Start: "14:00", End: "17:00"},
			{Start: "16:00", End: "19:00"},
		},
	}
	shs := SessionConvention{
		Label: "shs_2h",
		Sessions: []SessionWindow{
			{Start: "07:00", End: "09:00"},
			{Start: "09:00", End: "11:00"},
			{Start: "11:00", End: "13:00"},
			{Start: "14:00", End: "16:00"},
			{Start: "16:00", End: "18:00"},
			{Start: "17:00", End: "19:00"},
		},
	}
	return map[string]SessionConvention{
		"SPAS": spas,
		"SHS":  shs,
	}
}

// ConventionsForSchools assigns every school its session convention: SPAS
// keeps its long 3-hour pattern, all other schools teach 2-hour sessions.
func ConventionsForSchools(schools []models.School) map[string]SessionConvention {
	defaults := DefaultConventions()
	conventions := make(map[string]SessionConvention, len(schools))
	for _, school := range schools {
		if conv, ok := defaults[school.Code]; ok {
			conventions[school.Code] = conv
		} else {
			conventions[school.Code] = defaults["SHS"]
		}
	}
	return conventions
}

// BuildSlotCatalog cross-products teaching days with every convention's
// session windows. The result is stable: slots are ordered by day, then start
// time, then convention label, and slot IDs are derived from those same
// fields, so rebuilding from identical conventions yields an identical
// catalog. Conventions never share slots, even at coinciding wall-clock
// times; each school's slots are distinct bookable units.
func BuildSlotCatalog(conventions map[string]SessionConvention) []models.TimeSlot {
	seen := make(map[string]SessionConvention)
	for _, conv := range conventions {
		seen[conv.Label] = conv
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var slots []models.TimeSlot
	for day := models.Monday; day <= models.Friday; day++ {
		for _, label := range labels {
			for _, win := range seen[label].Sessions {
				slots = append(slots, models.TimeSlot{
					ID:          slotID(label, day, win.Start),
					DayOfWeek:   day,
					StartTime:   win.Start,
					EndTime:     win.End,
					SessionType: label,
				})
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return slots[i].DayOfWeek < slots[j].DayOfWeek
		}
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime < slots[j].StartTime
		}
		return slots[i].SessionType < slots[j].SessionType
	})
	return slots
}

func slotID(label string, day int, start string) string {
	return fmt.Sprintf("%s-%d-%s", label, day, strings.ReplaceAll(start, ":", ""))
}
