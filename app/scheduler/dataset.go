package scheduler

import (
	"github.com/TitoKamau053/university-timetable/app/models"
)

// Dataset is one immutable snapshot of the reference data a generation or
// validation run works over. Callers load it once; the engine never reaches
// back into storage mid-run.
type Dataset struct {
	Schools     []models.School
	Departments []models.Department
	Lecturers   []models.Lecturer
	Units       []models.Unit
	Rooms       []models.Room
	Groups      []models.StudentGroup
	Slots       []models.TimeSlot

	// Conventions maps school code to its session convention. Schools
	// absent from the map fall back to nothing; their units cannot be
	// scheduled.
	Conventions map[string]SessionConvention
}

// refIndex provides id lookups over a dataset.
type refIndex struct {
	schools     map[string]models.School
	departments map[string]models.Department
	lecturers   map[string]models.Lecturer
	units       map[string]models.Unit
	rooms       map[string]models.Room
	groups      map[string]models.StudentGroup
	slots       map[string]models.TimeSlot
}

func (d *Dataset) buildIndex() *refIndex {
	idx := &refIndex{
		schools:     make(map[string]models.School, len(d.Schools)),
		departments: make(map[string]models.Department, len(d.Departments)),
		lecturers:   make(map[string]models.Lecturer, len(d.Lecturers)),
		units:       make(map[string]models.Unit, len(d.Units)),
		rooms:       make(map[string]models.Room, len(d.Rooms)),
		groups:      make(map[string]models.StudentGroup, len(d.Groups)),
		slots:       make(map[string]models.TimeSlot, len(d.Slots)),
	}
	for _, s := range d.Schools {
		idx.schools[s.ID] = s
	}
	for _, dep := range d.Departments {
		idx.departments[dep.ID] = dep
	}
	for _, l := range d.Lecturers {
		idx.lecturers[l.ID] = l
	}
	for _, u := range d.Units {
		idx.units[u.ID] = u
	}
	for _, r := range d.Rooms {
		idx.rooms[r.ID] = r
	}
	for _, g := range d.Groups {
		idx.groups[g.ID] = g
	}
	for _, ts := range d.Slots {
		idx.slots[ts.ID] = ts
	}
	return idx
}

// conventionLabelForUnit resolves unit -> department -> school -> convention.
func (d *Dataset) conventionLabelForUnit(idx *refIndex, unit models.Unit) (string, error) {
	dept, ok := idx.departments[unit.DepartmentID]
	if !ok {
		return "", &ReferenceError{Entity: "department", ID: unit.DepartmentID}
	}
	school, ok := idx.schools[dept.SchoolID]
	if !ok {
		return "", &ReferenceError{Entity: "school", ID: dept.SchoolID}
	}
	conv, ok := d.Conventions[school.Code]
	if !ok {
		return "", &ReferenceError{Entity: "convention", ID: school.Code}
	}
	return conv.Label, nil
}

// EligibleGroups returns the student groups a unit is offered to: every group
// sharing the unit's department and year level.
func (d *Dataset) EligibleGroups(unit models.Unit) []models.StudentGroup {
	var groups []models.StudentGroup
	for _, g := range d.Groups {
		if g.DepartmentID == unit.DepartmentID && g.YearLevel == unit.YearLevel {
			groups = append(groups, g)
		}
	}
	return groups
}
