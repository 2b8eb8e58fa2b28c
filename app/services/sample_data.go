package services

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/TitoKamau053/university-timetable/app/database"
	"github.com/TitoKamau053/university-timetable/app/models"
)

var lecturerNames = []string{
	"Wanjiku Kamau", "Otieno Ochieng", "Njoroge Mwangi", "Akinyi Adhiambo",
	"Kipchoge Rotich", "Nyambura Kariuki", "Omondi Owino", "Wanjiru Ndungu",
	"Kiprotich Chelimo", "Wairimu Githinji", "Ombima Nyong'o", "Nduta Waweru",
	"Kimani Macharia", "Auma Ogola", "Karanja Njeri", "Chebet Korir",
	"Mwenda Mutua", "Awuor Oduya", "Gathoni Mbugua", "Kiplagat Suter",
	"Mukami Githuka", "Odongo Obong'o", "Wangari Maathai", "Talam Chepkwony",
	"Njeri Wanjiku", "Odhiambo Otieno", "Githui Kamunde", "Moraa Gesare",
	"Kibet Lagat", "Wambui Karanja", "Okello Otieno", "Njambi Koigi",
	"Rutto Kiplangat", "Wangui Ndung'u", "Oyugi Awuondo", "Muthoni Kimemia",
	"Chepkurui Rotich", "Waiguru Kamotho", "Ochieng Oduor", "Njoki Wanjiru",
	"Kiprono Cheruiyot", "Wambugu Kamau", "Anyango Onyango", "Gitonga Mwangi",
	"Jeptoo Kibet", "Muhoro Ndegwa", "Akoth Omondi", "Njuguna Kariuki",
	"Chelimo Kipchoge", "Wangechi Mburu",
}

var departmentSubjects = map[string][]string{
	"ITCS": {"Programming", "Database Systems", "Network Security", "Web Development",
		"Data Structures", "Software Engineering", "Mobile Computing", "AI",
		"Computer Graphics", "System Administration"},
	"MAC": {"Calculus", "Linear Algebra", "Statistics", "Discrete Mathematics",
		"Numerical Analysis", "Operations Research", "Probability Theory",
		"Mathematical Modeling", "Abstract Algebra", "Real Analysis"},
	"NURS": {"Anatomy", "Physiology", "Pharmacology", "Medical Nursing",
		"Surgical Nursing", "Community Health", "Mental Health", "Pediatric Nursing",
		"Obstetrics", "Ethics in Nursing"},
	"PSYC": {"General Psychology", "Developmental Psychology", "Abnormal Psychology",
		"Social Psychology", "Cognitive Psychology", "Research Methods",
		"Counseling Psychology", "Educational Psychology", "Clinical Psychology",
		"Personality Theory"},
}

// GenerateSampleData populates a demo university: two schools with four
// departments, 20 rooms, 50 lecturers, 100 units and a student group per
// department and year level. Each step skips itself when data already exists,
// so the call is safe to repeat.
func GenerateSampleData(db *sql.DB) error {
	if err := createSchoolsAndDepartments(db); err != nil {
		return err
	}
	if err := createRooms(db); err != nil {
		return err
	}
	if err := createLecturers(db); err != nil {
		return err
	}
	if err := createUnits(db); err != nil {
		return err
	}
	return createStudentGroups(db)
}

func createSchoolsAndDepartments(db *sql.DB) error {
	schools, err := database.GetSchools(db)
	if err != nil {
		return err
	}
	if len(schools) > 0 {
		log.Printf("Schools already exist (%d found), skipping school creation", len(schools))
		return nil
	}

	spas := &models.School{Name: "School of Pure and Applied Sciences", Code: "SPAS"}
	if err := database.CreateSchool(db, spas); err != nil {
		return err
	}
	shs := &models.School{Name: "School of Health Sciences", Code: "SHS"}
	if err := database.CreateSchool(db, shs); err != nil {
		return err
	}

	departments := []*models.Department{
		{Name: "Information Technology and Computer Science", Code: "ITCS", SchoolID: spas.ID},
		{Name: "Mathematics and Computing", Code: "MAC", SchoolID: spas.ID},
		{Name: "Nursing", Code: "NURS", SchoolID: shs.ID},
		{Name: "Psychology", Code: "PSYC", SchoolID: shs.ID},
	}
	for _, dept := range departments {
		if err := database.CreateDepartment(db, dept); err != nil {
			return err
		}
	}
	return nil
}

func createRooms(db *sql.DB) error {
	rooms, err := database.GetRooms(db)
	if err != nil {
		return err
	}
	if len(rooms) > 0 {
		log.Printf("Rooms already exist (%d found), skipping room creation", len(rooms))
		return nil
	}

	for i := 1; i <= 18; i++ {
		room := &models.Room{
			Name:     fmt.Sprintf("Room %02d", i),
			Capacity: 30 + rand.Intn(51),
			RoomType: models.RoomNormal,
		}
		if err := database.CreateRoom(db, room); err != nil {
			return err
		}
	}

	labs := []*models.Room{
		{Name: "Computer Lab A", Capacity: 40, RoomType: models.RoomLab},
		{Name: "Computer Lab B", Capacity: 35, RoomType: models.RoomLab},
	}
	for _, lab := range labs {
		if err := database.CreateRoom(db, lab); err != nil {
			return err
		}
	}
	return nil
}

func createLecturers(db *sql.DB) error {
	lecturers, err := database.GetLecturers(db)
	if err != nil {
		return err
	}
	if len(lecturers) > 0 {
		log.Printf("Lecturers already exist (%d found), skipping lecturer creation", len(lecturers))
		return nil
	}

	names := make([]string, len(lecturerNames))
	copy(names, lecturerNames)
	rand.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	// 30 full-time lecturers carrying 4 units, 20 part-time carrying 2.
	for i := 0; i < 30; i++ {
		lecturer := &models.Lecturer{
			Name:           names[i],
			EmployeeID:     fmt.Sprintf("FT%03d", i+1),
			EmploymentType: models.FullTime,
			MaxUnits:       4,
			Phone:          fmt.Sprintf("254%d", 700000000+rand.Intn(100000000)),
			Email:          emailFor(names[i]),
		}
		if err := database.CreateLecturer(db, lecturer); err != nil {
			return err
		}
	}
	for i := 0; i < 20; i++ {
		lecturer := &models.Lecturer{
			Name:           names[30+i],
			EmployeeID:     fmt.Sprintf("PT%03d", i+1),
			EmploymentType: models.PartTime,
			MaxUnits:       2,
			Phone:          fmt.Sprintf("254%d", 700000000+rand.Intn(100000000)),
			Email:          emailFor(names[30+i]),
		}
		if err := database.CreateLecturer(db, lecturer); err != nil {
			return err
		}
	}
	return nil
}

func emailFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@university.ac.ke"
}

func createUnits(db *sql.DB) error {
	units, err := database.GetUnits(db)
	if err != nil {
		return err
	}
	if len(units) > 0 {
		log.Printf("Units already exist (%d found), skipping unit creation", len(units))
		return nil
	}

	departments, err := database.GetDepartments(db)
	if err != nil {
		return err
	}
	lecturers, err := database.GetLecturers(db)
	if err != nil {
		return err
	}

	lecturerLoad := make(map[string]int)
	unitCounter := 1

	for _, dept := range departments {
		subjects, ok := departmentSubjects[dept.Code]
		if !ok {
			continue
		}
		for i := 0; i < 25; i++ {
			var available []models.Lecturer
			for _, l := range lecturers {
				if lecturerLoad[l.ID] < l.MaxUnits {
					available = append(available, l)
				}
			}
			if len(available) == 0 {
				log.Println("All lecturers at capacity, stopping unit creation")
				return nil
			}
			lecturer := available[rand.Intn(len(available))]

			yearLevel := 1 + rand.Intn(4)
			requiresLab := false
			switch dept.Code {
			case "ITCS":
				requiresLab = rand.Float64() < 0.4
			case "MAC":
				requiresLab = rand.Float64() < 0.2
			}

			unit := &models.Unit{
				Name:         fmt.Sprintf("%s %d", subjects[rand.Intn(len(subjects))], yearLevel),
				Code:         fmt.Sprintf("%s%03d", dept.Code, unitCounter),
				DepartmentID: dept.ID,
				YearLevel:    yearLevel,
				Semester:     1 + rand.Intn(2),
				RequiresLab:  requiresLab,
				LecturerID:   lecturer.ID,
			}
			if err := database.CreateUnit(db, unit); err != nil {
				return err
			}
			lecturerLoad[lecturer.ID]++
			unitCounter++
		}
	}
	return nil
}

func createStudentGroups(db *sql.DB) error {
	groups, err := database.GetStudentGroups(db)
	if err != nil {
		return err
	}
	if len(groups) > 0 {
		log.Printf("Student groups already exist (%d found), skipping group creation", len(groups))
		return nil
	}

	departments, err := database.GetDepartments(db)
	if err != nil {
		return err
	}
	for _, dept := range departments {
		for year := 1; year <= 4; year++ {
			group := &models.StudentGroup{
				DepartmentID: dept.ID,
				YearLevel:    year,
				GroupSize:    25 + rand.Intn(36),
			}
			if err := database.CreateStudentGroup(db, group); err != nil {
				return err
			}
		}
	}
	return nil
}
