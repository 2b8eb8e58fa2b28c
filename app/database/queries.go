package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/TitoKamau053/university-timetable/app/models"
)

func GetSchools(db *sql.DB) ([]models.School, error) {
	rows, err := db.Query(`SELECT id, name, code, created_at FROM schools ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schools := make([]models.School, 0)
	for rows.Next() {
		var s models.School
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.CreatedAt); err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

func CreateSchool(db *sql.DB, school *models.School) error {
	school.ID = uuid.New().String()
	school.CreatedAt = time.Now()
	_, err := db.Exec(`INSERT INTO schools (id, name, code, created_at) VALUES ($1, $2, $3, $4)`,
		school.ID, school.Name, school.Code, school.CreatedAt)
	return err
}

func GetDepartments(db *sql.DB) ([]models.Department, error) {
	rows, err := db.Query(`SELECT id, name, code, school_id, created_at FROM departments ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]models.Department, 0)
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.SchoolID, &d.CreatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func GetDepartmentByCode(db *sql.DB, code string) (*models.Department, error) {
	d := &models.Department{}
	err := db.QueryRow(`SELECT id, name, code, school_id, created_at FROM departments WHERE code = $1`, code).
		Scan(&d.ID, &d.Name, &d.Code, &d.SchoolID, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func CreateDepartment(db *sql.DB, dept *models.Department) error {
	dept.ID = uuid.New().String()
	dept.CreatedAt = time.Now()
	_, err := db.Exec(`INSERT INTO departments (id, name, code, school_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		dept.ID, dept.Name, dept.Code, dept.SchoolID, dept.CreatedAt)
	return err
}

func GetLecturers(db *sql.DB) ([]models.Lecturer, error) {
	rows, err := db.Query(`SELECT id, name, employee_id, employment_type, max_units,
		COALESCE(phone, ''), COALESCE(email, ''), created_at FROM lecturers ORDER BY employee_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lecturers := make([]models.Lecturer, 0)
	for rows.Next() {
		var l models.Lecturer
		if err := rows.Scan(&l.ID, &l.Name, &l.EmployeeID, &l.EmploymentType,
			&l.MaxUnits, &l.Phone, &l.Email, &l.CreatedAt); err != nil {
			return nil, err
		}
		lecturers = append(lecturers, l)
	}
	return lecturers, rows.Err()
}

func GetLecturerByID(db *sql.DB, lecturerID string) (*models.Lecturer, error) {
	l := &models.Lecturer{}
	err := db.QueryRow(`SELECT id, name, employee_id, employment_type, max_units,
		COALESCE(phone, ''), COALESCE(email, ''), created_at FROM lecturers WHERE id = $1`, lecturerID).
		Scan(&l.ID, &l.Name, &l.EmployeeID, &l.EmploymentType, &l.MaxUnits, &l.Phone, &l.Email, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func CreateLecturer(db *sql.DB, lecturer *models.Lecturer) error {
	lecturer.ID = uuid.New().String()
	lecturer.CreatedAt = time.Now()
	_, err := db.Exec(`INSERT INTO lecturers (id, name, employee_id, employment_type, max_units, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		lecturer.ID, lecturer.Name, lecturer.EmployeeID, lecturer.EmploymentType,
		lecturer.MaxUnits, lecturer.Phone, lecturer.Email, lecturer.CreatedAt)
	return err
}

func GetUnits(db *sql.DB) ([]models.Unit, error) {
	rows, err := db.Query(`SELECT id, name, code, department_id, year_level, semester, requires_lab, lecturer_id, created_at
		FROM units ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make([]models.Unit, 0)
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Code, &u.DepartmentID, &u.YearLevel,
			&u.Semester, &u.RequiresLab, &u.LecturerID, &u.CreatedAt); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func CreateUnit(db *sql.DB, unit *models.Unit) error {
	unit.ID = uuid.New().String()
	unit.CreatedAt = time.Now()
	_, err := db.Exec(`INSERT INTO units (id, name, code, department_id, year_level, semester, requires_lab, lecturer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		unit.ID, unit.Name, unit.Code, unit.DepartmentID, unit.YearLevel,
		unit.Semester, unit.RequiresLab, unit.LecturerID, unit.CreatedAt)
	return err
}

func GetRooms(db *sql.DB) ([]models.Room, error) {
	rows, err := db.Query(`SELECT id, name, capacity, room_type, created_at FROM rooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		var r models.Room
		if err := rows.Scan(&r.ID, &r.Name, &r.Capacity, &r.RoomType, &r.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

func CreateRoom(db *sql.DB, room *models.Room) error {
	room.ID = uuid.New().String()
	room.CreatedAt = time.Now()
	_, err := db.Exec(`INSERT INTO rooms (id, name, capacity, room_type, created_at) VALUES ($1, $2, $3, $4, $5)`,
		room.ID, room.Name, room.Capacity, room.RoomType, room.CreatedAt)
	return err
}

func GetStudentGroups(db *sql.DB) ([]models.StudentGroup, error) {
	rows, err := db.Query(`SELECT id, department_id, year_level, group_size, created_at
		FROM student_groups ORDER BY department_id, year_level`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]models.StudentGroup, 0)
	for rows.Next() {
		var g models.StudentGroup
		if err := rows.Scan(&g.ID, &g.DepartmentID, &g.YearLevel, &g.GroupSize, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func CreateStudentGroup(db *sql.DB, group *models.StudentGroup) error {
	group.ID = uuid.New().String()
	group.CreatedAt = time.Now()
	_, err := db.Exec(`INSERT INTO student_groups (id, department_id, year_level, group_size, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		group.ID, group.DepartmentID, group.YearLevel, group.GroupSize, group.CreatedAt)
	return err
}
