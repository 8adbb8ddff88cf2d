package repository

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/noah-isme/teacher-eval-api/internal/models"
)

// StaticDirectory serves the class and teacher directory from a compiled-in
// table. It answers the same reads as SQLDirectory and never fails.
type StaticDirectory struct {
	classes  []string
	teachers map[string]models.Teacher
	byClass  map[string][]string
}

var staticTeachers = []models.Teacher{
	{ID: "aziza-karimova", Name: "Aziza Karimova", Subject: "Mathematics"},
	{ID: "bobur-aliyev", Name: "Bobur Aliyev", Subject: "Physics"},
	{ID: "dilnoza-rahimova", Name: "Dilnoza Rahimova", Subject: "History"},
	{ID: "elena-petrova", Name: "Elena Petrova", Subject: "Russian Language"},
	{ID: "farrux-yusupov", Name: "Farrux Yusupov", Subject: "Informatics"},
	{ID: "gulnora-saidova", Name: "Gulnora Saidova", Subject: "Uzbek Literature"},
	{ID: "jasur-tursunov", Name: "Jasur Tursunov", Subject: "Physical Education"},
	{ID: "kamola-ismoilova", Name: "Kamola Ismoilova", Subject: "English"},
	{ID: "malika-nazarova", Name: "Malika Nazarova", Subject: "Biology"},
	{ID: "nodir-xolmatov", Name: "Nodir Xolmatov", Subject: "Chemistry"},
	{ID: "olga-sidorova", Name: "Olga Sidorova", Subject: "Geography"},
	{ID: "sardor-qodirov", Name: "Sardor Qodirov", Subject: "Algebra"},
}

// Teachers are assigned by grade band; every class in a band shares them.
var staticBands = []struct {
	classes  []string
	teachers []string
}{
	{
		classes:  []string{"5A", "6A", "6B"},
		teachers: []string{"aziza-karimova", "gulnora-saidova", "jasur-tursunov", "kamola-ismoilova", "olga-sidorova"},
	},
	{
		classes:  []string{"7A", "7B", "7V", "7G", "8A", "8B", "8G", "8V"},
		teachers: []string{"aziza-karimova", "bobur-aliyev", "dilnoza-rahimova", "elena-petrova", "kamola-ismoilova", "malika-nazarova"},
	},
	{
		classes:  []string{"9A", "9B", "9V", "9G", "9D"},
		teachers: []string{"bobur-aliyev", "dilnoza-rahimova", "farrux-yusupov", "malika-nazarova", "nodir-xolmatov", "sardor-qodirov"},
	},
	{
		classes:  []string{"10A", "10B", "10V", "10G", "10D", "11A", "11B"},
		teachers: []string{"bobur-aliyev", "elena-petrova", "farrux-yusupov", "nodir-xolmatov", "sardor-qodirov"},
	},
}

// NewStaticDirectory builds the directory from the compiled-in table.
func NewStaticDirectory() *StaticDirectory {
	d := &StaticDirectory{
		teachers: make(map[string]models.Teacher, len(staticTeachers)),
		byClass:  make(map[string][]string),
	}
	for _, t := range staticTeachers {
		d.teachers[t.ID] = t
	}
	for _, band := range staticBands {
		for _, className := range band.classes {
			d.classes = append(d.classes, className)
			d.byClass[className] = band.teachers
		}
	}
	sort.Strings(d.classes)
	return d
}

// ListTeachers returns every teacher ordered by name.
func (d *StaticDirectory) ListTeachers(context.Context) ([]models.Teacher, error) {
	out := make([]models.Teacher, 0, len(d.teachers))
	for _, t := range d.teachers {
		out = append(out, t)
	}
	sortByName(out)
	return out, nil
}

// FindTeacher returns sql.ErrNoRows for unknown ids, like the SQL directory.
func (d *StaticDirectory) FindTeacher(_ context.Context, id string) (*models.Teacher, error) {
	t, ok := d.teachers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

// ListClassNames returns a copy of the class list.
func (d *StaticDirectory) ListClassNames(context.Context) ([]string, error) {
	out := make([]string, len(d.classes))
	copy(out, d.classes)
	return out, nil
}

// ListClassTeachers returns the teachers of className; unknown classes yield an empty list.
func (d *StaticDirectory) ListClassTeachers(_ context.Context, className string) ([]models.Teacher, error) {
	return d.resolve(d.byClass[className]), nil
}

// ListAssignments returns the full class -> teachers map.
func (d *StaticDirectory) ListAssignments(context.Context) (models.TeachersByClass, error) {
	out := make(models.TeachersByClass, len(d.byClass))
	for className, ids := range d.byClass {
		out[className] = d.resolve(ids)
	}
	return out, nil
}

func (d *StaticDirectory) resolve(ids []string) []models.Teacher {
	out := make([]models.Teacher, 0, len(ids))
	for _, id := range ids {
		if t, ok := d.teachers[id]; ok {
			out = append(out, t)
		}
	}
	sortByName(out)
	return out
}

func sortByName(teachers []models.Teacher) {
	sort.Slice(teachers, func(i, j int) bool {
		a, b := strings.ToLower(teachers[i].Name), strings.ToLower(teachers[j].Name)
		if a != b {
			return a < b
		}
		return teachers[i].ID < teachers[j].ID
	})
}
