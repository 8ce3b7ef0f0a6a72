package testutil

import (
	"fmt"
	"testing"
	"time"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

// Date - полночь UTC указанного дня
func Date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// CreateJob создает видимую запись опыта работы
func CreateJob(t *testing.T, db *gorm.DB, title string, order int, start *time.Time) *models.Experience {
	t.Helper()
	exp := &models.Experience{
		Listed:    models.Listed{Visible: true, Order: order},
		Kind:      models.ExperienceKindJob,
		Title:     title,
		Company:   "Company " + title,
		StartDate: start,
	}
	mustCreate(t, db, exp)
	return exp
}

// CreateSkill создает видимый навык
func CreateSkill(t *testing.T, db *gorm.DB, title string, order int) *models.Experience {
	t.Helper()
	exp := &models.Experience{
		Listed:      models.Listed{Visible: true, Order: order},
		Kind:        models.ExperienceKindSkill,
		Title:       title,
		Proficiency: models.ProficiencyAdvanced,
	}
	mustCreate(t, db, exp)
	return exp
}

// CreateProject создает видимый проект с заданным created_at
func CreateProject(t *testing.T, db *gorm.DB, title string, order int, createdAt time.Time) *models.Project {
	t.Helper()
	p := &models.Project{
		BaseModel: models.BaseModel{CreatedAt: createdAt},
		Listed:    models.Listed{Visible: true, Order: order},
		Title:     title,
		TechStack: "Go, Gin",
	}
	mustCreate(t, db, p)
	return p
}

// CreateProjects создает n проектов с убывающим created_at (первый - самый новый)
func CreateProjects(t *testing.T, db *gorm.DB, n int) []*models.Project {
	t.Helper()
	base := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	projects := make([]*models.Project, 0, n)
	for i := 0; i < n; i++ {
		projects = append(projects, CreateProject(t, db, fmt.Sprintf("Project %02d", i+1), 0, base.Add(-time.Duration(i)*time.Hour)))
	}
	return projects
}

func CreateEducation(t *testing.T, db *gorm.DB, title string, order int, start *time.Time) *models.Education {
	t.Helper()
	e := &models.Education{
		Listed:      models.Listed{Visible: true, Order: order},
		Title:       title,
		Institution: "University",
		DegreeLevel: models.DegreeLevelUndergraduate,
		StartDate:   start,
	}
	mustCreate(t, db, e)
	return e
}

func CreateService(t *testing.T, db *gorm.DB, title string, order int) *models.ServiceEntry {
	t.Helper()
	s := &models.ServiceEntry{
		Listed: models.Listed{Visible: true, Order: order},
		Title:  title,
	}
	mustCreate(t, db, s)
	return s
}

func CreateContact(t *testing.T, db *gorm.DB, name string, createdAt time.Time) *models.ContactMessage {
	t.Helper()
	c := &models.ContactMessage{
		BaseModel: models.BaseModel{CreatedAt: createdAt},
		Name:      name,
		Email:     "visitor@example.com",
		Message:   "Hello from " + name,
	}
	mustCreate(t, db, c)
	return c
}

func mustCreate(t *testing.T, db *gorm.DB, rec any) {
	t.Helper()
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("create %T: %v", rec, err)
	}
}
