package dto

import (
	"time"

	"portfolio_backend/internal/models"
)

// ExperienceRequest - создание/замена записи опыта (job или skill).
// Поля другого вида игнорируются.
type ExperienceRequest struct {
	Kind        string `json:"kind" validate:"required,is-experience-kind"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=255"`

	Company   string `json:"company" validate:"max=200"`
	Location  string `json:"location" validate:"max=200"`
	StartDate *Date  `json:"start_date"`
	EndDate   *Date  `json:"end_date"`
	Ongoing   bool   `json:"ongoing"`

	Proficiency string `json:"proficiency" validate:"omitempty,is-proficiency"`
	Category    string `json:"category" validate:"max=100"`

	Visible *bool `json:"visible"`
	Order   int   `json:"order"`
}

// ExperienceListQuery - фильтры списка в админке
type ExperienceListQuery struct {
	Kind        string `form:"kind" validate:"omitempty,is-experience-kind"`
	Visible     *bool  `form:"visible"`
	Proficiency string `form:"proficiency" validate:"omitempty,is-proficiency"`
	Ongoing     *bool  `form:"ongoing"`
	Category    string `form:"category"`
	Search      string `form:"q"`
	Page        int    `form:"page"`
}

type ExperienceResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Label       string    `json:"label"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartDate   *Date     `json:"start_date,omitempty"`
	EndDate     *Date     `json:"end_date,omitempty"`
	Ongoing     bool      `json:"ongoing"`
	Proficiency string    `json:"proficiency,omitempty"`
	Category    string    `json:"category,omitempty"`
	Summary     string    `json:"summary"`
	Visible     bool      `json:"visible"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewExperienceResponse(e *models.Experience) *ExperienceResponse {
	return &ExperienceResponse{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Label:       e.String(),
		Title:       e.Title,
		Description: e.Description,
		Icon:        e.Icon,
		Company:     e.Company,
		Location:    e.Location,
		StartDate:   NewDate(e.StartDate),
		EndDate:     NewDate(e.EndDate),
		Ongoing:     e.Ongoing,
		Proficiency: string(e.Proficiency),
		Category:    e.Category,
		Summary:     e.CompanyOrCategory() + " / " + e.ProficiencyOrDates(),
		Visible:     e.Visible,
		Order:       e.Order,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
