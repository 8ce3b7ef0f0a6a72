package dto

import "portfolio_backend/internal/models"

type EducationRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Institution string `json:"institution" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=140"`
	DegreeLevel string `json:"degree_level" validate:"omitempty,is-degree-level"`
	StartDate   *Date  `json:"start_date"`
	EndDate     *Date  `json:"end_date"`
	Ongoing     bool   `json:"ongoing"`
	Grade       string `json:"grade" validate:"max=80"`
	Summary     string `json:"summary"`
	Logo        string `json:"logo" validate:"max=255"`
	Visible     *bool  `json:"visible"`
	Order       int    `json:"order"`
}

type EducationListQuery struct {
	DegreeLevel string `form:"degree_level" validate:"omitempty,is-degree-level"`
	Ongoing     *bool  `form:"ongoing"`
	Visible     *bool  `form:"visible"`
	Institution string `form:"institution"`
	Search      string `form:"q"`
	Page        int    `form:"page"`
}

type ProjectRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	ImagePath   string  `json:"image_path" validate:"max=500"`
	DemoURL     *string `json:"demo_url" validate:"omitempty,url,max=500"`
	RepoURL     *string `json:"repo_url" validate:"omitempty,url,max=500"`
	Status      *string `json:"status" validate:"omitempty,is-project-status"`
	TechStack   string  `json:"tech_stack" validate:"max=500"`
	IsFeatured  bool    `json:"is_featured"`
	Visible     *bool   `json:"visible"`
	Order       int     `json:"order"`
}

type ProjectListQuery struct {
	Status     string `form:"status" validate:"omitempty,is-project-status"`
	IsFeatured *bool  `form:"is_featured"`
	Visible    *bool  `form:"visible"`
	Search     string `form:"q"`
	Page       int    `form:"page"`
}

type ServiceRequest struct {
	Title            string `json:"title" validate:"required,max=160"`
	ShortDescription string `json:"short_description" validate:"max=255"`
	Description      string `json:"description"`
	Details          string `json:"details"`
	Icon             string `json:"icon" validate:"max=80"`
	Image            string `json:"image" validate:"max=255"`
	Link             string `json:"link" validate:"omitempty,url,max=500"`
	Category         string `json:"category" validate:"max=80"`
	Duration         string `json:"duration" validate:"max=80"`
	Visible          *bool  `json:"visible"`
	Order            int    `json:"order"`
}

type ServiceListQuery struct {
	Category string `form:"category"`
	Visible  *bool  `form:"visible"`
	Search   string `form:"q"`
	Page     int    `form:"page"`
}

// HomeContent - все секции главной страницы
type HomeContent struct {
	Jobs            []models.Experience
	Skills          []models.Experience
	Education       []models.Education
	Services        []models.ServiceEntry
	Projects        []models.Project
	HasMoreProjects bool
}
