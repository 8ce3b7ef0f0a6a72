package services

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/pagination"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"

	"gorm.io/gorm"
)

// ContentService - публичные выборки для страниц сайта (только visible записи)
type ContentService interface {
	Home(db *gorm.DB) (*dto.HomeContent, error)
	Jobs(db *gorm.DB) ([]models.Experience, error)
	Skills(db *gorm.DB) ([]models.Experience, error)
	Education(db *gorm.DB) ([]models.Education, error)
	Services(db *gorm.DB) ([]models.ServiceEntry, error)

	// ProjectsPage - страница проектов; номер из строки запроса, неверный или вне диапазона прижимается
	ProjectsPage(db *gorm.DB, rawPage string) ([]models.Project, pagination.Page, error)
	Project(db *gorm.DB, id string) (*models.Project, error)

	// TopProjects - первые n проектов в стандартном порядке; is_featured не учитывается
	TopProjects(db *gorm.DB, n int) ([]models.Project, bool, error)
}

type contentService struct {
	experiences     repositories.ExperienceRepository
	education       repositories.EducationRepository
	projects        repositories.ProjectRepository
	services        repositories.ServiceRepository
	projectsPerPage int
	homeProjects    int
}

func NewContentService(
	experiences repositories.ExperienceRepository,
	education repositories.EducationRepository,
	projects repositories.ProjectRepository,
	services repositories.ServiceRepository,
	projectsPerPage, homeProjects int,
) ContentService {
	if projectsPerPage <= 0 {
		projectsPerPage = 9
	}
	if homeProjects <= 0 {
		homeProjects = 3
	}
	return &contentService{
		experiences:     experiences,
		education:       education,
		projects:        projects,
		services:        services,
		projectsPerPage: projectsPerPage,
		homeProjects:    homeProjects,
	}
}

func (s *contentService) Home(db *gorm.DB) (*dto.HomeContent, error) {
	var (
		home dto.HomeContent
		err  error
	)

	if home.Jobs, err = s.Jobs(db); err != nil {
		return nil, err
	}
	if home.Skills, err = s.Skills(db); err != nil {
		return nil, err
	}
	if home.Education, err = s.Education(db); err != nil {
		return nil, err
	}
	if home.Services, err = s.Services(db); err != nil {
		return nil, err
	}
	if home.Projects, home.HasMoreProjects, err = s.TopProjects(db, s.homeProjects); err != nil {
		return nil, err
	}
	return &home, nil
}

func (s *contentService) Jobs(db *gorm.DB) ([]models.Experience, error) {
	items, err := s.experiences.Jobs(true).Find(db)
	return items, handleStoreError(err)
}

func (s *contentService) Skills(db *gorm.DB) ([]models.Experience, error) {
	items, err := s.experiences.Skills(true).Find(db)
	return items, handleStoreError(err)
}

func (s *contentService) Education(db *gorm.DB) ([]models.Education, error) {
	items, err := s.education.List(true).Find(db)
	return items, handleStoreError(err)
}

func (s *contentService) Services(db *gorm.DB) ([]models.ServiceEntry, error) {
	items, err := s.services.List(true).Find(db)
	return items, handleStoreError(err)
}

func (s *contentService) ProjectsPage(db *gorm.DB, rawPage string) ([]models.Project, pagination.Page, error) {
	items, page, err := s.projects.List(true).Page(db, s.projectsPerPage, pagination.ParseNumber(rawPage))
	if err != nil {
		return nil, pagination.Page{}, handleStoreError(err)
	}
	return items, page, nil
}

// Project отдает и скрытые проекты: прямые ссылки на них продолжают работать
func (s *contentService) Project(db *gorm.DB, id string) (*models.Project, error) {
	p, err := s.projects.FindByID(db, id)
	if err != nil {
		return nil, handleStoreError(err)
	}
	return p, nil
}

func (s *contentService) TopProjects(db *gorm.DB, n int) ([]models.Project, bool, error) {
	q := s.projects.List(true)

	items, err := q.First(db, n)
	if err != nil {
		return nil, false, handleStoreError(err)
	}
	total, err := q.Count(db)
	if err != nil {
		return nil, false, handleStoreError(err)
	}
	return items, total > int64(n), nil
}
