package services

import (
	"context"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const educationPageSize = 25

type EducationService interface {
	List(db *gorm.DB, query *dto.EducationListQuery) (*dto.ListResponse[models.Education], error)
	Get(db *gorm.DB, id string) (*models.Education, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.EducationRequest) (*models.Education, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.EducationRequest) (*models.Education, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	SetOrder(db *gorm.DB, id string, order int) error
	Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error)
}

type educationService struct {
	repo    repositories.EducationRepository
	actions map[string]bulkAction
}

func NewEducationService(repo repositories.EducationRepository) EducationService {
	return &educationService{
		repo:    repo,
		actions: visibilityActions(repo.BulkSetVisible),
	}
}

func (s *educationService) List(db *gorm.DB, q *dto.EducationListQuery) (*dto.ListResponse[models.Education], error) {
	filter := repositories.EducationFilter{
		DegreeLevel: models.DegreeLevel(q.DegreeLevel),
		Ongoing:     q.Ongoing,
		Visible:     q.Visible,
		Institution: q.Institution,
		Search:      q.Search,
	}
	items, page, err := s.repo.Filtered(filter).Page(db, educationPageSize, q.Page)
	if err != nil {
		return nil, handleStoreError(err)
	}
	return &dto.ListResponse[models.Education]{Items: items, Pagination: dto.NewPageMeta(page)}, nil
}

func (s *educationService) Get(db *gorm.DB, id string) (*models.Education, error) {
	edu, err := s.repo.FindByID(db, id)
	return edu, handleStoreError(err)
}

func (s *educationService) Create(ctx context.Context, db *gorm.DB, req *dto.EducationRequest) (*models.Education, error) {
	edu, err := buildEducation(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(db, edu); err != nil {
		return nil, handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Education created", "id", edu.ID)
	return edu, nil
}

func (s *educationService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.EducationRequest) (*models.Education, error) {
	existing, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, handleStoreError(err)
	}

	edu, err := buildEducation(req)
	if err != nil {
		return nil, err
	}
	edu.BaseModel = existing.BaseModel
	if req.Visible == nil {
		edu.Visible = existing.Visible
	}

	if err := s.repo.Update(db, edu); err != nil {
		return nil, handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Education updated", "id", id)
	return s.Get(db, id)
}

func (s *educationService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		return handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Education deleted", "id", id)
	return nil
}

func (s *educationService) SetOrder(db *gorm.DB, id string, order int) error {
	return handleStoreError(s.repo.UpdateFields(db, id, map[string]any{"display_order": order}))
}

func (s *educationService) Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error) {
	resp, err := runBulk(db, s.actions, req)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Education bulk action", "action", req.Action, "updated", resp.Updated)
	return resp, nil
}

func buildEducation(req *dto.EducationRequest) (*models.Education, error) {
	level := models.DegreeLevel(req.DegreeLevel)
	if level == "" {
		level = models.DegreeLevelOther
	}

	edu := &models.Education{
		Listed:      models.Listed{Visible: boolOr(req.Visible, true), Order: req.Order},
		Title:       req.Title,
		Institution: req.Institution,
		Location:    req.Location,
		DegreeLevel: level,
		StartDate:   req.StartDate.Ptr(),
		EndDate:     req.EndDate.Ptr(),
		Ongoing:     req.Ongoing,
		Grade:       req.Grade,
		Summary:     req.Summary,
		Logo:        req.Logo,
	}
	if edu.Ongoing {
		edu.EndDate = nil
	}
	if edu.StartDate != nil && edu.EndDate != nil && edu.EndDate.Before(*edu.StartDate) {
		return nil, apperrors.ValidationError(map[string]string{"end_date": "Must not be before start date"})
	}
	return edu, nil
}
