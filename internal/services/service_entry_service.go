package services

import (
	"context"
	"strings"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"

	"gorm.io/gorm"
)

const servicePageSize = 25

// ServiceEntryService - раздел "Services" сайта (админка)
type ServiceEntryService interface {
	List(db *gorm.DB, query *dto.ServiceListQuery) (*dto.ListResponse[models.ServiceEntry], error)
	Get(db *gorm.DB, id string) (*models.ServiceEntry, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.ServiceRequest) (*models.ServiceEntry, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.ServiceRequest) (*models.ServiceEntry, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	SetOrder(db *gorm.DB, id string, order int) error
	Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error)
}

type serviceEntryService struct {
	repo    repositories.ServiceRepository
	actions map[string]bulkAction
}

func NewServiceEntryService(repo repositories.ServiceRepository) ServiceEntryService {
	return &serviceEntryService{
		repo:    repo,
		actions: visibilityActions(repo.BulkSetVisible),
	}
}

func (s *serviceEntryService) List(db *gorm.DB, q *dto.ServiceListQuery) (*dto.ListResponse[models.ServiceEntry], error) {
	filter := repositories.ServiceFilter{
		Category: q.Category,
		Visible:  q.Visible,
		Search:   q.Search,
	}
	items, page, err := s.repo.Filtered(filter).Page(db, servicePageSize, q.Page)
	if err != nil {
		return nil, handleStoreError(err)
	}
	return &dto.ListResponse[models.ServiceEntry]{Items: items, Pagination: dto.NewPageMeta(page)}, nil
}

func (s *serviceEntryService) Get(db *gorm.DB, id string) (*models.ServiceEntry, error) {
	svc, err := s.repo.FindByID(db, id)
	return svc, handleStoreError(err)
}

func (s *serviceEntryService) Create(ctx context.Context, db *gorm.DB, req *dto.ServiceRequest) (*models.ServiceEntry, error) {
	svc := buildServiceEntry(req)
	if err := s.repo.Create(db, svc); err != nil {
		return nil, handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Service created", "id", svc.ID)
	return svc, nil
}

func (s *serviceEntryService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.ServiceRequest) (*models.ServiceEntry, error) {
	existing, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, handleStoreError(err)
	}

	svc := buildServiceEntry(req)
	svc.BaseModel = existing.BaseModel
	if req.Visible == nil {
		svc.Visible = existing.Visible
	}
	if err := s.repo.Update(db, svc); err != nil {
		return nil, handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Service updated", "id", id)
	return s.Get(db, id)
}

func (s *serviceEntryService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		return handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Service deleted", "id", id)
	return nil
}

func (s *serviceEntryService) SetOrder(db *gorm.DB, id string, order int) error {
	return handleStoreError(s.repo.UpdateFields(db, id, map[string]any{"display_order": order}))
}

func (s *serviceEntryService) Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error) {
	resp, err := runBulk(db, s.actions, req)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Service bulk action", "action", req.Action, "updated", resp.Updated)
	return resp, nil
}

func buildServiceEntry(req *dto.ServiceRequest) *models.ServiceEntry {
	return &models.ServiceEntry{
		Listed:           models.Listed{Visible: boolOr(req.Visible, true), Order: req.Order},
		Title:            strings.TrimSpace(req.Title),
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Details:          req.Details,
		Icon:             req.Icon,
		Image:            req.Image,
		Link:             req.Link,
		Category:         req.Category,
		Duration:         req.Duration,
	}
}
