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

const projectAdminPageSize = 20

type ProjectService interface {
	List(db *gorm.DB, query *dto.ProjectListQuery) (*dto.ListResponse[models.Project], error)
	Get(db *gorm.DB, id string) (*models.Project, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.ProjectRequest) (*models.Project, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.ProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	SetOrder(db *gorm.DB, id string, order int) error
	Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error)
}

type projectService struct {
	repo    repositories.ProjectRepository
	actions map[string]bulkAction
}

func NewProjectService(repo repositories.ProjectRepository) ProjectService {
	actions := visibilityActions(repo.BulkSetVisible)
	actions["feature"] = bulkAction{
		apply: func(db *gorm.DB, ids []string) (int64, error) {
			return repo.BulkSetFeatured(db, ids, true)
		},
		message: "%d project(s) marked as featured.",
	}
	actions["unfeature"] = bulkAction{
		apply: func(db *gorm.DB, ids []string) (int64, error) {
			return repo.BulkSetFeatured(db, ids, false)
		},
		message: "%d project(s) no longer featured.",
	}
	return &projectService{repo: repo, actions: actions}
}

func (s *projectService) List(db *gorm.DB, q *dto.ProjectListQuery) (*dto.ListResponse[models.Project], error) {
	filter := repositories.ProjectFilter{
		Status:     models.ProjectStatus(q.Status),
		IsFeatured: q.IsFeatured,
		Visible:    q.Visible,
		Search:     q.Search,
	}
	items, page, err := s.repo.Filtered(filter).Page(db, projectAdminPageSize, q.Page)
	if err != nil {
		return nil, handleStoreError(err)
	}
	return &dto.ListResponse[models.Project]{Items: items, Pagination: dto.NewPageMeta(page)}, nil
}

func (s *projectService) Get(db *gorm.DB, id string) (*models.Project, error) {
	p, err := s.repo.FindByID(db, id)
	return p, handleStoreError(err)
}

func (s *projectService) Create(ctx context.Context, db *gorm.DB, req *dto.ProjectRequest) (*models.Project, error) {
	p := buildProject(req)
	if err := s.repo.Create(db, p); err != nil {
		return nil, handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Project created", "id", p.ID, "title", p.Title)
	return p, nil
}

func (s *projectService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.ProjectRequest) (*models.Project, error) {
	existing, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, handleStoreError(err)
	}

	p := buildProject(req)
	p.BaseModel = existing.BaseModel
	if req.Visible == nil {
		p.Visible = existing.Visible
	}
	if err := s.repo.Update(db, p); err != nil {
		return nil, handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Project updated", "id", id)
	return s.Get(db, id)
}

func (s *projectService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		return handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Project deleted", "id", id)
	return nil
}

func (s *projectService) SetOrder(db *gorm.DB, id string, order int) error {
	return handleStoreError(s.repo.UpdateFields(db, id, map[string]any{"display_order": order}))
}

func (s *projectService) Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error) {
	resp, err := runBulk(db, s.actions, req)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Project bulk action", "action", req.Action, "updated", resp.Updated)
	return resp, nil
}

func buildProject(req *dto.ProjectRequest) *models.Project {
	p := &models.Project{
		Listed:      models.Listed{Visible: boolOr(req.Visible, true), Order: req.Order},
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ImagePath:   req.ImagePath,
		DemoURL:     emptyToNil(req.DemoURL),
		RepoURL:     emptyToNil(req.RepoURL),
		TechStack:   strings.TrimSpace(req.TechStack),
		IsFeatured:  req.IsFeatured,
	}
	if req.Status != nil && *req.Status != "" {
		status := models.ProjectStatus(*req.Status)
		p.Status = &status
	}
	return p
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
