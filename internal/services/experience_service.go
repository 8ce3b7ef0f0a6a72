package services

import (
	"context"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"

	"gorm.io/gorm"
)

const experiencePageSize = 25

type ExperienceService interface {
	List(db *gorm.DB, query *dto.ExperienceListQuery) (*dto.ListResponse[*dto.ExperienceResponse], error)
	Get(db *gorm.DB, id string) (*dto.ExperienceResponse, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	SetOrder(db *gorm.DB, id string, order int) error
	Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error)
}

type experienceService struct {
	repo    repositories.ExperienceRepository
	actions map[string]bulkAction
}

func NewExperienceService(repo repositories.ExperienceRepository) ExperienceService {
	actions := visibilityActions(repo.BulkSetVisible)
	// Смена вида не проверяет обязательные поля нового вида
	actions["convert_to_skill"] = bulkAction{
		apply: func(db *gorm.DB, ids []string) (int64, error) {
			return repo.BulkSetKind(db, ids, models.ExperienceKindSkill)
		},
		message: "%d item(s) converted to Skills.",
	}
	actions["convert_to_job"] = bulkAction{
		apply: func(db *gorm.DB, ids []string) (int64, error) {
			return repo.BulkSetKind(db, ids, models.ExperienceKindJob)
		},
		message: "%d item(s) converted to Job Experience.",
	}

	return &experienceService{repo: repo, actions: actions}
}

func (s *experienceService) List(db *gorm.DB, q *dto.ExperienceListQuery) (*dto.ListResponse[*dto.ExperienceResponse], error) {
	filter := repositories.ExperienceFilter{
		Kind:        models.ExperienceKind(q.Kind),
		Visible:     q.Visible,
		Proficiency: models.Proficiency(q.Proficiency),
		Ongoing:     q.Ongoing,
		Category:    q.Category,
		Search:      q.Search,
	}

	items, page, err := s.repo.Filtered(filter).Page(db, experiencePageSize, q.Page)
	if err != nil {
		return nil, handleStoreError(err)
	}

	resp := &dto.ListResponse[*dto.ExperienceResponse]{
		Items:      make([]*dto.ExperienceResponse, 0, len(items)),
		Pagination: dto.NewPageMeta(page),
	}
	for i := range items {
		resp.Items = append(resp.Items, dto.NewExperienceResponse(&items[i]))
	}
	return resp, nil
}

func (s *experienceService) Get(db *gorm.DB, id string) (*dto.ExperienceResponse, error) {
	exp, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, handleStoreError(err)
	}
	return dto.NewExperienceResponse(exp), nil
}

func (s *experienceService) Create(ctx context.Context, db *gorm.DB, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error) {
	exp, err := buildExperience(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(db, exp); err != nil {
		return nil, handleStoreError(err)
	}

	logger.CtxInfo(ctx, "Experience created", "id", exp.ID, "kind", exp.Kind)
	return dto.NewExperienceResponse(exp), nil
}

func (s *experienceService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error) {
	existing, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, handleStoreError(err)
	}

	exp, err := buildExperience(req)
	if err != nil {
		return nil, err
	}
	exp.BaseModel = existing.BaseModel
	if req.Visible == nil {
		exp.Visible = existing.Visible
	}

	if err := s.repo.Update(db, exp); err != nil {
		return nil, handleStoreError(err)
	}

	logger.CtxInfo(ctx, "Experience updated", "id", exp.ID, "kind", exp.Kind)
	return s.Get(db, id)
}

func (s *experienceService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		return handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Experience deleted", "id", id)
	return nil
}

func (s *experienceService) SetOrder(db *gorm.DB, id string, order int) error {
	return handleStoreError(s.repo.UpdateFields(db, id, map[string]any{"display_order": order}))
}

func (s *experienceService) Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error) {
	resp, err := runBulk(db, s.actions, req)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Experience bulk action", "action", req.Action, "updated", resp.Updated)
	return resp, nil
}

// buildExperience собирает запись через конструктор нужного вида
func buildExperience(req *dto.ExperienceRequest) (*models.Experience, error) {
	var (
		exp *models.Experience
		err error
	)

	switch models.ExperienceKind(req.Kind) {
	case models.ExperienceKindJob:
		job := models.Job{
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			EndDate:     req.EndDate.Ptr(),
			Ongoing:     req.Ongoing,
			Description: req.Description,
			Icon:        req.Icon,
		}
		if start := req.StartDate.Ptr(); start != nil {
			job.StartDate = *start
		}
		exp, err = models.NewJobExperience(job)
	case models.ExperienceKindSkill:
		exp, err = models.NewSkillExperience(models.Skill{
			Title:       req.Title,
			Proficiency: models.Proficiency(req.Proficiency),
			Category:    req.Category,
			Description: req.Description,
			Icon:        req.Icon,
		})
	default:
		err = models.FieldErrors{"kind": "Must be one of: job, skill"}
	}
	if err != nil {
		return nil, modelValidationError(err)
	}

	exp.Visible = boolOr(req.Visible, true)
	exp.Order = req.Order
	return exp, nil
}
