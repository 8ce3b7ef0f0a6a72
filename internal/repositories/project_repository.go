package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectFilter struct {
	Status     models.ProjectStatus
	IsFeatured *bool
	Visible    *bool
	Search     string
}

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	Update(db *gorm.DB, project *models.Project) error
	UpdateFields(db *gorm.DB, id string, fields map[string]any) error
	Delete(db *gorm.DB, id string) error

	// List - проекты в порядке (order DESC, created_at DESC), флаг is_featured не учитывается
	List(visibleOnly bool) ListQuery[models.Project]
	Filtered(filter ProjectFilter) ListQuery[models.Project]

	BulkSetVisible(db *gorm.DB, ids []string, visible bool) (int64, error)
	BulkSetFeatured(db *gorm.DB, ids []string, featured bool) (int64, error)
}

type ProjectRepositoryImpl struct {
	store recordStore[models.Project]
}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{
		store: recordStore[models.Project]{notFound: ErrProjectNotFound},
	}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return r.store.create(db, project)
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	return r.store.findByID(db, id)
}

func (r *ProjectRepositoryImpl) Update(db *gorm.DB, project *models.Project) error {
	return r.store.update(db, project.ID, project)
}

func (r *ProjectRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]any) error {
	return r.store.updateFields(db, id, fields)
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return r.store.delete(db, id)
}

func (r *ProjectRepositoryImpl) List(visibleOnly bool) ListQuery[models.Project] {
	return NewListQuery[models.Project](ProjectOrdering...).WhenVisible(visibleOnly)
}

func (r *ProjectRepositoryImpl) Filtered(f ProjectFilter) ListQuery[models.Project] {
	q := NewListQuery[models.Project](ProjectOrdering...)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.IsFeatured != nil {
		q = q.Where("is_featured = ?", *f.IsFeatured)
	}
	if f.Visible != nil {
		q = q.Where("visible = ?", *f.Visible)
	}
	return q.Search(f.Search, "title", "description", "tech_stack")
}

func (r *ProjectRepositoryImpl) BulkSetVisible(db *gorm.DB, ids []string, visible bool) (int64, error) {
	return r.store.bulkUpdate(db, ids, "visible", visible)
}

func (r *ProjectRepositoryImpl) BulkSetFeatured(db *gorm.DB, ids []string, featured bool) (int64, error) {
	return r.store.bulkUpdate(db, ids, "is_featured", featured)
}
