package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceFilter struct {
	Category string
	Visible  *bool
	Search   string
}

type ServiceRepository interface {
	Create(db *gorm.DB, svc *models.ServiceEntry) error
	FindByID(db *gorm.DB, id string) (*models.ServiceEntry, error)
	Update(db *gorm.DB, svc *models.ServiceEntry) error
	UpdateFields(db *gorm.DB, id string, fields map[string]any) error
	Delete(db *gorm.DB, id string) error

	List(visibleOnly bool) ListQuery[models.ServiceEntry]
	Filtered(filter ServiceFilter) ListQuery[models.ServiceEntry]

	BulkSetVisible(db *gorm.DB, ids []string, visible bool) (int64, error)
}

type ServiceRepositoryImpl struct {
	store recordStore[models.ServiceEntry]
}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{
		store: recordStore[models.ServiceEntry]{notFound: ErrServiceNotFound},
	}
}

func (r *ServiceRepositoryImpl) Create(db *gorm.DB, svc *models.ServiceEntry) error {
	return r.store.create(db, svc)
}

func (r *ServiceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ServiceEntry, error) {
	return r.store.findByID(db, id)
}

func (r *ServiceRepositoryImpl) Update(db *gorm.DB, svc *models.ServiceEntry) error {
	return r.store.update(db, svc.ID, svc)
}

func (r *ServiceRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]any) error {
	return r.store.updateFields(db, id, fields)
}

func (r *ServiceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return r.store.delete(db, id)
}

func (r *ServiceRepositoryImpl) List(visibleOnly bool) ListQuery[models.ServiceEntry] {
	return NewListQuery[models.ServiceEntry](ServiceOrdering...).WhenVisible(visibleOnly)
}

func (r *ServiceRepositoryImpl) Filtered(f ServiceFilter) ListQuery[models.ServiceEntry] {
	q := NewListQuery[models.ServiceEntry](ServiceOrdering...)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Visible != nil {
		q = q.Where("visible = ?", *f.Visible)
	}
	return q.Search(f.Search, "title", "description", "short_description")
}

func (r *ServiceRepositoryImpl) BulkSetVisible(db *gorm.DB, ids []string, visible bool) (int64, error) {
	return r.store.bulkUpdate(db, ids, "visible", visible)
}
