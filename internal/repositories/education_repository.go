package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEducationNotFound = errors.New("education not found")

type EducationFilter struct {
	DegreeLevel models.DegreeLevel
	Ongoing     *bool
	Visible     *bool
	Institution string
	Search      string
}

type EducationRepository interface {
	Create(db *gorm.DB, edu *models.Education) error
	FindByID(db *gorm.DB, id string) (*models.Education, error)
	Update(db *gorm.DB, edu *models.Education) error
	UpdateFields(db *gorm.DB, id string, fields map[string]any) error
	Delete(db *gorm.DB, id string) error

	List(visibleOnly bool) ListQuery[models.Education]
	Filtered(filter EducationFilter) ListQuery[models.Education]

	BulkSetVisible(db *gorm.DB, ids []string, visible bool) (int64, error)
}

type EducationRepositoryImpl struct {
	store recordStore[models.Education]
}

func NewEducationRepository() EducationRepository {
	return &EducationRepositoryImpl{
		store: recordStore[models.Education]{notFound: ErrEducationNotFound},
	}
}

func (r *EducationRepositoryImpl) Create(db *gorm.DB, edu *models.Education) error {
	return r.store.create(db, edu)
}

func (r *EducationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Education, error) {
	return r.store.findByID(db, id)
}

func (r *EducationRepositoryImpl) Update(db *gorm.DB, edu *models.Education) error {
	return r.store.update(db, edu.ID, edu)
}

func (r *EducationRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]any) error {
	return r.store.updateFields(db, id, fields)
}

func (r *EducationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return r.store.delete(db, id)
}

func (r *EducationRepositoryImpl) List(visibleOnly bool) ListQuery[models.Education] {
	return NewListQuery[models.Education](EducationOrdering...).WhenVisible(visibleOnly)
}

func (r *EducationRepositoryImpl) Filtered(f EducationFilter) ListQuery[models.Education] {
	q := NewListQuery[models.Education](EducationOrdering...)
	if f.DegreeLevel != "" {
		q = q.Where("degree_level = ?", f.DegreeLevel)
	}
	if f.Ongoing != nil {
		q = q.Where("ongoing = ?", *f.Ongoing)
	}
	if f.Visible != nil {
		q = q.Where("visible = ?", *f.Visible)
	}
	if f.Institution != "" {
		q = q.Where("institution = ?", f.Institution)
	}
	return q.Search(f.Search, "title", "institution", "location", "summary")
}

func (r *EducationRepositoryImpl) BulkSetVisible(db *gorm.DB, ids []string, visible bool) (int64, error) {
	return r.store.bulkUpdate(db, ids, "visible", visible)
}
