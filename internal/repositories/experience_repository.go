package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExperienceNotFound = errors.New("experience not found")

// ExperienceFilter - фильтры списка в админке
type ExperienceFilter struct {
	Kind        models.ExperienceKind
	Visible     *bool
	Proficiency models.Proficiency
	Ongoing     *bool
	Category    string
	Search      string
}

type ExperienceRepository interface {
	Create(db *gorm.DB, exp *models.Experience) error
	FindByID(db *gorm.DB, id string) (*models.Experience, error)
	Update(db *gorm.DB, exp *models.Experience) error
	UpdateFields(db *gorm.DB, id string, fields map[string]any) error
	Delete(db *gorm.DB, id string) error

	// Ленивые выборки
	Jobs(visibleOnly bool) ListQuery[models.Experience]
	Skills(visibleOnly bool) ListQuery[models.Experience]
	Filtered(filter ExperienceFilter) ListQuery[models.Experience]

	// Массовые действия
	BulkSetVisible(db *gorm.DB, ids []string, visible bool) (int64, error)
	BulkSetKind(db *gorm.DB, ids []string, kind models.ExperienceKind) (int64, error)
}

type ExperienceRepositoryImpl struct {
	store recordStore[models.Experience]
}

func NewExperienceRepository() ExperienceRepository {
	return &ExperienceRepositoryImpl{
		store: recordStore[models.Experience]{notFound: ErrExperienceNotFound},
	}
}

func (r *ExperienceRepositoryImpl) Create(db *gorm.DB, exp *models.Experience) error {
	return r.store.create(db, exp)
}

func (r *ExperienceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Experience, error) {
	return r.store.findByID(db, id)
}

func (r *ExperienceRepositoryImpl) Update(db *gorm.DB, exp *models.Experience) error {
	return r.store.update(db, exp.ID, exp)
}

func (r *ExperienceRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]any) error {
	return r.store.updateFields(db, id, fields)
}

func (r *ExperienceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return r.store.delete(db, id)
}

func (r *ExperienceRepositoryImpl) Jobs(visibleOnly bool) ListQuery[models.Experience] {
	return NewListQuery[models.Experience](JobOrdering...).
		Where("experience_type = ?", models.ExperienceKindJob).
		WhenVisible(visibleOnly)
}

func (r *ExperienceRepositoryImpl) Skills(visibleOnly bool) ListQuery[models.Experience] {
	return NewListQuery[models.Experience](SkillOrdering...).
		Where("experience_type = ?", models.ExperienceKindSkill).
		WhenVisible(visibleOnly)
}

func (r *ExperienceRepositoryImpl) Filtered(f ExperienceFilter) ListQuery[models.Experience] {
	q := NewListQuery[models.Experience](ExperienceOrdering...)
	if f.Kind == models.ExperienceKindSkill {
		q = q.OrderedBy(SkillOrdering...)
	}

	if f.Kind != "" {
		q = q.Where("experience_type = ?", f.Kind)
	}
	if f.Visible != nil {
		q = q.Where("visible = ?", *f.Visible)
	}
	if f.Proficiency != "" {
		q = q.Where("proficiency = ?", f.Proficiency)
	}
	if f.Ongoing != nil {
		q = q.Where("ongoing = ?", *f.Ongoing)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	return q.Search(f.Search, "title", "company", "description", "category")
}

func (r *ExperienceRepositoryImpl) BulkSetVisible(db *gorm.DB, ids []string, visible bool) (int64, error) {
	return r.store.bulkUpdate(db, ids, "visible", visible)
}

// BulkSetKind меняет вид записей без проверки обязательных полей нового вида
func (r *ExperienceRepositoryImpl) BulkSetKind(db *gorm.DB, ids []string, kind models.ExperienceKind) (int64, error) {
	return r.store.bulkUpdate(db, ids, "experience_type", kind)
}
