package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact message not found")

type ContactFilter struct {
	IsRead  *bool
	Replied *bool
	Search  string
}

type ContactRepository interface {
	Create(db *gorm.DB, msg *models.ContactMessage) error
	FindByID(db *gorm.DB, id string) (*models.ContactMessage, error)
	Delete(db *gorm.DB, id string) error

	Filtered(filter ContactFilter) ListQuery[models.ContactMessage]
	CountUnread(db *gorm.DB) (int64, error)

	BulkSetRead(db *gorm.DB, ids []string, read bool) (int64, error)
	BulkSetReplied(db *gorm.DB, ids []string, replied bool) (int64, error)
}

type ContactRepositoryImpl struct {
	store recordStore[models.ContactMessage]
}

func NewContactRepository() ContactRepository {
	return &ContactRepositoryImpl{
		store: recordStore[models.ContactMessage]{notFound: ErrContactNotFound},
	}
}

func (r *ContactRepositoryImpl) Create(db *gorm.DB, msg *models.ContactMessage) error {
	return r.store.create(db, msg)
}

func (r *ContactRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ContactMessage, error) {
	return r.store.findByID(db, id)
}

func (r *ContactRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return r.store.delete(db, id)
}

func (r *ContactRepositoryImpl) Filtered(f ContactFilter) ListQuery[models.ContactMessage] {
	q := NewListQuery[models.ContactMessage](ContactOrdering...)
	if f.IsRead != nil {
		q = q.Where("is_read = ?", *f.IsRead)
	}
	if f.Replied != nil {
		q = q.Where("replied = ?", *f.Replied)
	}
	return q.Search(f.Search, "name", "email", "phone", "message")
}

func (r *ContactRepositoryImpl) CountUnread(db *gorm.DB) (int64, error) {
	unread := false
	return r.Filtered(ContactFilter{IsRead: &unread}).Count(db)
}

func (r *ContactRepositoryImpl) BulkSetRead(db *gorm.DB, ids []string, read bool) (int64, error) {
	return r.store.bulkUpdate(db, ids, "is_read", read)
}

func (r *ContactRepositoryImpl) BulkSetReplied(db *gorm.DB, ids []string, replied bool) (int64, error) {
	return r.store.bulkUpdate(db, ids, "replied", replied)
}
