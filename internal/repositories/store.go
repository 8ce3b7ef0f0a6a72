package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// recordStore - общие CRUD-операции над одной таблицей.
// Как и остальные репозитории, не хранит *gorm.DB: соединение или транзакция
// передается в каждый вызов.
type recordStore[T any] struct {
	notFound error
}

func (s recordStore[T]) create(db *gorm.DB, rec *T) error {
	return db.Create(rec).Error
}

func (s recordStore[T]) findByID(db *gorm.DB, id string) (*T, error) {
	var rec T
	if err := db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}
		return nil, err
	}
	return &rec, nil
}

// update перезаписывает все поля записи, кроме id и created_at.
// Select("*") нужен, чтобы нулевые значения (visible=false, order=0) тоже сохранялись.
func (s recordStore[T]) update(db *gorm.DB, id string, rec *T) error {
	result := db.Model(rec).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.notFound
	}
	return nil
}

// updateFields - частичное обновление по карте колонка -> значение
func (s recordStore[T]) updateFields(db *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	result := db.Model(new(T)).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.notFound
	}
	return nil
}

func (s recordStore[T]) delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.notFound
	}
	return nil
}

// bulkUpdate выставляет одно поле у набора id одним UPDATE ... WHERE id IN (...).
// Атомарность - та, что дает сама БД для одного запроса.
func (s recordStore[T]) bulkUpdate(db *gorm.DB, ids []string, column string, value any) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Model(new(T)).Where("id IN ?", ids).Update(column, value)
	return result.RowsAffected, result.Error
}
