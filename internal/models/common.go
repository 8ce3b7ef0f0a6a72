package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - общие поля всех таблиц.
// ID генерируется в приложении (uuid), а не в БД, чтобы схема работала
// одинаково на postgres, mysql и sqlite.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"<-:create;not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Listed - поля публичной выдачи: флаг видимости и порядок.
// Колонка называется display_order, потому что ORDER зарезервирован в SQL.
// У Visible нет gorm default: иначе false при создании заменялся бы на default.
type Listed struct {
	Visible bool `gorm:"not null;index" json:"visible"`
	Order   int  `gorm:"column:display_order;not null;default:0;index" json:"order"`
}

// FieldErrors - ошибки валидации модели: поле -> сообщение
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "invalid fields"
}

// All возвращает все модели для AutoMigrate
func All() []any {
	return []any{
		&Experience{},
		&Education{},
		&Project{},
		&ServiceEntry{},
		&ContactMessage{},
	}
}
