package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portfolio_backend/internal/pagination"
)

const dateLayout = "2006-01-02"

// Date - дата без времени в JSON ("2021-06-01"). Принимает также RFC3339.
type Date struct {
	time.Time
}

func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date must look like YYYY-MM-DD: %q", s)
	}
	d.Time = t.UTC().Truncate(24 * time.Hour)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// Ptr - *time.Time или nil для пустой даты
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// PageMeta - пагинация в ответах админ API
type PageMeta struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func NewPageMeta(p pagination.Page) PageMeta {
	return PageMeta{
		Page:        p.Number,
		PageSize:    p.Size,
		Total:       p.TotalItems,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}

// ListResponse - страница записей
type ListResponse[T any] struct {
	Items      []T      `json:"items"`
	Pagination PageMeta `json:"pagination"`
}

// BulkActionRequest - массовое действие над выбранными записями
type BulkActionRequest struct {
	Action string   `json:"action" validate:"required"`
	IDs    []string `json:"ids" validate:"required,min=1,dive,required"`
}

// BulkActionResponse - итог массового действия, как уведомление в админке
type BulkActionResponse struct {
	Updated int64  `json:"updated"`
	Message string `json:"message"`
}

// OrderRequest - изменение поля order из списка
type OrderRequest struct {
	Order *int `json:"order" validate:"required"`
}
