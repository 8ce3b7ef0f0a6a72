package repositories

import (
	"slices"
	"strings"

	"portfolio_backend/internal/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderBy - один ключ сортировки
type OrderBy struct {
	Column string
	Desc   bool
}

func Asc(column string) OrderBy  { return OrderBy{Column: column} }
func Desc(column string) OrderBy { return OrderBy{Column: column, Desc: true} }

// Стандартные сортировки сущностей: первичный ключ display_order, затем вторичный.
// id всегда добавляется последним, чтобы порядок был детерминированным.
var (
	JobOrdering        = []OrderBy{Asc("display_order"), Desc("start_date")}
	SkillOrdering      = []OrderBy{Asc("display_order"), Asc("title")}
	ExperienceOrdering = []OrderBy{Asc("display_order"), Desc("start_date")}
	EducationOrdering  = []OrderBy{Asc("display_order"), Desc("start_date")}
	ProjectOrdering    = []OrderBy{Desc("display_order"), Desc("created_at")}
	ServiceOrdering    = []OrderBy{Asc("display_order"), Asc("title")}
	ContactOrdering    = []OrderBy{Desc("created_at")}
)

type condition struct {
	query string
	args  []any
}

// ListQuery - ленивое описание выборки list(type, visible_only, order_by).
// Ничего не выполняется до Find/Count/Window/Page, запрос можно запускать повторно.
// Все методы-модификаторы возвращают копию.
type ListQuery[T any] struct {
	conditions []condition
	order      []OrderBy
}

func NewListQuery[T any](order ...OrderBy) ListQuery[T] {
	return ListQuery[T]{order: slices.Clone(order)}
}

// Where добавляет условие (AND)
func (q ListQuery[T]) Where(query string, args ...any) ListQuery[T] {
	q.conditions = append(slices.Clip(q.conditions), condition{query: query, args: args})
	return q
}

// VisibleOnly оставляет только записи с visible = true
func (q ListQuery[T]) VisibleOnly() ListQuery[T] {
	return q.Where("visible = ?", true)
}

// WhenVisible - VisibleOnly, если visibleOnly == true
func (q ListQuery[T]) WhenVisible(visibleOnly bool) ListQuery[T] {
	if visibleOnly {
		return q.VisibleOnly()
	}
	return q
}

// Search - регистронезависимый поиск подстроки по нескольким колонкам (OR)
func (q ListQuery[T]) Search(term string, columns ...string) ListQuery[T] {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}

	like := "%" + strings.ToLower(term) + "%"
	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, "LOWER("+col+") LIKE ?")
		args = append(args, like)
	}
	return q.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// OrderedBy заменяет сортировку
func (q ListQuery[T]) OrderedBy(order ...OrderBy) ListQuery[T] {
	q.order = slices.Clone(order)
	return q
}

func (q ListQuery[T]) filtered(db *gorm.DB) *gorm.DB {
	tx := db.Model(new(T))
	for _, c := range q.conditions {
		tx = tx.Where(c.query, c.args...)
	}
	return tx
}

func (q ListQuery[T]) ordered(db *gorm.DB) *gorm.DB {
	tx := q.filtered(db)
	for _, o := range q.order {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	return tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}

// Find выполняет запрос целиком. Пустой результат - пустой срез, не ошибка.
func (q ListQuery[T]) Find(db *gorm.DB) ([]T, error) {
	items := []T{}
	if err := q.ordered(db).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (q ListQuery[T]) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := q.filtered(db).Count(&total).Error
	return total, err
}

// Window возвращает limit записей начиная с offset
func (q ListQuery[T]) Window(db *gorm.DB, offset, limit int) ([]T, error) {
	items := []T{}
	if err := q.ordered(db).Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// First - первые n записей в стандартном порядке
func (q ListQuery[T]) First(db *gorm.DB, n int) ([]T, error) {
	return q.Window(db, 0, n)
}

// Page считает total, прижимает номер страницы и загружает окно
func (q ListQuery[T]) Page(db *gorm.DB, size, number int) ([]T, pagination.Page, error) {
	total, err := q.Count(db)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	page := pagination.Paginate(total, size, number)
	if total == 0 {
		return []T{}, page, nil
	}

	items, err := q.Window(db, page.Offset, page.Size)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return items, page, nil
}
