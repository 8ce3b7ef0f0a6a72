package pagination

import (
	"strconv"
	"strings"
)

// Page - окно выборки и метаданные для шаблонов и API
type Page struct {
	Number      int   `json:"page"`
	Size        int   `json:"page_size"`
	TotalItems  int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
	Offset      int   `json:"-"`
}

// Paginate считает окно для total элементов.
// Номер вне диапазона прижимается к ближайшей существующей странице.
// У пустой коллекции одна пустая страница.
func Paginate(total int64, size, number int) Page {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:      number,
		Size:        size,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
		Offset:      (number - 1) * size,
	}
}

// ParseNumber разбирает ?page=; пустое или нечисловое значение дает первую страницу
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return n
}

// Slice применяет пагинацию к уже загруженной последовательности
func Slice[T any](items []T, size, number int) ([]T, Page) {
	p := Paginate(int64(len(items)), size, number)
	end := p.Offset + p.Size
	if end > len(items) {
		end = len(items)
	}
	if p.Offset >= len(items) {
		return []T{}, p
	}
	return items[p.Offset:end], p
}

func (p Page) NextNumber() int {
	if p.HasNext {
		return p.Number + 1
	}
	return p.Number
}

func (p Page) PreviousNumber() int {
	if p.HasPrevious {
		return p.Number - 1
	}
	return p.Number
}

// Numbers - 1..TotalPages для ссылок в шаблоне
func (p Page) Numbers() []int {
	nums := make([]int, p.TotalPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}
