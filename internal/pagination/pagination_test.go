package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		size        int
		number      int
		wantNumber  int
		wantPages   int
		wantOffset  int
		hasNext     bool
		hasPrevious bool
	}{
		{"first page", 20, 9, 1, 1, 3, 0, true, false},
		{"middle page", 20, 9, 2, 2, 3, 9, true, true},
		{"last page", 20, 9, 3, 3, 3, 18, false, true},
		{"beyond last clamps to last", 20, 9, 99, 3, 3, 18, false, true},
		{"zero clamps to first", 20, 9, 0, 1, 3, 0, true, false},
		{"negative clamps to first", 20, 9, -4, 1, 3, 0, true, false},
		{"empty collection has one page", 0, 9, 5, 1, 1, 0, false, false},
		{"exact multiple", 18, 9, 2, 2, 2, 9, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.size, tt.number)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantOffset, p.Offset)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrevious, p.HasPrevious)
		})
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1, ParseNumber(""))
	assert.Equal(t, 1, ParseNumber("abc"))
	assert.Equal(t, 4, ParseNumber(" 4 "))
	assert.Equal(t, -2, ParseNumber("-2"))
}

func TestSlice_BeyondLastReturnsLastPage(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}

	window, p := Slice(items, 9, 10)
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, []int{18, 19}, window)

	window, _ = Slice([]int{}, 9, 2)
	assert.Empty(t, window)
}

func TestPageNavigation(t *testing.T) {
	p := Paginate(30, 10, 2)
	assert.Equal(t, 3, p.NextNumber())
	assert.Equal(t, 1, p.PreviousNumber())
	assert.Equal(t, []int{1, 2, 3}, p.Numbers())
}
