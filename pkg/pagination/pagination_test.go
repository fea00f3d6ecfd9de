package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fill 按页元信息从 1..n 中取出当前页
func fill(n int, raw string) *Page[int] {
	p := NewPage[int](int64(n), raw, PerPage)
	for i := p.Offset() + 1; i <= n && i <= p.Offset()+p.PerPage; i++ {
		p.Items = append(p.Items, i)
	}
	return p
}

func TestThirteenItems(t *testing.T) {
	first := fill(13, "")
	assert.Equal(t, 10, first.Len())
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.NumPages)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)
	assert.Equal(t, 2, first.NextPageNumber)

	second := fill(13, "2")
	assert.Equal(t, []int{11, 12, 13}, second.Items)
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrevious)
	assert.Equal(t, 1, second.PreviousPageNumber)
}

func TestPageNumberClamping(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"absent", "", 1},
		{"garbage", "abc", 1},
		{"float", "2.5", 1},
		{"zero", "0", 1},
		{"negative", "-3", 1},
		{"huge negative", "-99999999999999999999", 1},
		{"padded", " 2 ", 2},
		{"exact last", "3", 3},
		{"beyond last", "99", 3},
		{"last keyword", "last", 3},
		{"overflow", "99999999999999999999", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPage[int](25, tt.raw, PerPage).Number)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1", Normalize(""))
	assert.Equal(t, "1", Normalize("x"))
	assert.Equal(t, "4", Normalize(" 04 "))
	assert.Equal(t, Last, Normalize("last"))
	assert.Equal(t, Last, Normalize("18446744073709551616"))
	assert.Equal(t, "1", Normalize("-18446744073709551616"))
}

func TestEmptyCollectionHasOnePage(t *testing.T) {
	for _, raw := range []string{"5", "last"} {
		p := NewPage[string](0, raw, PerPage)
		assert.Equal(t, 1, p.Number)
		assert.Equal(t, 1, p.NumPages)
		assert.Equal(t, 0, p.Len())
		assert.NotNil(t, p.Items)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrevious)
	}
}

func TestNewPageOffset(t *testing.T) {
	p := NewPage[int](41, "5", 10)
	assert.Equal(t, 5, p.Number)
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.PageRange())

	p = NewPage[int](5, "1", 0)
	assert.Equal(t, PerPage, p.PerPage)
}
