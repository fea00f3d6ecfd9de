// Package pagination 把有序结果切分为固定大小的页。
//
// 页码来自不可信的查询参数：缺省或非整数时取第 1 页，"last" 或越界时取最后一页，
// 永远不返回错误。
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// PerPage 列表页默认每页条数
	PerPage = 10
	// Last 表示最后一页的页码参数
	Last = "last"
)

// Page 一页数据及渲染翻页控件所需的元信息
type Page[T any] struct {
	Items              []T   `json:"items"`
	Number             int   `json:"number"`
	PerPage            int   `json:"per_page"`
	Count              int64 `json:"count"`
	NumPages           int   `json:"num_pages"`
	HasNext            bool  `json:"has_next"`
	HasPrevious        bool  `json:"has_previous"`
	NextPageNumber     int   `json:"next_page_number,omitempty"`
	PreviousPageNumber int   `json:"previous_page_number,omitempty"`
}

// NewPage 根据总数和原始页码计算页元信息，Items 由调用方按 Offset/PerPage 填充。
func NewPage[T any](count int64, raw string, perPage int) *Page[T] {
	if perPage < 1 {
		perPage = PerPage
	}
	if count < 0 {
		count = 0
	}
	numPages := int((count + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		// 空结果也有一个空的第 1 页
		numPages = 1
	}

	number := numPages
	if norm := Normalize(raw); norm != Last {
		// Normalize 已保证是 int 范围内的正整数
		n, _ := strconv.Atoi(norm)
		number = min(n, numPages)
	}

	p := &Page[T]{
		Items:       []T{},
		Number:      number,
		PerPage:     perPage,
		Count:       count,
		NumPages:    numPages,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}
	if p.HasNext {
		p.NextPageNumber = number + 1
	}
	if p.HasPrevious {
		p.PreviousPageNumber = number - 1
	}
	return p
}

// Normalize 把原始页码规范化为 "1".."N" 或 Last。
// 缺省、非整数或小于 1 时为 "1"；"last" 和超出 int 范围的正数为 Last。
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == Last {
		return Last
	}
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return Last
	}
	if err != nil || n < 1 {
		return "1"
	}
	return strconv.Itoa(n)
}

// Offset 当前页第一条记录的偏移量
func (p *Page[T]) Offset() int { return (p.Number - 1) * p.PerPage }

// Len 当前页的条数
func (p *Page[T]) Len() int { return len(p.Items) }

// PageRange 返回 1..NumPages，供模板渲染页码
func (p *Page[T]) PageRange() []int {
	out := make([]int, p.NumPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
