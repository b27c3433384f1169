package gateway

import (
	"fmt"
	"net/url"

	"student-coin/internal/domain/dto"
)

// PageRequest carries the paging and sorting query parameters the backend
// understands. The zero value asks for the first page with the backend's
// default size.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

func (p PageRequest) query() string {
	values := url.Values{}
	values.Set("page", fmt.Sprint(p.Page))
	if p.Size > 0 {
		values.Set("size", fmt.Sprint(p.Size))
	}
	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}
	if p.Direction != "" {
		values.Set("direction", p.Direction)
	}

	return "?" + values.Encode()
}

func (p PageRequest) size() int {
	if p.Size <= 0 {
		return 10
	}
	return p.Size
}

// paginate slices one in-memory list the way the backend pages its results.
// The demo ledger applies no sorting.
func paginate[T any](items []T, page PageRequest) dto.PageResponse[T] {
	p, size := page.Page, page.size()
	if p < 0 {
		p = 0
	}

	n := len(items)
	start := p * size
	if start > n {
		start = n
	}
	end := start + size
	if end > n {
		end = n
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return dto.PageResponse[T]{
		Items:      out,
		Pagination: dto.NewPagination(p, size, int64(n)),
	}
}
