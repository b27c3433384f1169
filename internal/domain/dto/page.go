package dto

// PaginationMetadata mirrors the backend's page envelope field for field.
type PaginationMetadata struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	PageSize    int   `json:"pageSize"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

type PageResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationMetadata `json:"pagination"`
}

// NewPagination fills the metadata for a page of n total items.
func NewPagination(page, size int, total int64) PaginationMetadata {
	totalPages := int((total + int64(size) - 1) / int64(size))
	return PaginationMetadata{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PageSize:    size,
		HasNext:     int64(page+1)*int64(size) < total,
		HasPrevious: page > 0,
	}
}
