package usecase

import "fmt"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest asks for one 1-based page of a listing.
type PageRequest struct {
	Page int
	Size int
}

// Page is one slice of a listing plus the totals needed to render pager links.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func (p Page[T]) HasPrev() bool {
	return p.Page > 1
}

func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p Page[T]) PrevPage() int {
	return p.Page - 1
}

func (p Page[T]) NextPage() int {
	return p.Page + 1
}

// Offset is the index of the first item on the page, for row numbering. Pages past the
// end report the total.
func (p Page[T]) Offset() int {
	if p.Page > p.TotalPages {
		return p.TotalItems
	}
	return (p.Page - 1) * p.Size
}

func (r PageRequest) Validate() error {
	if r.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if r.Size < 1 || r.Size > MaxPageSize {
		return fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidInput, MaxPageSize)
	}
	return nil
}

// Paginate slices items. A page past the end is empty rather than an error.
func Paginate[T any](items []T, req PageRequest) (Page[T], error) {
	if err := req.Validate(); err != nil {
		return Page[T]{}, err
	}

	total := len(items)
	out := Page[T]{
		Items:      []T{},
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: (total + req.Size - 1) / req.Size,
	}
	if req.Page > out.TotalPages {
		return out, nil
	}
	start := (req.Page - 1) * req.Size
	end := min(start+req.Size, total)
	out.Items = items[start:end]
	return out, nil
}
