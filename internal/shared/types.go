package shared

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PagedResult is one page of a filtered, ordered collection.
// TotalCount counts the whole filtered set, not just Items.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// Paging holds the page size bounds applied by NormalizePaging.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPaging returns the standard 10/100 bounds.
func DefaultPaging() Paging {
	return Paging{DefaultSize: DefaultPageSize, MaxSize: MaxPageSize}
}

// NormalizePaging maps raw caller input to a valid 1-based page and size.
// page <= 0 becomes 1, pageSize <= 0 becomes the default and anything
// above the max is clamped.
func (p Paging) NormalizePaging(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = p.DefaultSize
	}
	if pageSize > p.MaxSize {
		pageSize = p.MaxSize
	}
	return page, pageSize
}

// Paginate returns the window of items for page/pageSize.
// A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	// Compare in pages so a huge page number cannot overflow the offset.
	if pages := (len(items) + pageSize - 1) / pageSize; page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
