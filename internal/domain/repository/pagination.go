package repository

const (
	// DefaultPageLimit is used when a caller asks for a non-positive page size.
	DefaultPageLimit = 10
	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit = 100
)

// PageRequest selects a 1-based page of a listing.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest normalizes the requested page and limit.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of results plus navigation metadata.
type Page[T any] struct {
	Items       []T  `json:"items"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	PrevPage    *int `json:"prev_page"`
	NextPage    *int `json:"next_page"`
	TotalItems  int  `json:"total_items"`
}

// NewPage builds a Page from the items of req and the total item count.
func NewPage[T any](items []T, req PageRequest, totalItems int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := (totalItems + req.Limit - 1) / req.Limit

	var prevPage, nextPage *int
	if req.Page > 1 {
		p := req.Page - 1
		prevPage = &p
	}
	if req.Page < totalPages {
		p := req.Page + 1
		nextPage = &p
	}

	return &Page[T]{
		Items:       items,
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		PrevPage:    prevPage,
		NextPage:    nextPage,
		TotalItems:  totalItems,
	}
}
