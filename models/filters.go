package models

// FilterMeta describes the filter state a list response was computed for.
type FilterMeta struct {
	Screen    string         `json:"screen" example:"orders"`
	Effective map[string]any `json:"effective"`
	Active    bool           `json:"active"`
	Href      string         `json:"href" example:"/api/v1/admin/orders?status=%5B%22pending%22%5D"`
}

// PageRequest is the pagination part of a list request. It never takes
// part in filter state.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p PageRequest) Offset() int { return (p.Page - 1) * p.Limit }

// NewPagination computes the response meta for total rows.
func NewPagination(p PageRequest, total int64) *Pagination {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return &Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      int(total),
		TotalPages: totalPages,
	}
}
