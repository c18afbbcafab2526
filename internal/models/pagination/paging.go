package pagination

import "strings"

// Paging bounds
const (
	DefaultPage      = 1
	DefaultPerPage   = 10
	MaxPerPage       = 200
	DefaultSortField = "createdAt"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// BasePaging is a normalized page request. Construct it with NewBasePaging;
// values are clamped once and never mutated afterwards.
type BasePaging struct {
	Page          int    `json:"page"`
	PerPage       int    `json:"perpage"`
	SortField     string `json:"sortField"`
	SortDirection string `json:"sortDirection"`
	Q             string `json:"q"`
}

// NewBasePaging builds a BasePaging from raw request values, applying defaults
// and clamps. Invalid values degrade to defaults; nothing errors here.
func NewBasePaging(page, perPage int, sortField, sortDirection, q string) BasePaging {
	p := BasePaging{
		Page:          page,
		PerPage:       perPage,
		SortField:     sortField,
		SortDirection: sortDirection,
		Q:             q,
	}
	return p.Normalize()
}

// Normalize returns the clamped copy of p. Normalizing an already-normalized
// paging yields the same value.
func (p BasePaging) Normalize() BasePaging {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if strings.TrimSpace(p.SortField) == "" {
		p.SortField = DefaultSortField
	}
	if strings.EqualFold(p.SortDirection, SortDesc) {
		p.SortDirection = SortDesc
	} else {
		p.SortDirection = SortAsc
	}
	return p
}

// Offset returns the 0-based row offset for the requested page
func (p BasePaging) Offset() int {
	return (p.Page - 1) * p.PerPage
}
