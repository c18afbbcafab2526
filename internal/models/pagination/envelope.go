package pagination

// SortMeta echoes the sort applied to a page of results
type SortMeta struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// PageEnvelope wraps one page of content with derived pagination metadata.
// From/To are 1-based global item indices; both are 0 when the page is empty.
type PageEnvelope[T any] struct {
	Content          []T      `json:"content"`
	TotalElements    int64    `json:"totalElements"`
	Page             int      `json:"page"`
	Size             int      `json:"size"`
	From             int64    `json:"from"`
	To               int64    `json:"to"`
	TotalPages       int      `json:"totalPages"`
	NumberOfElements int      `json:"numberOfElements"`
	First            bool     `json:"first"`
	Last             bool     `json:"last"`
	NextPage         *int     `json:"nextPage,omitempty"`
	HasNext          bool     `json:"hasNext"`
	SortMeta         SortMeta `json:"sortMeta"`
}

// NewPageEnvelope computes the envelope for a fetched page. Pure computation:
// out-of-range pages produce an empty-page envelope, never an error.
func NewPageEnvelope[T any](paging BasePaging, total int64, content []T, sort SortMeta) PageEnvelope[T] {
	page := paging.Page
	size := paging.PerPage

	totalPages := int((total + int64(size) - 1) / int64(size))
	first := page <= 1
	last := totalPages == 0 || page >= totalPages

	var from, to int64
	if total > 0 {
		from = int64(page-1)*int64(size) + 1
	}
	to = int64(page) * int64(size)
	if to > total {
		to = total
	}
	if from > to {
		from, to = 0, 0
	}

	hasNext := !last && total > 0
	var nextPage *int
	if hasNext {
		next := page + 1
		nextPage = &next
	}

	return PageEnvelope[T]{
		Content:          content,
		TotalElements:    total,
		Page:             page,
		Size:             size,
		From:             from,
		To:               to,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            first,
		Last:             last,
		NextPage:         nextPage,
		HasNext:          hasNext,
		SortMeta:         sort,
	}
}
