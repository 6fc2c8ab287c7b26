package models

type ListOptions struct {
	Page    int
	PerPage int
	Filters map[string]string
}

type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Page is the paginated list envelope returned by the backend.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func (p Page[T]) HasNext() bool {
	return p.Meta.CurrentPage < p.Meta.LastPage
}
