package usecase

// Page is a raw paginated slice of store records. View enrichment and
// response shaping happen outside the core.
type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

func emptyPage[T any](page, perPage int) *Page[T] {
	return &Page[T]{Page: page, PerPage: perPage}
}
