package models

// Page is a whole-snapshot view of one server collection page. A successful
// fetch replaces the previous snapshot entirely; items are never merged in.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}
