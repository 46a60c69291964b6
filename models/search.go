package models

// SearchResult is one page of search results
type SearchResult[T any] struct {
	Results    []T `json:"results"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type (
	PhotoSearch      = SearchResult[Photo]
	CollectionSearch = SearchResult[BasicCollection]
	UserSearch       = SearchResult[MediumUser]
)
