package web

const (
	Health  = "/health"
	Metrics = "/metrics"

	Authors       = "/authors"
	AuthorByID    = "/authors/{id}"
	AuthorSummary = "/authors/{id}/summary"
	AuthorSearch  = "/authors/search"
	AuthorAsk     = "/authors/ask"

	Books      = "/books"
	BookByID   = "/books/{id}"
	BookAuthor = "/books/{id}/author"
)
