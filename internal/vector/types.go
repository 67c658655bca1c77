package vector

import (
	"context"
	"time"
)

type Config struct {
	Dimension int
	Table     string
}

func DefaultConfig() Config {
	return Config{
		Dimension: 1024,
		Table:     "authors",
	}
}

// Author é o registro persistido com embedding anexado.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Expertise string    `json:"expertise"`
	Embedding []float32 `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuthor carries the fields of a record before the store assigns an id.
type NewAuthor struct {
	Name      string
	Email     string
	Bio       string
	Expertise string
	Embedding []float32
}

// SimilarityResult is an Author projection plus a score relative to one query.
// It is derived per query and never persisted.
type SimilarityResult struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Bio             string  `json:"bio"`
	Expertise       string  `json:"expertise"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Store provides author persistence and cosine-similarity ranked queries.
type Store interface {
	// Insert persists a new author. Fails with ErrDuplicateEmail when the
	// email already exists and ErrDimensionMismatch when the embedding length
	// violates the configured dimension.
	Insert(ctx context.Context, a NewAuthor) (*Author, error)

	// GetByID returns the author or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// ListAll returns up to limit authors ordered by ascending id.
	ListAll(ctx context.Context, limit int) ([]Author, error)

	// QueryBySimilarity returns at most topK results with
	// similarity_score > threshold, ordered by descending score.
	// Ties break by ascending id. Records without embedding are skipped.
	QueryBySimilarity(ctx context.Context, embedding []float32, topK int, threshold float64) ([]SimilarityResult, error)

	// Count returns the number of stored authors.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
