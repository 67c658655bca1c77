// Package search turns free text into ranked author results by composing an
// embedding provider with the vector store.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/PauloHFS/biblio/internal/vector"
)

var (
	ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")
	ErrStoreUnavailable     = errors.New("vector store unavailable")
)

// Embedder converts text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Engine struct {
	embedder Embedder
	store    vector.Store
}

func NewEngine(embedder Embedder, store vector.Store) *Engine {
	return &Engine{embedder: embedder, store: store}
}

// SearchByText embeds the query and runs the ranked similarity query.
// There is no keyword fallback: if the embedding provider fails, the whole
// search fails. Retry policy belongs to the caller, not here.
func (e *Engine) SearchByText(ctx context.Context, queryText string, topK int, threshold float64) ([]vector.SimilarityResult, error) {
	embedding, err := e.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	results, err := e.store.QueryBySimilarity(ctx, embedding, topK, threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return results, nil
}
