package vector

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store for development and testing. It ranks by
// brute-force cosine similarity and honors the same contract as PgStore,
// including email uniqueness and the score/id ordering.
type MemoryStore struct {
	mu      sync.RWMutex
	cfg     Config
	nextID  int64
	authors map[int64]Author
	emails  map[string]int64
}

func NewMemoryStore(cfg Config) *MemoryStore {
	if cfg.Dimension <= 0 {
		cfg.Dimension = DefaultConfig().Dimension
	}
	return &MemoryStore{
		cfg:     cfg,
		nextID:  1,
		authors: make(map[int64]Author),
		emails:  make(map[string]int64),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, a NewAuthor) (*Author, error) {
	if len(a.Embedding) != s.cfg.Dimension {
		return nil, fmt.Errorf("%w: got %d, store configured for %d",
			ErrDimensionMismatch, len(a.Embedding), s.cfg.Dimension)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[a.Email]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, a.Email)
	}

	embedding := make([]float32, len(a.Embedding))
	copy(embedding, a.Embedding)

	author := Author{
		ID:        s.nextID,
		Name:      a.Name,
		Email:     a.Email,
		Bio:       a.Bio,
		Expertise: a.Expertise,
		Embedding: embedding,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++

	s.authors[author.ID] = author
	s.emails[author.Email] = author.ID

	return &author, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	author, ok := s.authors[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return &author, nil
}

func (s *MemoryStore) ListAll(ctx context.Context, limit int) ([]Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make([]Author, 0, len(s.authors))
	for _, a := range s.authors {
		authors = append(authors, a)
	}

	sort.Slice(authors, func(i, j int) bool {
		return authors[i].ID < authors[j].ID
	})

	if limit > 0 && len(authors) > limit {
		authors = authors[:limit]
	}

	return authors, nil
}

func (s *MemoryStore) QueryBySimilarity(ctx context.Context, embedding []float32, topK int, threshold float64) ([]SimilarityResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]SimilarityResult, 0, len(s.authors))
	for _, a := range s.authors {
		if len(a.Embedding) == 0 {
			continue
		}
		score := CosineSimilarity(embedding, a.Embedding)
		if score > threshold {
			results = append(results, SimilarityResult{
				ID:              a.ID,
				Name:            a.Name,
				Email:           a.Email,
				Bio:             a.Bio,
				Expertise:       a.Expertise,
				SimilarityScore: score,
			})
		}
	}

	// Mesma ordenação do PgStore: score desc, empate por id asc.
	sort.Slice(results, func(i, j int) bool {
		if results[i].SimilarityScore != results[j].SimilarityScore {
			return results[i].SimilarityScore > results[j].SimilarityScore
		}
		return results[i].ID < results[j].ID
	})

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}

	return results, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.authors), nil
}

func (s *MemoryStore) Close() error {
	return nil
}
