package vector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PgStore is a PostgreSQL-backed Store using the pgvector extension.
// Similarity ranking runs inside the database so the ivfflat index can be
// used instead of pulling every vector into the application.
type PgStore struct {
	db  *sql.DB
	cfg Config
}

func NewPgStore(db *sql.DB, cfg Config) *PgStore {
	if cfg.Table == "" {
		cfg.Table = DefaultConfig().Table
	}
	if cfg.Dimension <= 0 {
		cfg.Dimension = DefaultConfig().Dimension
	}
	return &PgStore{db: db, cfg: cfg}
}

func (s *PgStore) Config() Config {
	return s.cfg
}

func (s *PgStore) Insert(ctx context.Context, a NewAuthor) (*Author, error) {
	if len(a.Embedding) != s.cfg.Dimension {
		return nil, fmt.Errorf("%w: got %d, store configured for %d",
			ErrDimensionMismatch, len(a.Embedding), s.cfg.Dimension)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, bio, expertise, embedding)
		VALUES ($1, $2, $3, $4, $5::vector)
		RETURNING id, created_at
	`, s.cfg.Table)

	author := Author{
		Name:      a.Name,
		Email:     a.Email,
		Bio:       a.Bio,
		Expertise: a.Expertise,
		Embedding: a.Embedding,
	}

	err := s.db.QueryRowContext(ctx, query,
		a.Name, a.Email, a.Bio, a.Expertise, formatVector(a.Embedding),
	).Scan(&author.ID, &author.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, a.Email)
		}
		return nil, fmt.Errorf("insert author: %w", err)
	}

	return &author, nil
}

func (s *PgStore) GetByID(ctx context.Context, id int64) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, bio, expertise, embedding, created_at
		FROM %s
		WHERE id = $1
	`, s.cfg.Table)

	var a Author
	var embedding sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Bio, &a.Expertise, &embedding, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	if embedding.Valid {
		a.Embedding = parseVector(embedding.String)
	}

	return &a, nil
}

func (s *PgStore) ListAll(ctx context.Context, limit int) ([]Author, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, bio, expertise, created_at
		FROM %s
		ORDER BY id
		LIMIT $1
	`, s.cfg.Table)

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	var authors []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Bio, &a.Expertise, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

// QueryBySimilarity executa a busca vetorial no banco usando cosine distance.
// O score é 1 - distância, então menor distância vem primeiro.
func (s *PgStore) QueryBySimilarity(ctx context.Context, embedding []float32, topK int, threshold float64) ([]SimilarityResult, error) {
	query := fmt.Sprintf(`
		SELECT
			id,
			name,
			email,
			bio,
			expertise,
			1 - (embedding <=> $1::vector) AS similarity_score
		FROM %s
		WHERE embedding IS NOT NULL
			AND 1 - (embedding <=> $1::vector) > $2
		ORDER BY embedding <=> $1::vector, id
		LIMIT $3
	`, s.cfg.Table)

	rows, err := s.db.QueryContext(ctx, query, formatVector(embedding), threshold, topK)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}
	defer rows.Close()

	var results []SimilarityResult
	for rows.Next() {
		var r SimilarityResult
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Bio, &r.Expertise, &r.SimilarityScore); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

func (s *PgStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", s.cfg.Table)).Scan(&count)
	return count, err
}

func (s *PgStore) Close() error {
	return s.db.Close()
}

// formatVector converts a float32 slice to pgvector format: "[0.1,0.2,0.3]"
func formatVector(embedding []float32) string {
	parts := make([]string, len(embedding))
	for i, v := range embedding {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// parseVector converts pgvector format back to a float32 slice.
func parseVector(s string) []float32 {
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]float32, len(parts))
	for i, p := range parts {
		fmt.Sscanf(strings.TrimSpace(p), "%f", &result[i])
	}
	return result
}
