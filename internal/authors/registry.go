// Package authors exposes the write and read surface over author records,
// generating the embedding before persistence so no record ever exists in
// storage without its vector.
package authors

import (
	"context"
	"fmt"

	"github.com/PauloHFS/biblio/internal/rag"
	"github.com/PauloHFS/biblio/internal/search"
	"github.com/PauloHFS/biblio/internal/vector"
)

const DefaultSummaryMaxTokens = 256

type Registry struct {
	embedder      search.Embedder
	store         vector.Store
	generator     rag.Generator
	summaryTokens int
}

func NewRegistry(embedder search.Embedder, store vector.Store, generator rag.Generator) *Registry {
	return &Registry{
		embedder:      embedder,
		store:         store,
		generator:     generator,
		summaryTokens: DefaultSummaryMaxTokens,
	}
}

// CreateInput holds the caller-supplied fields of a new author.
type CreateInput struct {
	Name      string
	Email     string
	Bio       string
	Expertise string
}

// embeddingSource builds the deterministic text the embedding is computed
// from. The format is load-bearing: seeded and API-created records must embed
// the same text for the same fields.
func embeddingSource(in CreateInput) string {
	return fmt.Sprintf("%s. %s Expertise: %s", in.Name, in.Bio, in.Expertise)
}

// Create embeds the profile and inserts the record. The two steps are not
// atomic across retries: if the insert fails the caller re-issues the whole
// create. No partial record is left behind since the insert is the only
// persistence step.
func (r *Registry) Create(ctx context.Context, in CreateInput) (*vector.Author, error) {
	embedding, err := r.embedder.Embed(ctx, embeddingSource(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", search.ErrEmbeddingUnavailable, err)
	}

	author, err := r.store.Insert(ctx, vector.NewAuthor{
		Name:      in.Name,
		Email:     in.Email,
		Bio:       in.Bio,
		Expertise: in.Expertise,
		Embedding: embedding,
	})
	if err != nil {
		return nil, err
	}

	return author, nil
}

func (r *Registry) GetByID(ctx context.Context, id int64) (*vector.Author, error) {
	return r.store.GetByID(ctx, id)
}

func (r *Registry) ListAll(ctx context.Context, limit int) ([]vector.Author, error) {
	return r.store.ListAll(ctx, limit)
}

// Summarize fetches the record and asks the generation model for a short
// profile summary.
func (r *Registry) Summarize(ctx context.Context, id int64) (string, error) {
	author, err := r.store.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Analise o seguinte perfil de autor e crie um resumo conciso:

Nome: %s
Biografia: %s
Expertise: %s

Forneça um resumo de 2-3 frases destacando as principais características e contribuições deste autor.`,
		author.Name, author.Bio, author.Expertise)

	summary, err := r.generator.Generate(ctx, prompt, r.summaryTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", rag.ErrGenerationFailed, err)
	}

	return summary, nil
}
