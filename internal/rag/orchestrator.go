// Package rag answers free-text questions grounded in authors retrieved by
// similarity search (retrieval-augmented generation).
package rag

import (
	"context"
	"errors"
	"fmt"

	"github.com/PauloHFS/biblio/internal/vector"
)

var (
	// ErrNoGroundingContext: nenhum autor acima do threshold. O modelo nunca
	// é chamado sem contexto, senão a resposta vira invenção.
	ErrNoGroundingContext = errors.New("no grounding context found")
	ErrGenerationFailed   = errors.New("text generation failed")
)

const (
	// DefaultGroundingThreshold is intentionally looser than what a
	// display-facing search would use: generation can synthesize across
	// weakly-relevant context, a results page should not show it.
	DefaultGroundingThreshold = 0.3
	DefaultAnswerMaxTokens    = 512
)

// Searcher retrieves ranked authors for a text query.
type Searcher interface {
	SearchByText(ctx context.Context, queryText string, topK int, threshold float64) ([]vector.SimilarityResult, error)
}

// Generator produces text from a prompt within a token budget.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Answer carries the generated text plus the exact grounding context used,
// in retrieval order, so callers can audit or cite it.
type Answer struct {
	Question       string                    `json:"question"`
	Answer         string                    `json:"answer"`
	ContextAuthors []vector.SimilarityResult `json:"context_authors"`
}

type Orchestrator struct {
	searcher  Searcher
	generator Generator
	threshold float64
	maxTokens int
}

type Option func(*Orchestrator)

func WithGroundingThreshold(t float64) Option {
	return func(o *Orchestrator) {
		if t >= 0 && t <= 1 {
			o.threshold = t
		}
	}
}

func WithAnswerMaxTokens(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxTokens = n
		}
	}
}

func NewOrchestrator(searcher Searcher, generator Generator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		searcher:  searcher,
		generator: generator,
		threshold: DefaultGroundingThreshold,
		maxTokens: DefaultAnswerMaxTokens,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AnswerQuestion runs the strict retrieve-then-generate sequence: the
// generation step never starts before grounding context is obtained, because
// the prompt is built from it.
func (o *Orchestrator) AnswerQuestion(ctx context.Context, question string, topK int) (*Answer, error) {
	contextAuthors, err := o.searcher.SearchByText(ctx, question, topK, o.threshold)
	if err != nil {
		return nil, err
	}

	if len(contextAuthors) == 0 {
		return nil, fmt.Errorf("%w: question %q", ErrNoGroundingContext, question)
	}

	prompt := buildAnswerPrompt(question, contextAuthors)

	answer, err := o.generator.Generate(ctx, prompt, o.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return &Answer{
		Question:       question,
		Answer:         answer,
		ContextAuthors: contextAuthors,
	}, nil
}
