package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PauloHFS/biblio/internal/vector"
)

type stubSearcher struct {
	results []vector.SimilarityResult
	err     error
}

func (s *stubSearcher) SearchByText(ctx context.Context, queryText string, topK int, threshold float64) ([]vector.SimilarityResult, error) {
	return s.results, s.err
}

type spyGenerator struct {
	answer string
	err    error
	calls  int
	prompt string
}

func (g *spyGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	g.calls++
	g.prompt = prompt
	return g.answer, g.err
}

var sampleContext = []vector.SimilarityResult{
	{ID: 2, Name: "George Orwell", Email: "george.orwell@example.com", Bio: "Distopias.", Expertise: "distopia", SimilarityScore: 0.91},
	{ID: 5, Name: "Isaac Asimov", Email: "isaac.asimov@example.com", Bio: "Robótica.", Expertise: "robótica", SimilarityScore: 0.55},
}

func TestAnswerQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("GroundedAnswer", func(t *testing.T) {
		gen := &spyGenerator{answer: "Orwell escreveu 1984."}
		o := NewOrchestrator(&stubSearcher{results: sampleContext}, gen)

		answer, err := o.AnswerQuestion(ctx, "Quem escreveu 1984?", 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if answer.Answer != "Orwell escreveu 1984." {
			t.Errorf("unexpected answer: %s", answer.Answer)
		}
		if answer.Question != "Quem escreveu 1984?" {
			t.Errorf("question not echoed: %s", answer.Question)
		}
	})

	t.Run("ContextPreservesRetrievalOrder", func(t *testing.T) {
		gen := &spyGenerator{answer: "ok"}
		o := NewOrchestrator(&stubSearcher{results: sampleContext}, gen)

		answer, err := o.AnswerQuestion(ctx, "pergunta", 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(answer.ContextAuthors) != 2 {
			t.Fatalf("expected 2 context authors, got %d", len(answer.ContextAuthors))
		}
		if answer.ContextAuthors[0].ID != 2 || answer.ContextAuthors[1].ID != 5 {
			t.Errorf("context order changed: %d, %d", answer.ContextAuthors[0].ID, answer.ContextAuthors[1].ID)
		}
	})

	t.Run("NoGroundingContext", func(t *testing.T) {
		gen := &spyGenerator{answer: "não deveria ser chamado"}
		o := NewOrchestrator(&stubSearcher{results: nil}, gen)

		_, err := o.AnswerQuestion(ctx, "pergunta sem contexto", 5)
		if !errors.Is(err, ErrNoGroundingContext) {
			t.Fatalf("expected ErrNoGroundingContext, got %v", err)
		}
		if gen.calls != 0 {
			t.Errorf("generator must not run without grounding context, ran %d times", gen.calls)
		}
	})

	t.Run("SearchFailurePropagates", func(t *testing.T) {
		searchErr := errors.New("store down")
		o := NewOrchestrator(&stubSearcher{err: searchErr}, &spyGenerator{})

		_, err := o.AnswerQuestion(ctx, "pergunta", 5)
		if !errors.Is(err, searchErr) {
			t.Fatalf("expected search error, got %v", err)
		}
	})

	t.Run("GenerationFailure", func(t *testing.T) {
		gen := &spyGenerator{err: errors.New("throttled")}
		o := NewOrchestrator(&stubSearcher{results: sampleContext}, gen)

		_, err := o.AnswerQuestion(ctx, "pergunta", 5)
		if !errors.Is(err, ErrGenerationFailed) {
			t.Fatalf("expected ErrGenerationFailed, got %v", err)
		}
	})
}

func TestBuildAnswerPrompt(t *testing.T) {
	prompt := buildAnswerPrompt("Quem escreveu 1984?", sampleContext)

	for _, want := range []string{
		"Com base nos seguintes autores encontrados:",
		"Autor: George Orwell",
		"Email: george.orwell@example.com",
		"Expertise: robótica",
		"Responda a seguinte pergunta: Quem escreveu 1984?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// ordem do contexto segue a ordem da busca
	if strings.Index(prompt, "George Orwell") > strings.Index(prompt, "Isaac Asimov") {
		t.Error("context blocks out of retrieval order")
	}
}
