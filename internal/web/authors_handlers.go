package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/PauloHFS/biblio/internal/authors"
	"github.com/PauloHFS/biblio/internal/logging"
	"github.com/PauloHFS/biblio/internal/metrics"
	"github.com/PauloHFS/biblio/internal/rag"
	"github.com/PauloHFS/biblio/internal/search"
	"github.com/PauloHFS/biblio/internal/validator"
	"github.com/PauloHFS/biblio/internal/vector"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
	defaultTopK      = 5
)

type AuthorsDeps struct {
	Registry     *authors.Registry
	Engine       *search.Engine
	Orchestrator *rag.Orchestrator
}

func RegisterAuthorRoutes(mux *http.ServeMux, deps AuthorsDeps) {
	mux.HandleFunc("GET "+Authors, Handle(deps.handleListAuthors))
	mux.HandleFunc("POST "+Authors, Handle(deps.handleCreateAuthor))
	mux.HandleFunc("GET "+AuthorByID, Handle(deps.handleGetAuthor))
	mux.HandleFunc("GET "+AuthorSummary, Handle(deps.handleAuthorSummary))
	mux.HandleFunc("POST "+AuthorSearch, Handle(deps.handleSearch))
	mux.HandleFunc("POST "+AuthorAsk, Handle(deps.handleAsk))
}

type createAuthorRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Bio       string `json:"bio" validate:"required"`
	Expertise string `json:"expertise" validate:"required"`
}

type searchRequest struct {
	Query               string  `json:"query" validate:"required"`
	TopK                int     `json:"top_k" validate:"omitempty,min=1,max=20"`
	SimilarityThreshold float64 `json:"similarity_threshold" validate:"gte=0,lte=1"`
}

type searchResponse struct {
	Query   string                    `json:"query"`
	Results []vector.SimilarityResult `json:"results"`
	Count   int                       `json:"count"`
}

type askRequest struct {
	Question string `json:"question" validate:"required"`
	TopK     int    `json:"top_k" validate:"omitempty,min=1,max=10"`
}

type summaryResponse struct {
	Author  *vector.Author `json:"author"`
	Summary string         `json:"summary"`
}

func (d AuthorsDeps) handleListAuthors(w http.ResponseWriter, r *http.Request) error {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit deve ser um inteiro positivo")
			return nil
		}
		limit = min(n, maxListLimit)
	}

	list, err := d.Registry.ListAll(r.Context(), limit)
	if err != nil {
		return err
	}
	if list == nil {
		list = []vector.Author{}
	}

	respondJSON(w, http.StatusOK, list)
	return nil
}

func (d AuthorsDeps) handleCreateAuthor(w http.ResponseWriter, r *http.Request) error {
	var req createAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return nil
	}

	if result := validator.Check(req); !result.Valid {
		respondError(w, http.StatusBadRequest, result.Message())
		return nil
	}

	logging.AddToEvent(r.Context(), slog.String("operation", "create_author"))

	author, err := d.Registry.Create(r.Context(), authors.CreateInput{
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		Expertise: req.Expertise,
	})
	if err != nil {
		return err
	}

	metrics.AuthorsCreatedTotal.Inc()
	respondJSON(w, http.StatusCreated, author)
	return nil
}

func (d AuthorsDeps) handleGetAuthor(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id inválido")
		return nil
	}

	author, err := d.Registry.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	respondJSON(w, http.StatusOK, author)
	return nil
}

func (d AuthorsDeps) handleAuthorSummary(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id inválido")
		return nil
	}

	author, err := d.Registry.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	summary, err := d.Registry.Summarize(r.Context(), id)
	if err != nil {
		return err
	}

	respondJSON(w, http.StatusOK, summaryResponse{Author: author, Summary: summary})
	return nil
}

func (d AuthorsDeps) handleSearch(w http.ResponseWriter, r *http.Request) error {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return nil
	}

	if result := validator.Check(req); !result.Valid {
		respondError(w, http.StatusBadRequest, result.Message())
		return nil
	}

	if req.TopK == 0 {
		req.TopK = defaultTopK
	}

	logging.AddToEvent(r.Context(),
		slog.String("operation", "similarity_search"),
		slog.Int("top_k", req.TopK),
	)

	results, err := d.Engine.SearchByText(r.Context(), req.Query, req.TopK, req.SimilarityThreshold)
	if err != nil {
		return err
	}
	if results == nil {
		results = []vector.SimilarityResult{}
	}

	metrics.SimilaritySearchResults.WithLabelValues("search").Observe(float64(len(results)))

	respondJSON(w, http.StatusOK, searchResponse{
		Query:   req.Query,
		Results: results,
		Count:   len(results),
	})
	return nil
}

func (d AuthorsDeps) handleAsk(w http.ResponseWriter, r *http.Request) error {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return nil
	}

	if result := validator.Check(req); !result.Valid {
		respondError(w, http.StatusBadRequest, result.Message())
		return nil
	}

	if req.TopK == 0 {
		req.TopK = defaultTopK
	}

	logging.AddToEvent(r.Context(),
		slog.String("operation", "ask"),
		slog.Int("top_k", req.TopK),
	)

	answer, err := d.Orchestrator.AnswerQuestion(r.Context(), req.Question, req.TopK)
	if err != nil {
		metrics.RagAnswersTotal.WithLabelValues(ragStatus(err)).Inc()
		return err
	}

	metrics.RagAnswersTotal.WithLabelValues("ok").Inc()
	metrics.SimilaritySearchResults.WithLabelValues("ask").Observe(float64(len(answer.ContextAuthors)))

	respondJSON(w, http.StatusOK, answer)
	return nil
}

func ragStatus(err error) string {
	if errors.Is(err, rag.ErrNoGroundingContext) {
		return "no_context"
	}
	return "error"
}

func parseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
