package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PauloHFS/biblio/internal/books"
	"github.com/PauloHFS/biblio/internal/logging"
	"github.com/PauloHFS/biblio/internal/rag"
	"github.com/PauloHFS/biblio/internal/search"
	"github.com/PauloHFS/biblio/internal/vector"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// translateError mapeia a taxonomia de erros do núcleo para respostas HTTP
// estruturadas. As mensagens são fixas de propósito: detalhe de provedor não
// vaza para o cliente.
func translateError(err error) (int, string) {
	switch {
	case errors.Is(err, vector.ErrNotFound):
		return http.StatusNotFound, "author not found"
	case errors.Is(err, books.ErrNotFound):
		return http.StatusNotFound, "book not found"
	case errors.Is(err, books.ErrAuthorNotFound):
		return http.StatusNotFound, "author not found"
	case errors.Is(err, rag.ErrNoGroundingContext):
		// Distinto de erro de servidor: não há resposta possível, nada quebrou.
		return http.StatusNotFound, "nenhum autor relevante encontrado para responder a pergunta"
	case errors.Is(err, vector.ErrDuplicateEmail):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, search.ErrEmbeddingUnavailable):
		return http.StatusBadGateway, "embedding service unavailable"
	case errors.Is(err, rag.ErrGenerationFailed):
		return http.StatusBadGateway, "text generation failed"
	case errors.Is(err, search.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "search temporarily unavailable"
	case errors.Is(err, vector.ErrDimensionMismatch):
		return http.StatusInternalServerError, "embedding dimension misconfigured"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// AppHandler é um tipo customizado que permite retornar erros dos handlers
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// Handle envolve nosso AppHandler para conformidade com http.HandlerFunc
func Handle(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		status, message := translateError(err)

		logging.AddToEvent(r.Context(), slog.String("error", err.Error()))
		if status >= 500 {
			logging.Get().Error("request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
		}

		respondError(w, status, message)
	}
}
