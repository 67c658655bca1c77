package web

import (
	"encoding/json"
	"net/http"

	"github.com/PauloHFS/biblio/internal/books"
	"github.com/PauloHFS/biblio/internal/validator"
)

type BooksDeps struct {
	Store   *books.Store
	Authors *books.AuthorsClient
}

func RegisterBookRoutes(mux *http.ServeMux, deps BooksDeps) {
	mux.HandleFunc("GET "+Books, Handle(deps.handleListBooks))
	mux.HandleFunc("POST "+Books, Handle(deps.handleCreateBook))
	mux.HandleFunc("GET "+BookByID, Handle(deps.handleGetBook))
	mux.HandleFunc("PUT "+BookByID, Handle(deps.handleUpdateBook))
	mux.HandleFunc("DELETE "+BookByID, Handle(deps.handleDeleteBook))
	mux.HandleFunc("GET "+BookAuthor, Handle(deps.handleBookAuthor))
}

type bookRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	AuthorID    int64   `json:"author_id" validate:"required,min=1"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}

func (d BooksDeps) handleListBooks(w http.ResponseWriter, r *http.Request) error {
	respondJSON(w, http.StatusOK, d.Store.List())
	return nil
}

func (d BooksDeps) handleCreateBook(w http.ResponseWriter, r *http.Request) error {
	req, ok := decodeBook(w, r)
	if !ok {
		return nil
	}

	book := d.Store.Create(books.Book{
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		Description: req.Description,
		Price:       req.Price,
	})

	respondJSON(w, http.StatusCreated, book)
	return nil
}

func (d BooksDeps) handleGetBook(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id inválido")
		return nil
	}

	book, err := d.Store.Get(id)
	if err != nil {
		return err
	}

	respondJSON(w, http.StatusOK, book)
	return nil
}

func (d BooksDeps) handleUpdateBook(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id inválido")
		return nil
	}

	req, ok := decodeBook(w, r)
	if !ok {
		return nil
	}

	book, err := d.Store.Update(id, books.Book{
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	respondJSON(w, http.StatusOK, book)
	return nil
}

func (d BooksDeps) handleDeleteBook(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id inválido")
		return nil
	}

	if err := d.Store.Delete(id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// handleBookAuthor busca o livro e consulta o serviço de autores pelo
// author_id do livro.
func (d BooksDeps) handleBookAuthor(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id inválido")
		return nil
	}

	book, err := d.Store.Get(id)
	if err != nil {
		return err
	}

	author, err := d.Authors.GetAuthor(r.Context(), book.AuthorID)
	if err != nil {
		return err
	}

	respondJSON(w, http.StatusOK, author)
	return nil
}

func decodeBook(w http.ResponseWriter, r *http.Request) (bookRequest, bool) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return req, false
	}

	if result := validator.Check(req); !result.Valid {
		respondError(w, http.StatusBadRequest, result.Message())
		return req, false
	}

	return req, true
}
