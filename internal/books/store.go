// Package books implements the catalog service's list management. Like the
// original service it keeps the catalog in memory; the authors directory is
// the only persistent store in the system.
package books

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("book not found")

type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	AuthorID    int64   `json:"author_id"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type Store struct {
	mu     sync.RWMutex
	nextID int64
	books  map[int64]Book
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		books:  make(map[int64]Book),
	}
}

// NewSeededStore returns a store preloaded with the sample catalog.
func NewSeededStore() *Store {
	s := NewStore()
	seed := []Book{
		{Title: "O Guia do Mochileiro das Galáxias", AuthorID: 1, Description: "A comédia de ficção científica mais engraçada já escrita.", Price: 42.0},
		{Title: "1984", AuthorID: 2, Description: "Um futuro distópico onde o Grande Irmão está sempre observando.", Price: 35.50},
		{Title: "Duna", AuthorID: 3, Description: "Uma épica saga de ficção científica sobre poder, religião e ecologia.", Price: 59.90},
	}
	for _, b := range seed {
		s.Create(b)
	}
	return s
}

func (s *Store) List() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}

func (s *Store) Create(b Book) Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.nextID
	s.nextID++
	s.books[b.ID] = b
	return b
}

func (s *Store) Get(id int64) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (s *Store) Update(id int64, b Book) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return Book{}, ErrNotFound
	}
	b.ID = id
	s.books[id] = b
	return b, nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	return nil
}
