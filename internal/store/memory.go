package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/kaplat/book-server/internal/models"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

// MemoryStore keeps books in a map guarded by a RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	books map[int]models.Book
	ids   sequence
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{books: make(map[int]models.Book)}
}

func (s *MemoryStore) Insert(_ context.Context, book models.Book) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book = book.Clone()
	book.ID = s.ids.Next()
	s.books[book.ID] = book
	return book.ID, nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return nil, srvErrors.NewBookNotFoundError(id)
	}
	b := book.Clone()
	return &b, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, srvErrors.NewBookNotFoundError(id)
	}
	delete(s.books, id)
	return &book, nil
}

func (s *MemoryStore) UpdatePrice(_ context.Context, id int, price int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return 0, srvErrors.NewBookNotFoundError(id)
	}
	old := book.Price
	book.Price = price
	s.books[id] = book
	return old, nil
}

// All returns a copy of every live book, by ascending id.
func (s *MemoryStore) All(_ context.Context) ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]models.Book, 0, len(s.books))
	for _, id := range slices.Sorted(maps.Keys(s.books)) {
		books = append(books, s.books[id].Clone())
	}
	return books, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books), nil
}
