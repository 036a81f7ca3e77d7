package store

import (
	"context"

	"github.com/kaplat/book-server/internal/models"
)

// BookStore owns the id to book mapping and the id sequence.
type BookStore interface {
	Insert(ctx context.Context, book models.Book) (int, error)
	Get(ctx context.Context, id int) (*models.Book, error)
	Delete(ctx context.Context, id int) (*models.Book, error)
	UpdatePrice(ctx context.Context, id int, price int) (int, error)
	All(ctx context.Context) ([]models.Book, error)
	Count(ctx context.Context) (int, error)
}

// Store provides access to all storage repositories.
type Store struct {
	books BookStore
	close func() error
}

func NewStore(books BookStore) *Store {
	return &Store{books: books, close: func() error { return nil }}
}

func (s *Store) Books() BookStore {
	return s.books
}

func (s *Store) Close() error {
	return s.close()
}
