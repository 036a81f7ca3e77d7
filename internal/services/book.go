package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kaplat/book-server/internal/filter"
	"github.com/kaplat/book-server/internal/models"
	"github.com/kaplat/book-server/internal/store"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
	"github.com/kaplat/book-server/pkg/scheduler"
)

// BookService validates and executes book operations against the store.
// Writes are serialized; reads run concurrently and see a consistent snapshot.
type BookService struct {
	store    *store.Store
	sched    *scheduler.Scheduler
	mu       sync.RWMutex
	mode     models.FilterMode
	observer Observer
}

func NewBookService(st *store.Store, sched *scheduler.Scheduler) *BookService {
	return &BookService{
		store:    st,
		sched:    sched,
		mode:     models.FilterModeLegacy,
		observer: NoopObserver{},
	}
}

func (s *BookService) WithFilterMode(mode models.FilterMode) *BookService {
	s.mode = mode
	return s
}

func (s *BookService) WithObserver(o Observer) *BookService {
	s.observer = o
	return s
}

// Create validates book and stores it. Checks run in order: title
// uniqueness, year range, price; the first failure is returned.
func (s *BookService) Create(ctx context.Context, book models.Book) (int, error) {
	created, err := execute(ctx, s, models.OperationCreate, func(ctx context.Context) (models.Book, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		books, err := s.store.Books().All(ctx)
		if err != nil {
			return models.Book{}, fmt.Errorf("failed to read books: %w", err)
		}
		for _, b := range books {
			if models.SameTitle(b.Title, book.Title) {
				return models.Book{}, srvErrors.NewDuplicateTitleError(book.Title)
			}
		}
		if book.Year < models.MinBookYear || book.Year > models.MaxBookYear {
			return models.Book{}, srvErrors.NewInvalidYearError(book.Year, models.MinBookYear, models.MaxBookYear)
		}
		if book.Price <= 0 {
			return models.Book{}, srvErrors.NewInvalidPriceError()
		}

		id, err := s.store.Books().Insert(ctx, book)
		if err != nil {
			return models.Book{}, fmt.Errorf("failed to insert book: %w", err)
		}
		book = book.Clone()
		book.ID = id
		return book, nil
	})
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (s *BookService) Count(ctx context.Context, f models.BookFilter) (int, error) {
	return execute(ctx, s, models.OperationCount, func(ctx context.Context) (int, error) {
		matching, err := s.filtered(ctx, f)
		if err != nil {
			return 0, err
		}
		return len(matching), nil
	})
}

// List returns the matching books sorted by title.
func (s *BookService) List(ctx context.Context, f models.BookFilter) ([]models.Book, error) {
	return execute(ctx, s, models.OperationList, func(ctx context.Context) ([]models.Book, error) {
		matching, err := s.filtered(ctx, f)
		if err != nil {
			return nil, err
		}
		filter.SortByTitle(matching)
		return matching, nil
	})
}

func (s *BookService) filtered(ctx context.Context, f models.BookFilter) ([]models.Book, error) {
	s.mu.RLock()
	books, err := s.store.Books().All(ctx)
	s.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return filter.Apply(books, f, s.mode)
}

func (s *BookService) Get(ctx context.Context, id int) (*models.Book, error) {
	book, err := execute(ctx, s, models.OperationGet, func(ctx context.Context) (models.Book, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		b, err := s.store.Books().Get(ctx, id)
		if err != nil {
			return models.Book{}, err
		}
		return *b, nil
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdatePrice sets the price of book id and returns the previous price. A
// missing book is reported before an invalid price.
func (s *BookService) UpdatePrice(ctx context.Context, id int, price int) (int, error) {
	change, err := execute(ctx, s, models.OperationUpdatePrice, func(ctx context.Context) (models.PriceChange, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		b, err := s.store.Books().Get(ctx, id)
		if err != nil {
			return models.PriceChange{}, err
		}
		if price <= 0 {
			return models.PriceChange{}, srvErrors.NewInvalidPriceUpdateError(id)
		}

		old, err := s.store.Books().UpdatePrice(ctx, id, price)
		if err != nil {
			return models.PriceChange{}, err
		}
		return models.PriceChange{Book: *b, OldPrice: old, NewPrice: price}, nil
	})
	if err != nil {
		return 0, err
	}
	return change.OldPrice, nil
}

// Delete removes book id and returns the number of books left.
func (s *BookService) Delete(ctx context.Context, id int) (int, error) {
	removal, err := execute(ctx, s, models.OperationDelete, func(ctx context.Context) (models.Removal, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		b, err := s.store.Books().Delete(ctx, id)
		if err != nil {
			return models.Removal{}, err
		}
		remaining, err := s.store.Books().Count(ctx)
		if err != nil {
			return models.Removal{}, fmt.Errorf("failed to count books: %w", err)
		}
		return models.Removal{Book: *b, Remaining: remaining}, nil
	})
	if err != nil {
		return 0, err
	}
	return removal.Remaining, nil
}

// execute runs fn on the scheduler and reports it to the observer.
func execute[T any](ctx context.Context, s *BookService, op models.Operation, fn scheduler.Work[T]) (T, error) {
	s.observer.OperationStarted(ctx, op)
	start := time.Now()

	result, err := scheduler.Run(ctx, s.sched, fn)

	outcome := models.Outcome{Elapsed: time.Since(start), Err: err}
	if err == nil {
		outcome.Result = result
	}
	s.observer.OperationFinished(ctx, op, outcome)

	return result, err
}
