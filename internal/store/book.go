package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	sq "github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"

	"github.com/kaplat/book-server/internal/models"
	"github.com/kaplat/book-server/internal/util"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DuckDBStore keeps books in the books table. Ids come from an in-process
// sequence so that they are never reused while the process runs.
type DuckDBStore struct {
	db  QueryInterceptor
	mu  sync.Mutex
	ids sequence
}

func NewBookStore(db QueryInterceptor) *DuckDBStore {
	return &DuckDBStore{db: db}
}

func (s *DuckDBStore) Insert(ctx context.Context, book models.Book) (int, error) {
	genres, err := encodeGenres(book.Genres)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Next()
	query, args, err := sq.Insert(booksTable).
		Columns(bookColumns...).
		Values(id, book.Title, book.Author, book.Year, book.Price, genres).
		ToSql()
	if err != nil {
		return 0, err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *DuckDBStore) Get(ctx context.Context, id int) (*models.Book, error) {
	query, args, err := sq.Select(bookColumns...).
		From(booksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	book, err := scanBook(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewBookNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (s *DuckDBStore) Delete(ctx context.Context, id int) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Delete(booksTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *DuckDBStore) UpdatePrice(ctx context.Context, id int, price int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Update(booksTable).
		Set("price", price).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return 0, err
	}
	return book.Price, nil
}

func (s *DuckDBStore) All(ctx context.Context) ([]models.Book, error) {
	query, args, err := sq.Select(bookColumns...).
		From(booksTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}

func (s *DuckDBStore) Count(ctx context.Context) (int, error) {
	query, args, err := sq.Select("COUNT(*)").From(booksTable).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(row scanner) (*models.Book, error) {
	var (
		book   models.Book
		genres string
	)
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Year, &book.Price, &genres); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(genres), &book.Genres); err != nil {
		return nil, err
	}
	return &book, nil
}

func encodeGenres(genres []string) (string, error) {
	data, err := json.Marshal(util.EmptyIfNil(genres))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
