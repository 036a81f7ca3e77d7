package v1

import (
	"github.com/kaplat/book-server/internal/models"
	"github.com/kaplat/book-server/internal/util"
)

// NewBookFromModel converts a models.Book to an API Book.
func NewBookFromModel(b models.Book) Book {
	return Book{
		Id:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Year:   b.Year,
		Price:  b.Price,
		Genres: util.EmptyIfNil(b.Genres),
	}
}

// ToModel converts the request body to a book without an id.
func (n NewBook) ToModel() models.Book {
	return models.Book{
		Title:  n.Title,
		Author: n.Author,
		Year:   n.Year,
		Price:  n.Price,
		Genres: n.Genres,
	}
}

func (p BookQueryParams) ToFilter() models.BookFilter {
	return models.BookFilter{
		Author:          p.Author,
		PriceBiggerThan: p.PriceBiggerThan,
		PriceLessThan:   p.PriceLessThan,
		YearBiggerThan:  p.YearBiggerThan,
		YearLessThan:    p.YearLessThan,
		Genres:          p.Genres,
	}
}

func NewEnvelope[T any](result T) Envelope[T] {
	return Envelope[T]{Result: &result}
}

func NewErrorEnvelope(msg string) Envelope[any] {
	return Envelope[any]{ErrorMessage: msg}
}
