package filter

import (
	"slices"
	"strings"

	"github.com/kaplat/book-server/internal/models"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

// Predicate reports whether a book survives one filter criterion.
type Predicate func(models.Book) bool

// Predicates is a conjunction: a book matches when every predicate holds.
type Predicates []Predicate

func (p Predicates) Match(b models.Book) bool {
	for _, pred := range p {
		if !pred(b) {
			return false
		}
	}
	return true
}

// Compile turns f into predicates. The genre casing is checked before
// anything else so that a malformed filter never reaches the records.
func Compile(f models.BookFilter, mode models.FilterMode) (Predicates, error) {
	var genres []string
	if f.Genres != nil {
		var err error
		if genres, err = ParseGenres(*f.Genres); err != nil {
			return nil, err
		}
	}

	var preds Predicates
	if f.Author != nil {
		preds = append(preds, ByAuthor(*f.Author))
	}
	if f.PriceBiggerThan != nil {
		if mode == models.FilterModeCorrected {
			preds = append(preds, ByPriceAtLeast(*f.PriceBiggerThan))
		} else {
			// price-bigger-than has always been compared against the year.
			preds = append(preds, ByYearAtLeast(*f.PriceBiggerThan))
		}
	}
	if f.PriceLessThan != nil {
		preds = append(preds, ByPriceAtMost(*f.PriceLessThan))
	}
	if f.YearBiggerThan != nil {
		preds = append(preds, ByYearAtLeast(*f.YearBiggerThan))
	}
	if f.YearLessThan != nil {
		preds = append(preds, ByYearAtMost(*f.YearLessThan))
	}
	if f.Genres != nil {
		if mode == models.FilterModeCorrected {
			preds = append(preds, WithAnyGenre(genres...))
		} else {
			preds = append(preds, WithoutGenres(genres...))
		}
	}

	return preds, nil
}

// Apply returns the books of all matching f, in their original order.
func Apply(books []models.Book, f models.BookFilter, mode models.FilterMode) ([]models.Book, error) {
	preds, err := Compile(f, mode)
	if err != nil {
		return nil, err
	}

	matching := make([]models.Book, 0, len(books))
	for _, b := range books {
		if preds.Match(b) {
			matching = append(matching, b)
		}
	}
	return matching, nil
}

// ParseGenres splits a comma separated genre list. The list must already be
// upper case. Trailing empty tokens are dropped.
func ParseGenres(raw string) ([]string, error) {
	if raw != strings.ToUpper(raw) {
		return nil, srvErrors.NewMalformedGenresError(raw)
	}

	tokens := strings.Split(raw, ",")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens, nil
}

func ByAuthor(author string) Predicate {
	return func(b models.Book) bool {
		return strings.EqualFold(b.Author, author)
	}
}

func ByPriceAtLeast(bound int) Predicate {
	return func(b models.Book) bool {
		return b.Price >= bound
	}
}

func ByPriceAtMost(bound int) Predicate {
	return func(b models.Book) bool {
		return b.Price <= bound
	}
}

func ByYearAtLeast(bound int) Predicate {
	return func(b models.Book) bool {
		return b.Year >= bound
	}
}

func ByYearAtMost(bound int) Predicate {
	return func(b models.Book) bool {
		return b.Year <= bound
	}
}

// WithoutGenres keeps books sharing no genre with genres.
func WithoutGenres(genres ...string) Predicate {
	return func(b models.Book) bool {
		return !intersects(b.Genres, genres)
	}
}

// WithAnyGenre keeps books sharing at least one genre with genres.
func WithAnyGenre(genres ...string) Predicate {
	return func(b models.Book) bool {
		return intersects(b.Genres, genres)
	}
}

func intersects(a, b []string) bool {
	for _, g := range a {
		if slices.Contains(b, g) {
			return true
		}
	}
	return false
}

// SortByTitle orders books by title, byte-wise and case-sensitive. Equal
// titles keep their relative order.
func SortByTitle(books []models.Book) {
	slices.SortStableFunc(books, func(a, b models.Book) int {
		return strings.Compare(a.Title, b.Title)
	})
}
