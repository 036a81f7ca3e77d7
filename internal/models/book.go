package models

import "strings"

const (
	MinBookYear = 1940
	MaxBookYear = 2100
)

// Book is the single record type managed by the service.
type Book struct {
	ID     int
	Title  string
	Author string
	Year   int
	Price  int
	Genres []string
}

// Clone returns a copy that shares no memory with b.
func (b Book) Clone() Book {
	c := b
	if b.Genres != nil {
		c.Genres = make([]string, len(b.Genres))
		copy(c.Genres, b.Genres)
	}
	return c
}

// SameTitle reports whether the two titles collide under case-insensitive comparison.
func SameTitle(a, b string) bool {
	return strings.EqualFold(a, b)
}
