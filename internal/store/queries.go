package store

const booksTable = "books"

var bookColumns = []string{
	"id",
	"title",
	"author",
	"published_year",
	"price",
	"genres",
}
