package v1

// Book defines model for Book.
type Book struct {
	Author string   `json:"author"`
	Genres []string `json:"genres"`
	Id     int      `json:"id"`
	Price  int      `json:"price"`
	Title  string   `json:"title"`
	Year   int      `json:"year"`
}

// NewBook defines model for NewBook.
type NewBook struct {
	Author string   `json:"author"`
	Genres []string `json:"genres"`
	Price  int      `json:"price"`
	Title  string   `json:"title"`
	Year   int      `json:"year"`
}

// Envelope wraps every book response. ErrorMessage is empty on success and
// Result is null on failure.
type Envelope[T any] struct {
	ErrorMessage string `json:"errorMessage"`
	Result       *T     `json:"result"`
}

// BookQueryParams defines parameters for GetBooks and GetBooksTotal.
type BookQueryParams struct {
	Author          *string `form:"author,omitempty" json:"author,omitempty"`
	PriceBiggerThan *int    `form:"price-bigger-than,omitempty" json:"price-bigger-than,omitempty"`
	PriceLessThan   *int    `form:"price-less-than,omitempty" json:"price-less-than,omitempty"`
	YearBiggerThan  *int    `form:"year-bigger-than,omitempty" json:"year-bigger-than,omitempty"`
	YearLessThan    *int    `form:"year-less-than,omitempty" json:"year-less-than,omitempty"`
	// Genres is a comma separated list of upper case genres.
	Genres *string `form:"genres,omitempty" json:"genres,omitempty"`
}

// GetBookParams defines parameters for GetBook.
type GetBookParams struct {
	Id int `form:"id" json:"id"`
}

// UpdateBookPriceParams defines parameters for UpdateBookPrice.
type UpdateBookPriceParams struct {
	Id    int `form:"id" json:"id"`
	Price int `form:"price" json:"price"`
}

// DeleteBookParams defines parameters for DeleteBook.
type DeleteBookParams struct {
	Id int `form:"id" json:"id"`
}

// GetLogLevelParams defines parameters for GetLogLevel.
type GetLogLevelParams struct {
	LoggerName string `form:"logger-name" json:"logger-name"`
}

// SetLogLevelParams defines parameters for SetLogLevel.
type SetLogLevelParams struct {
	LoggerName  string `form:"logger-name" json:"logger-name"`
	LoggerLevel string `form:"logger-level" json:"logger-level"`
}
