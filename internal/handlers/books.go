package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kaplat/book-server/api/v1"
)

// CreateBook stores a new book and returns its id
// (POST /book)
func (h *Handler) CreateBook(c *gin.Context) {
	var body v1.NewBook
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, v1.NewErrorEnvelope("invalid request body: "+err.Error()))
		return
	}

	id, err := h.bookSrv.Create(c.Request.Context(), body.ToModel())
	if err != nil {
		writeError(c, err, "create book")
		return
	}

	c.JSON(http.StatusOK, v1.NewEnvelope(id))
}

// GetBooksTotal returns the number of books matching the filters
// (GET /books/total)
func (h *Handler) GetBooksTotal(c *gin.Context, params v1.BookQueryParams) {
	count, err := h.bookSrv.Count(c.Request.Context(), params.ToFilter())
	if err != nil {
		writeError(c, err, "count books")
		return
	}

	c.JSON(http.StatusOK, v1.NewEnvelope(count))
}

// GetBooks returns the books matching the filters sorted by title
// (GET /books)
func (h *Handler) GetBooks(c *gin.Context, params v1.BookQueryParams) {
	books, err := h.bookSrv.List(c.Request.Context(), params.ToFilter())
	if err != nil {
		writeError(c, err, "list books")
		return
	}

	apiBooks := make([]v1.Book, 0, len(books))
	for _, b := range books {
		apiBooks = append(apiBooks, v1.NewBookFromModel(b))
	}

	c.JSON(http.StatusOK, v1.NewEnvelope(apiBooks))
}

// GetBook (GET /book)
func (h *Handler) GetBook(c *gin.Context, params v1.GetBookParams) {
	book, err := h.bookSrv.Get(c.Request.Context(), params.Id)
	if err != nil {
		writeError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, v1.NewEnvelope(v1.NewBookFromModel(*book)))
}

// UpdateBookPrice sets a new price and returns the previous one
// (PUT /book)
func (h *Handler) UpdateBookPrice(c *gin.Context, params v1.UpdateBookPriceParams) {
	old, err := h.bookSrv.UpdatePrice(c.Request.Context(), params.Id, params.Price)
	if err != nil {
		writeError(c, err, "update book price")
		return
	}

	c.JSON(http.StatusOK, v1.NewEnvelope(old))
}

// DeleteBook removes a book and returns the number of books left
// (DELETE /book)
func (h *Handler) DeleteBook(c *gin.Context, params v1.DeleteBookParams) {
	remaining, err := h.bookSrv.Delete(c.Request.Context(), params.Id)
	if err != nil {
		writeError(c, err, "delete book")
		return
	}

	c.JSON(http.StatusOK, v1.NewEnvelope(remaining))
}
