package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /books/health)
	GetHealth(c *gin.Context)
	// (POST /book)
	CreateBook(c *gin.Context)
	// (GET /books/total)
	GetBooksTotal(c *gin.Context, params BookQueryParams)
	// (GET /books)
	GetBooks(c *gin.Context, params BookQueryParams)
	// (GET /book)
	GetBook(c *gin.Context, params GetBookParams)
	// (PUT /book)
	UpdateBookPrice(c *gin.Context, params UpdateBookPriceParams)
	// (DELETE /book)
	DeleteBook(c *gin.Context, params DeleteBookParams)
	// (GET /logs/level)
	GetLogLevel(c *gin.Context, params GetLogLevelParams)
	// (PUT /logs/level)
	SetLogLevel(c *gin.Context, params SetLogLevelParams)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

type binder func(c *gin.Context) error

func query(name string, required bool, dest any) binder {
	return func(c *gin.Context) error {
		if err := runtime.BindQueryParameter("form", true, required, name, c.Request.URL.Query(), dest); err != nil {
			return fmt.Errorf("Invalid format for parameter %s: %w", name, err)
		}
		return nil
	}
}

// bind runs every binder, then the middlewares. It reports false when the
// request was answered already.
func (siw *ServerInterfaceWrapper) bind(c *gin.Context, binders ...binder) bool {
	for _, b := range binders {
		if err := b(c); err != nil {
			siw.ErrorHandler(c, err, http.StatusBadRequest)
			return false
		}
	}

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

func (siw *ServerInterfaceWrapper) GetHealth(c *gin.Context) {
	if siw.bind(c) {
		siw.Handler.GetHealth(c)
	}
}

func (siw *ServerInterfaceWrapper) CreateBook(c *gin.Context) {
	if siw.bind(c) {
		siw.Handler.CreateBook(c)
	}
}

func (p *BookQueryParams) binders() []binder {
	return []binder{
		query("author", false, &p.Author),
		query("price-bigger-than", false, &p.PriceBiggerThan),
		query("price-less-than", false, &p.PriceLessThan),
		query("year-bigger-than", false, &p.YearBiggerThan),
		query("year-less-than", false, &p.YearLessThan),
		query("genres", false, &p.Genres),
	}
}

func (siw *ServerInterfaceWrapper) GetBooksTotal(c *gin.Context) {
	var params BookQueryParams
	if siw.bind(c, params.binders()...) {
		siw.Handler.GetBooksTotal(c, params)
	}
}

func (siw *ServerInterfaceWrapper) GetBooks(c *gin.Context) {
	var params BookQueryParams
	if siw.bind(c, params.binders()...) {
		siw.Handler.GetBooks(c, params)
	}
}

func (siw *ServerInterfaceWrapper) GetBook(c *gin.Context) {
	var params GetBookParams
	if siw.bind(c, query("id", true, &params.Id)) {
		siw.Handler.GetBook(c, params)
	}
}

func (siw *ServerInterfaceWrapper) UpdateBookPrice(c *gin.Context) {
	var params UpdateBookPriceParams
	if siw.bind(c, query("id", true, &params.Id), query("price", true, &params.Price)) {
		siw.Handler.UpdateBookPrice(c, params)
	}
}

func (siw *ServerInterfaceWrapper) DeleteBook(c *gin.Context) {
	var params DeleteBookParams
	if siw.bind(c, query("id", true, &params.Id)) {
		siw.Handler.DeleteBook(c, params)
	}
}

func (siw *ServerInterfaceWrapper) GetLogLevel(c *gin.Context) {
	var params GetLogLevelParams
	if siw.bind(c, query("logger-name", true, &params.LoggerName)) {
		siw.Handler.GetLogLevel(c, params)
	}
}

func (siw *ServerInterfaceWrapper) SetLogLevel(c *gin.Context) {
	var params SetLogLevelParams
	if siw.bind(c, query("logger-name", true, &params.LoggerName), query("logger-level", true, &params.LoggerLevel)) {
		siw.Handler.SetLogLevel(c, params)
	}
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching the book server API.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, gin.H{"msg": err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	router.GET(options.BaseURL+"/books/health", wrapper.GetHealth)
	router.POST(options.BaseURL+"/book", wrapper.CreateBook)
	router.GET(options.BaseURL+"/books/total", wrapper.GetBooksTotal)
	router.GET(options.BaseURL+"/books", wrapper.GetBooks)
	router.GET(options.BaseURL+"/book", wrapper.GetBook)
	router.PUT(options.BaseURL+"/book", wrapper.UpdateBookPrice)
	router.DELETE(options.BaseURL+"/book", wrapper.DeleteBook)
	router.GET(options.BaseURL+"/logs/level", wrapper.GetLogLevel)
	router.PUT(options.BaseURL+"/logs/level", wrapper.SetLogLevel)
}
