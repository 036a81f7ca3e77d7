package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/kaplat/book-server/api/v1"
	"github.com/kaplat/book-server/internal/handlers"
	"github.com/kaplat/book-server/internal/logging"
	"github.com/kaplat/book-server/internal/models"
	"github.com/kaplat/book-server/internal/services"
	"github.com/kaplat/book-server/internal/store"
	"github.com/kaplat/book-server/pkg/scheduler"
)

type envelope struct {
	Result       json.RawMessage `json:"result"`
	ErrorMessage string          `json:"errorMessage"`
}

var _ = Describe("Handler", func() {
	var (
		router   *gin.Engine
		sched    *scheduler.Scheduler
		registry *logging.Registry
	)

	BeforeEach(func() {
		sched = scheduler.NewScheduler(2)
		st := store.NewStore(store.NewMemoryStore())

		var err error
		registry, err = logging.NewRegistry(logging.FormatConsole,
			logging.LoggerConfig{Name: models.RequestLoggerName, Level: models.LogLevelInfo},
			logging.LoggerConfig{Name: models.BooksLoggerName, Level: models.LogLevelInfo},
		)
		Expect(err).NotTo(HaveOccurred())

		h := handlers.New(
			services.NewBookService(st, sched),
			services.NewLogLevelService(registry),
		)
		router = gin.New()
		v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
	})

	AfterEach(func() {
		sched.Close()
		registry.Close()
	})

	do := func(method, target string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			data, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(data)
		} else {
			reader = bytes.NewReader(nil)
		}

		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) envelope {
		var env envelope
		Expect(json.Unmarshal(w.Body.Bytes(), &env)).To(Succeed())
		return env
	}

	create := func(title string, year, price int, genres ...string) *httptest.ResponseRecorder {
		return do(http.MethodPost, "/book", v1.NewBook{Title: title, Author: "Herbert", Year: year, Price: price, Genres: genres})
	}

	Context("GetHealth", func() {
		It("should return OK as text", func() {
			w := do(http.MethodGet, "/books/health", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("OK"))
		})
	})

	Context("CreateBook", func() {
		It("should return the new id in the envelope", func() {
			w := create("Dune", 1965, 20, "SF")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"result":1,"errorMessage":""}`))
		})

		It("should return 409 for a duplicate title", func() {
			Expect(create("Dune", 1965, 20).Code).To(Equal(http.StatusOK))

			w := create("DUNE", 1965, 20)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(w.Body.String()).To(MatchJSON(`{"result":null,"errorMessage":"Error: Book with the title [DUNE] already exists in the system"}`))
		})

		It("should return 409 for a year out of range", func() {
			w := create("Old", 1939, 20)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w).ErrorMessage).To(Equal("Error: Can’t create new Book that its year [1939] is not in the accepted range [1940 -> 2100]"))
		})

		It("should return 409 for a non positive price", func() {
			w := create("Free", 2000, 0)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w).ErrorMessage).To(Equal("Error: Can’t create new Book with negative price"))
		})

		It("should return 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(`{"title":`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			env := decode(w)
			Expect(string(env.Result)).To(Equal("null"))
			Expect(env.ErrorMessage).NotTo(BeEmpty())
		})
	})

	Context("queries", func() {
		BeforeEach(func() {
			Expect(create("Dune", 1965, 20, "SF").Code).To(Equal(http.StatusOK))
			Expect(create("Anathem", 2008, 30, "NOVEL").Code).To(Equal(http.StatusOK))
			Expect(create("Emma", 1950, 12, "ROMANCE").Code).To(Equal(http.StatusOK))
		})

		It("should count books matching the filters", func() {
			w := do(http.MethodGet, "/books/total?year-bigger-than=1960", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"result":2,"errorMessage":""}`))
		})

		It("should list books sorted by title", func() {
			w := do(http.MethodGet, "/books", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var books []v1.Book
			Expect(json.Unmarshal(decode(w).Result, &books)).To(Succeed())
			Expect(books).To(HaveLen(3))
			Expect(books[0].Title).To(Equal("Anathem"))
			Expect(books[1].Title).To(Equal("Dune"))
			Expect(books[2].Title).To(Equal("Emma"))
			Expect(books[1].Genres).To(Equal([]string{"SF"}))
		})

		It("should return an empty list rather than null", func() {
			w := do(http.MethodGet, "/books?author=nobody", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"result":[],"errorMessage":""}`))
		})

		It("should return 400 for genres not in upper case", func() {
			for _, target := range []string{"/books?genres=fantasy", "/books/total?genres=fantasy"} {
				w := do(http.MethodGet, target, nil)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decode(w).ErrorMessage).To(Equal("Error: genres [fantasy] must be given in upper case"))
			}
		})

		It("should return 400 for a non integer bound", func() {
			w := do(http.MethodGet, "/books?price-less-than=cheap", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w).ErrorMessage).To(ContainSubstring("price-less-than"))
		})
	})

	Context("single book", func() {
		BeforeEach(func() {
			Expect(create("Dune", 1965, 20, "SF").Code).To(Equal(http.StatusOK))
		})

		It("should get a book by id", func() {
			w := do(http.MethodGet, "/book?id=1", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"result":{"id":1,"title":"Dune","author":"Herbert","year":1965,"price":20,"genres":["SF"]},"errorMessage":""}`))
		})

		It("should return 404 for an unknown id", func() {
			w := do(http.MethodGet, "/book?id=5", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(MatchJSON(`{"result":null,"errorMessage":"Error: no such Book with id 5"}`))
		})

		It("should return 400 when the id is missing", func() {
			w := do(http.MethodGet, "/book", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should update the price and return the old one", func() {
			w := do(http.MethodPut, "/book?id=1&price=25", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"result":20,"errorMessage":""}`))
		})

		It("should return 409 for a non positive price update", func() {
			w := do(http.MethodPut, "/book?id=1&price=-3", nil)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w).ErrorMessage).To(Equal("Error: price update for book 1 must be a positive integer"))
		})

		It("should delete and return the remaining count", func() {
			w := do(http.MethodDelete, "/book?id=1", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"result":0,"errorMessage":""}`))

			w = do(http.MethodDelete, "/book?id=1", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("log level", func() {
		It("should return the level as text", func() {
			w := do(http.MethodGet, "/logs/level?logger-name=books-logger", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("INFO"))
		})

		It("should set the level", func() {
			w := do(http.MethodPut, "/logs/level?logger-name=request-logger&logger-level=DEBUG", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("DEBUG"))

			level, err := registry.Level(models.RequestLoggerName)
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal(models.LogLevelDebug))
		})

		It("should return 404 for an unknown logger", func() {
			w := do(http.MethodGet, "/logs/level?logger-name=root", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(Equal("No logger found"))
		})

		It("should return 404 for an unknown level", func() {
			w := do(http.MethodPut, "/logs/level?logger-name=books-logger&logger-level=debug", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(Equal("No level found"))
		})
	})
})
