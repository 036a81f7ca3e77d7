package store_test

import (
	"context"
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kaplat/book-server/internal/models"
	"github.com/kaplat/book-server/internal/store"
	"github.com/kaplat/book-server/internal/store/migrations"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

func newBook(title string) models.Book {
	return models.Book{Title: title, Author: "Author", Year: 2000, Price: 10, Genres: []string{"NOVEL"}}
}

// bookStoreContract runs the behaviour every BookStore backend must share.
func bookStoreContract(open func() *store.Store) {
	var (
		ctx context.Context
		s   *store.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = open()
	})

	AfterEach(func() {
		Expect(s.Close()).To(Succeed())
	})

	Context("Insert", func() {
		// Given an empty store
		// When we insert three books
		// Then they should get the ids 1, 2 and 3
		It("should assign increasing ids starting at 1", func() {
			for i := 1; i <= 3; i++ {
				id, err := s.Books().Insert(ctx, newBook(fmt.Sprintf("book-%d", i)))
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(i))
			}
		})

		// Given a store where the last inserted book was deleted
		// When we insert a new book
		// Then the deleted id should not be reused
		It("should never reuse the id of a deleted book", func() {
			_, err := s.Books().Insert(ctx, newBook("a"))
			Expect(err).NotTo(HaveOccurred())
			id, err := s.Books().Insert(ctx, newBook("b"))
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Books().Delete(ctx, id)
			Expect(err).NotTo(HaveOccurred())

			next, err := s.Books().Insert(ctx, newBook("c"))
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal(3))
		})

		It("should store every field", func() {
			id, err := s.Books().Insert(ctx, models.Book{
				Title: "Dune", Author: "Herbert", Year: 1965, Price: 20, Genres: []string{"SF", "CLASSIC"},
			})
			Expect(err).NotTo(HaveOccurred())

			book, err := s.Books().Get(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(*book).To(Equal(models.Book{
				ID: id, Title: "Dune", Author: "Herbert", Year: 1965, Price: 20, Genres: []string{"SF", "CLASSIC"},
			}))
		})
	})

	Context("Get", func() {
		It("should return ResourceNotFoundError for an unknown id", func() {
			_, err := s.Books().Get(ctx, 42)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Error: no such Book with id 42"))
		})
	})

	Context("Delete", func() {
		It("should remove and return the book", func() {
			id, err := s.Books().Insert(ctx, newBook("gone"))
			Expect(err).NotTo(HaveOccurred())

			removed, err := s.Books().Delete(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed.Title).To(Equal("gone"))

			count, err := s.Books().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			_, err = s.Books().Get(ctx, id)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return ResourceNotFoundError for an unknown id", func() {
			_, err := s.Books().Delete(ctx, 1)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("UpdatePrice", func() {
		It("should overwrite only the price and return the previous one", func() {
			id, err := s.Books().Insert(ctx, newBook("priced"))
			Expect(err).NotTo(HaveOccurred())

			old, err := s.Books().UpdatePrice(ctx, id, 99)
			Expect(err).NotTo(HaveOccurred())
			Expect(old).To(Equal(10))

			book, err := s.Books().Get(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(book.Price).To(Equal(99))
			Expect(book.Title).To(Equal("priced"))
			Expect(book.Year).To(Equal(2000))
		})

		It("should return ResourceNotFoundError for an unknown id", func() {
			_, err := s.Books().UpdatePrice(ctx, 5, 10)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("All", func() {
		It("should return an empty snapshot for an empty store", func() {
			books, err := s.Books().All(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(BeEmpty())
		})

		It("should return every live book", func() {
			for _, title := range []string{"x", "y", "z"} {
				_, err := s.Books().Insert(ctx, newBook(title))
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := s.Books().Delete(ctx, 2)
			Expect(err).NotTo(HaveOccurred())

			books, err := s.Books().All(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(2))
			Expect([]string{books[0].Title, books[1].Title}).To(ConsistOf("x", "z"))
		})

		// Given a snapshot returned by All
		// When the caller mutates it
		// Then the store should not see the change
		It("should not let callers mutate stored books", func() {
			_, err := s.Books().Insert(ctx, newBook("safe"))
			Expect(err).NotTo(HaveOccurred())

			books, err := s.Books().All(ctx)
			Expect(err).NotTo(HaveOccurred())
			books[0].Price = 1
			books[0].Genres[0] = "CHANGED"

			book, err := s.Books().Get(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(book.Price).To(Equal(10))
			Expect(book.Genres).To(Equal([]string{"NOVEL"}))
		})
	})

	Context("Concurrent inserts", func() {
		// Given multiple goroutines inserting at the same time
		// When all inserts complete
		// Then every book should have a distinct id and the count should match
		It("should hand out distinct ids", func() {
			const numGoroutines = 20
			var wg sync.WaitGroup
			ids := make(chan int, numGoroutines)
			errs := make(chan error, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					id, err := s.Books().Insert(ctx, newBook(fmt.Sprintf("concurrent-%d", idx)))
					if err != nil {
						errs <- fmt.Errorf("goroutine %d: %w", idx, err)
						return
					}
					ids <- id
				}(i)
			}

			wg.Wait()
			close(ids)
			close(errs)

			Expect(errs).To(BeEmpty())

			seen := map[int]bool{}
			for id := range ids {
				Expect(seen).NotTo(HaveKey(id))
				seen[id] = true
			}
			Expect(seen).To(HaveLen(numGoroutines))

			count, err := s.Books().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(numGoroutines))
		})
	})
}

var _ = Describe("MemoryStore", func() {
	bookStoreContract(func() *store.Store {
		return store.NewStore(store.NewMemoryStore())
	})
})

var _ = Describe("DuckDBStore", func() {
	bookStoreContract(func() *store.Store {
		db, err := store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(context.Background(), db)).To(Succeed())
		return store.NewDuckDBStore(db)
	})
})

var _ = Describe("ResetBooks", func() {
	// Given a database holding books from a previous run
	// When the books are reset
	// Then a fresh store should start empty with ids from 1
	It("should empty the books table", func() {
		ctx := context.Background()
		db, err := store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())

		old := store.NewDuckDBStore(db)
		for _, title := range []string{"left", "over"} {
			_, err := old.Books().Insert(ctx, newBook(title))
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(store.ResetBooks(ctx, db)).To(Succeed())

		fresh := store.NewDuckDBStore(db)
		defer fresh.Close()

		count, err := fresh.Books().Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())

		id, err := fresh.Books().Insert(ctx, newBook("left"))
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal(1))
	})
})
