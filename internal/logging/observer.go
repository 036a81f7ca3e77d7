package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaplat/book-server/internal/models"
)

// BooksObserver reports book operations on the books logger.
type BooksObserver struct {
	base *zap.Logger
	log  *zap.SugaredLogger
}

func NewBooksObserver(l *zap.Logger) *BooksObserver {
	return &BooksObserver{base: l, log: l.Sugar()}
}

func (o *BooksObserver) OperationStarted(_ context.Context, op models.Operation) {
	o.trace("%s started", op)
}

func (o *BooksObserver) OperationFinished(_ context.Context, op models.Operation, out models.Outcome) {
	defer o.trace("%s took %d ms", op, out.Elapsed.Milliseconds())

	if out.Failed() {
		o.log.Error(out.Err.Error())
		return
	}

	switch r := out.Result.(type) {
	case models.Book:
		if op == models.OperationCreate {
			o.log.Infof("Creating new Book with Title [%s]", r.Title)
			o.log.Debugf("New Book was assigned with id %d", r.ID)
			return
		}
		o.log.Debugf("Fetching book id %d details", r.ID)
	case int:
		o.log.Infof("Total Books found for requested filters is %d", r)
	case []models.Book:
		o.log.Infof("Total Books found for requested filters is %d", len(r))
	case models.PriceChange:
		o.log.Infof("Update Book id [%d] price to %d", r.Book.ID, r.NewPrice)
		o.log.Debugf("Book [%s] price change: %d --> %d", r.Book.Title, r.OldPrice, r.NewPrice)
	case models.Removal:
		o.log.Infof("Removing book [%s]", r.Book.Title)
		o.log.Debugf("After removing book [%s] id: [%d] there are %d books in the system", r.Book.Title, r.Book.ID, r.Remaining)
	}
}

func (o *BooksObserver) trace(template string, args ...any) {
	if !o.base.Core().Enabled(TraceLevel) {
		return
	}
	if ce := o.base.Check(TraceLevel, fmt.Sprintf(template, args...)); ce != nil {
		ce.Write()
	}
}
