package services

import (
	"context"

	"github.com/kaplat/book-server/internal/models"
)

// Observer is notified around every book operation. Implementations must be
// safe for concurrent use.
type Observer interface {
	OperationStarted(ctx context.Context, op models.Operation)
	OperationFinished(ctx context.Context, op models.Operation, outcome models.Outcome)
}

type NoopObserver struct{}

func (NoopObserver) OperationStarted(context.Context, models.Operation) {}

func (NoopObserver) OperationFinished(context.Context, models.Operation, models.Outcome) {}
