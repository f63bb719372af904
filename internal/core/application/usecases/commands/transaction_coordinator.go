package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logger"
)

// ExecuteTransaction runs work inside one transaction on uow and commits it.
//
// Contract:
//   - Begin or Commit failures are returned as *errs.TransactionError
//   - an error from work triggers a rollback and is returned unchanged
//   - a panic in work triggers a rollback and is re-raised
//   - a failed rollback is logged, never returned, so the root cause stays visible
//
// The coordinator is not re-entrant: work must not call ExecuteTransaction on
// the same uow.
func ExecuteTransaction[U TxManager, T any](
	ctx context.Context,
	uow U,
	work func(ctx context.Context, uow U) (T, error),
) (T, error) {
	var zero T

	if err := uow.Begin(ctx); err != nil {
		return zero, errs.NewTransactionError(fmt.Errorf("begin: %w", err))
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		r := recover()
		rollback(ctx, uow)
		if r != nil {
			panic(r)
		}
	}()

	result, err := work(ctx, uow)
	if err != nil {
		return zero, err
	}

	finished = true
	if err = uow.Commit(ctx); err != nil {
		return zero, errs.NewTransactionError(fmt.Errorf("commit: %w", err))
	}

	return result, nil
}

func rollback(ctx context.Context, tx TxManager) {
	if err := tx.Rollback(ctx); err != nil {
		logger.FromContext(ctx).Error("transaction rollback failed", zap.Error(err))
	}
}
