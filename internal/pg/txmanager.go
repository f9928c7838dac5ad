package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txManager struct {
	pool txBeginner
}

func NewTXManager(pool *pgxpool.Pool) TXManager {
	return &txManager{pool: pool}
}

// Begin opens a transaction and runs fn with it carried in the context, so
// queries issued through the pool wrapper join the transaction. Commit on
// nil, rollback otherwise.
func (m *txManager) Begin(ctx context.Context, fn TransactionalFn) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zap.L().Error("can't rollback transaction", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit(ctx)
}
