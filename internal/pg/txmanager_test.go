package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestTXManagerBegin(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	manager := &txManager{pool: mockPool}

	tests := []struct {
		name      string
		mockSetup func()
		fn        TransactionalFn
		expectErr string
	}{
		{
			name: "Commit on success",
			mockSetup: func() {
				mockPool.ExpectBegin()
				mockPool.ExpectCommit()
			},
			fn: func(ctx context.Context) error {
				tx, ok := txFromContext(ctx)
				assert.True(t, ok)
				assert.NotNil(t, tx)
				return nil
			},
		},
		{
			name: "Rollback on failure",
			mockSetup: func() {
				mockPool.ExpectBegin()
				mockPool.ExpectRollback()
			},
			fn: func(ctx context.Context) error {
				return errors.New("statement failed")
			},
			expectErr: "statement failed",
		},
		{
			name: "Begin error",
			mockSetup: func() {
				mockPool.ExpectBegin().WillReturnError(errors.New("pool exhausted"))
			},
			fn: func(ctx context.Context) error {
				t.Fatal("fn must not run when begin fails")
				return nil
			},
			expectErr: "can't begin transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := manager.Begin(context.Background(), tt.fn)
			if tt.expectErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockPool.ExpectationsWereMet())
		})
	}
}

func TestConnRoutesThroughTransaction(t *testing.T) {
	dbPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer dbPool.Close()

	txPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer txPool.Close()

	txPool.ExpectBegin()
	tx, err := txPool.Begin(context.Background())
	assert.NoError(t, err)

	txPool.ExpectExec(regexp.QuoteMeta("DELETE FROM patients WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	c := &conn{db: dbPool}
	_, err = c.Exec(withTx(context.Background(), tx), "DELETE FROM patients WHERE id = $1", 7)
	assert.NoError(t, err)

	assert.NoError(t, txPool.ExpectationsWereMet())
	assert.NoError(t, dbPool.ExpectationsWereMet())
}

func TestConnRoutesToPoolWithoutTransaction(t *testing.T) {
	dbPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer dbPool.Close()

	dbPool.ExpectExec(regexp.QuoteMeta("DELETE FROM patients WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	c := &conn{db: dbPool}
	_, err = c.Exec(context.Background(), "DELETE FROM patients WHERE id = $1", 7)
	assert.NoError(t, err)

	assert.NoError(t, dbPool.ExpectationsWereMet())
}
