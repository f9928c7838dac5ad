package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// ClassifyError maps driver constraint failures onto sentinel errors so the
// services can choose a user message without inspecting driver internals.
// Anything that is not a constraint failure passes through unchanged.
func ClassifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return ErrUniqueViolation
		case foreignKeyViolationCode:
			return ErrForeignKeyViolation
		}
	}
	return err
}
