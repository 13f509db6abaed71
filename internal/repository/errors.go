package repository

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// translate maps driver errors onto the domain error kinds.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s: duplicate value violates %s", domain.ErrConflict, op, pgErr.ConstraintName)
	}
	return domain.External(op, err)
}
