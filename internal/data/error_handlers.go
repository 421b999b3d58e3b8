package data

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"workbook_service/internal/errdefs"
)

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func handleError(err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return errdefs.ErrNotFound
	}
	if isCheckViolation(err) {
		return fmt.Errorf("%w: %w", errdefs.ErrValidation, err)
	}
	return fmt.Errorf("%w: %w", errdefs.ErrPersistence, err)
}

// expectAffected turns an update that matched no row into ErrNotFound.
func expectAffected(tag pgconn.CommandTag, err error, entity string, id int64) error {
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %d", errdefs.ErrNotFound, entity, id)
	}
	return nil
}
