package usecase

import (
	"context"
	"errors"
	"strings"

	"orthocare-api/internal/delivery/http/middleware"
	"orthocare-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrRestoreNotImplemented = apperror.NotImplemented("restore is not implemented")

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// actorID is the authenticated admin recorded on audit rows, nil for
// anonymous calls.
func actorID(ctx context.Context) *uuid.UUID {
	id, ok := middleware.GetAdminIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &id
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.BadRequest(field + " must be a valid UUID")
	}
	return id, nil
}

// changed reports whether an optional string input differs from the current value.
func changed(next *string, current string) bool {
	return next != nil && *next != current
}

func changedFold(next *string, current string) bool {
	return next != nil && !strings.EqualFold(*next, current)
}
