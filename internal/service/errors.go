package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"neurolearn-be/internal/repository/contract"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrTransientPersistence = errors.New("transient persistence failure")
	ErrVersionConflict      = contract.ErrVersionConflict
)

// Postgres error classes that clear up on their own: connection exception,
// transaction rollback, insufficient resources, operator intervention.
var transientSQLStateClasses = []string{"08", "40", "53", "57"}

// IsTransient reports whether err looks like a store outage rather than a
// rejected write.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		for _, class := range transientSQLStateClasses {
			if strings.HasPrefix(pgErr.Code, class) {
				return true
			}
		}
		return false
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isVersionConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// classifyPersistenceError tags store failures so callers can match them
// with errors.Is.
func classifyPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrVersionConflict) {
		return err
	}
	if IsTransient(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrTransientPersistence, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
