package database

import (
	"context"
	"database/sql/driver"
	stderrors "errors"
	"net"
	"strings"

	"github.com/guitarkeep/hub/internal/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Classify converts a driver error into an APIError. Connection failures,
// server shutdowns and timeouts become service_unavailable, everything else
// a database error. Errors that already are APIErrors pass through.
func Classify(msg string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.As(err); ok {
		return err
	}
	if isUnavailable(err) {
		return errors.NewUnavailableError(msg, err)
	}
	return errors.NewDatabaseError(msg, err)
}

func isUnavailable(err error) bool {
	if stderrors.Is(err, driver.ErrBadConn) || stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return unavailableClass(string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return unavailableClass(pgErr.Code)
	}

	var connectErr *pgconn.ConnectError
	if stderrors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return stderrors.As(err, &netErr)
}

// unavailableClass reports SQLSTATE classes 08 (connection exception) and
// 57 (operator intervention, e.g. admin shutdown).
func unavailableClass(code string) bool {
	return strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57")
}
