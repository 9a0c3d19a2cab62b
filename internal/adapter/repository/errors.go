package repository

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// Repository-level errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	ErrFarmNotFound   = errors.New("farm not found")
	ErrOrderNotFound  = errors.New("order not found")
)

// isUnavailable distinguishes "the database could not be reached" from "the
// database said no". Only the former may degrade to a simulated chat result.
func isUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// The server responded; this is a query problem, not an outage
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
