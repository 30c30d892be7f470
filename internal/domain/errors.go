// internal/domain/errors.go
package domain

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound        = errors.New("customer not found")
	ErrConflict        = errors.New("customer already exists for this app and platform")
	ErrInvalidInput    = errors.New("invalid input provided")
	ErrInvalidPlatform = errors.New("platform must be 'instagram' or 'facebook'")
	ErrUnauthorized    = errors.New("unauthorized")

	// ErrProfileUnavailable means every Graph API probe tier failed.
	// Identify swallows it; the explicit fetch-profile endpoint surfaces it.
	ErrProfileUnavailable = errors.New("profile unavailable from graph api")

	// ErrNoAccessToken is returned by the explicit profile refresh when
	// the record has no stored page access token to fetch with.
	ErrNoAccessToken = errors.New("customer has no access token")
)

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505), the storage backstop for the identity triple.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
