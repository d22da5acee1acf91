package repository

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"droughtwatch/pkg/apierror"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// dbErr wraps storage failures. Connection-class failures surface as a
// generic UNAVAILABLE so no driver detail leaks to callers; everything else
// keeps its cause for the logs.
func dbErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
		return apierror.Unavailable("storage unavailable")
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apierror.Unavailable("storage unavailable")
	}

	return fmt.Errorf("%s: %w", op, err)
}
