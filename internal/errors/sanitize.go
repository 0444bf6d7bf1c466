package errors

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// sanitizes an error message for the client. In production, known error
// classes collapse to generic summaries so provider and database internals
// never leak.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	env := os.Getenv("ENVIRONMENT")
	if env != "production" {
		return err.Error()
	}

	// database errors (pgx-specific)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "database operation failed"
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return "resource not found"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}

	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return "request timed out"
	}

	if strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") ||
		strings.Contains(errMsg, "postgres") || strings.Contains(errMsg, "redis") {
		return "storage operation failed"
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "validation") || strings.Contains(errMsg, "binding") ||
		strings.Contains(errMsg, "required") {
		return "validation failed"
	}

	return "an error occurred"
}
