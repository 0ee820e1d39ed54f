package infra

import (
	"errors"
	"log/slog"

	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err into a RepositoryError. An explicit kind wins;
// otherwise the kind is derived from the pg error code or pgx.ErrNoRows.
// Only DB_FAILURE is logged at error level; the other kinds are expected
// outcomes that callers translate into business errors.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	constraint := ""

	var pgErr *pgconn.PgError
	switch {
	case len(kinds) > 0:
		kind = kinds[0]
	case err != nil && pgconv.IsNoRows(err):
		kind = KindNotFound
	case errors.As(err, &pgErr):
		constraint = pgErr.ConstraintName
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			kind = KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			kind = KindForeignKeyViolated
		}
	}

	if kind == KindDBFailure {
		slog.Error("Repository error: "+msg,
			slog.String("kind", string(kind)),
			slog.Any("error", err))
	} else {
		slog.Debug("Repository error: "+msg,
			slog.String("kind", string(kind)),
			slog.String("constraint", constraint))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)
