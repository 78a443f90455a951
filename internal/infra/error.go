package infra

import (
	"errors"

	"elibrary-borrowing/internal/pkg/errs"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
)

// Unique index names from the loans schema, surfaced so duplicate-key errors
// can be mapped to the precise business rule that was violated.
const (
	ConstraintOneOutstandingPerUser     = "loans_one_outstanding_per_user"
	ConstraintOneOutstandingPerUserBook = "loans_one_outstanding_per_user_book"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	// Constraint holds the violated constraint or index name when the
	// driver reports one. Empty otherwise.
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

func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// WrapDuplicateKeyErr is WrapRepoErr for unique violations, keeping the
// constraint name alongside the kind.
func WrapDuplicateKeyErr(msg, constraint string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: KindDuplicateKey, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ViolatedConstraint returns the constraint name attached to a repository
// error, or "" when none was recorded.
func ViolatedConstraint(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}
