package infra

import (
	"errors"

	"elibrary-borrowing/internal/pkg/errs"
)

type CallErrorKind string

// Every remote call resolves to one of three outcomes: success, not-found, or
// failure. The orchestrator and the response composer branch on this
// distinction, so not-found is never collapsed into a generic failure.
const (
	KindRemoteNotFound CallErrorKind = "REMOTE_NOT_FOUND"
	KindRemoteFailure  CallErrorKind = "REMOTE_FAILURE"
)

// CallError tags an outbound-call failure with its outcome kind. It lives
// here, next to RepositoryError, so the usecase layer can classify remote
// outcomes without depending on the client package.
type CallError struct {
	Kind CallErrorKind
	msg  string
	err  error
}

func (e CallError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e CallError) Unwrap() error {
	return e.err
}

func WrapCallErr(kind CallErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return CallError{Kind: kind, msg: msg, err: err}
}

func IsCallKind(err error, kind CallErrorKind) bool {
	var e CallError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsRemoteNotFound(err error) bool {
	return IsCallKind(err, KindRemoteNotFound)
}
