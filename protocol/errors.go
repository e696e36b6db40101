package protocol

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrorKind classifies the failures reported by the protocol.
type ErrorKind string

const (
	NotFound           ErrorKind = "not found"
	InsufficientStake  ErrorKind = "insufficient stake"
	NotEligible        ErrorKind = "not eligible"
	NotAnOracle        ErrorKind = "not an oracle"
	NotAnEligibleJuror ErrorKind = "not an eligible juror"
	AlreadyResolved    ErrorKind = "already resolved"
	AlreadyAttested    ErrorKind = "already attested"
	AlreadyVoted       ErrorKind = "already voted"
	InvalidArgument    ErrorKind = "invalid argument"
)

// Error is the structured error returned by every protocol operation. No
// state is modified when an operation returns an Error.
type Error struct {
	Kind ErrorKind
	// operation that failed
	Op string
	// address or id involved
	Subject string
	Detail  string
}

// NewError returns an error of the given kind.
func NewError(kind ErrorKind, op, subject string) *Error {
	return &Error{Kind: kind, Op: op, Subject: subject}
}

// Errorf returns an error of the given kind with a formatted detail.
func Errorf(kind ErrorKind, op, subject, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Subject != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Subject)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// Is implements xerrors.Is. Two protocol errors match if they have the same
// kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// sentinels, to be used with xerrors.Is
var (
	ErrNotFound           = &Error{Kind: NotFound}
	ErrInsufficientStake  = &Error{Kind: InsufficientStake}
	ErrNotEligible        = &Error{Kind: NotEligible}
	ErrNotAnOracle        = &Error{Kind: NotAnOracle}
	ErrNotAnEligibleJuror = &Error{Kind: NotAnEligibleJuror}
	ErrAlreadyResolved    = &Error{Kind: AlreadyResolved}
	ErrAlreadyAttested    = &Error{Kind: AlreadyAttested}
	ErrAlreadyVoted       = &Error{Kind: AlreadyVoted}
	ErrInvalidArgument    = &Error{Kind: InvalidArgument}
)

// KindOf returns the kind of a protocol error, possibly wrapped. The second
// value is false if err is not a protocol error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if xerrors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
