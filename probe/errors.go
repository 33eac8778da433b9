package probe

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/posekit/model"
)

// Sentinel errors for probe operations.
var (
	// ErrInvalidCredential indicates the credential was rejected, or the
	// listing endpoint could not be reached at all.
	ErrInvalidCredential = errors.New("credential rejected")

	// ErrForbidden indicates the credential lacks access to the model.
	ErrForbidden = errors.New("model access forbidden")

	// ErrQuotaExhausted indicates the account has no quota left.
	ErrQuotaExhausted = errors.New("quota exhausted")

	// ErrRateLimited indicates the request was rate limited.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnavailable indicates the service failed in some other way.
	ErrUnavailable = errors.New("service unavailable")

	// ErrEmptyReply indicates the model answered with no choices.
	ErrEmptyReply = errors.New("empty reply")
)

// Error wraps probe failures with context.
type Error struct {
	Op        string   // Operation that failed ("list_models", "ping")
	Model     model.ID // Model being probed, if any
	Err       error    // Underlying error
	Permanent bool     // Whether retrying is pointless
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Model, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new probe error.
func NewError(op string, id model.ID, err error, permanent bool) *Error {
	return &Error{Op: op, Model: id, Err: err, Permanent: permanent}
}

// IsPermanent reports whether err is a permanent failure: one the retry
// loop must not retry. Authentication, authorization, and quota errors
// are permanent; everything else, including rate limiting, is transient.
func IsPermanent(err error) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Permanent
	}
	return errors.Is(err, ErrInvalidCredential) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrQuotaExhausted)
}
