package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/posekit/model"
	"github.com/randalmurphal/posekit/probe"
)

// ErrInvalidCredential mirrors the probe sentinel: the listing call
// failed outright, so nothing could be resolved.
var ErrInvalidCredential = probe.ErrInvalidCredential

// NoCompatibleModelError reports that every candidate for a mode failed
// its probe or was absent from the availability set. It carries the
// required identifiers so the user knows what access to request.
type NoCompatibleModelError struct {
	Mode     string
	Required []model.ID
}

// Error implements the error interface.
func (e *NoCompatibleModelError) Error() string {
	names := make([]string, len(e.Required))
	for i, id := range e.Required {
		names[i] = string(id)
	}
	return fmt.Sprintf("no compatible model for %s mode: need access to one of %s",
		e.Mode, strings.Join(names, ", "))
}

// Code classifies resolver failures for display.
type Code string

// Display codes for resolver failures.
const (
	CodeInvalidCredential Code = "invalid_credential"
	CodeNoCompatibleModel Code = "no_compatible_model"
	CodeCancelled         Code = "cancelled"
	CodeInternal          Code = "internal"
)

// UserError is a {code, message} pair suitable for direct display. No
// raw transport error reaches the frontend.
type UserError struct {
	Code    Code
	Message string
}

// Describe translates any resolver failure into a UserError.
func Describe(err error) UserError {
	var noModel *NoCompatibleModelError
	switch {
	case errors.As(err, &noModel):
		return UserError{Code: CodeNoCompatibleModel, Message: noModel.Error()}
	case errors.Is(err, ErrInvalidCredential):
		return UserError{
			Code:    CodeInvalidCredential,
			Message: "The API key was rejected or the service could not be reached.",
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return UserError{Code: CodeCancelled, Message: "Operation cancelled."}
	default:
		return UserError{Code: CodeInternal, Message: err.Error()}
	}
}
