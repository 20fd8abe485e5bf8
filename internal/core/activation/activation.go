package activation

import (
	"context"
	"errors"
	"fmt"
)

// Activator switches the host sidebar to a category
type Activator interface {
	Activate(ctx context.Context, category string) error
}

// ActivatorFunc adapts a function to the Activator interface
type ActivatorFunc func(ctx context.Context, category string) error

// Activate calls f(ctx, category)
func (f ActivatorFunc) Activate(ctx context.Context, category string) error {
	return f(ctx, category)
}

// Sentinel errors for the activation failure reasons
var (
	ErrSidebarNotFound = errors.New("sidebar not found")
	ErrCategoryHidden  = errors.New("category currently hidden")
	ErrCategoryEmpty   = errors.New("category is empty or unavailable")
	ErrRejected        = errors.New("sidebar rejected the category")
)

// Reason classifies an activation failure
type Reason string

const (
	ReasonSidebarNotFound Reason = "sidebar_not_found"
	ReasonCategoryHidden  Reason = "category_hidden"
	ReasonCategoryEmpty   Reason = "category_empty"
	ReasonRejected        Reason = "rejected"
)

// Severity is how a failure should be reported to the user
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Error is an activation failure
type Error struct {
	Category string
	Reason   Reason
	Err      error
}

// NewError creates an activation Error
func NewError(category string, reason Reason, err error) *Error {
	return &Error{Category: category, Reason: reason, Err: err}
}

func (e *Error) Error() string {
	switch e.Reason {
	case ReasonSidebarNotFound:
		return "Sidebar not found."
	case ReasonCategoryHidden:
		return fmt.Sprintf("Tab '%s' currently hidden", e.Category)
	case ReasonCategoryEmpty:
		return fmt.Sprintf("Tab '%s' is empty or unavailable", e.Category)
	default:
		if e.Err != nil {
			return fmt.Sprintf("Warning: %v", e.Err)
		}
		return fmt.Sprintf("Warning: could not switch to tab '%s'", e.Category)
	}
}

// Unwrap returns the reason's sentinel and the underlying cause
func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Severity returns SeverityInfo for hidden or empty tabs and
// SeverityWarning otherwise
func (e *Error) Severity() Severity {
	switch e.Reason {
	case ReasonCategoryHidden, ReasonCategoryEmpty:
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

func (e *Error) sentinel() error {
	switch e.Reason {
	case ReasonSidebarNotFound:
		return ErrSidebarNotFound
	case ReasonCategoryHidden:
		return ErrCategoryHidden
	case ReasonCategoryEmpty:
		return ErrCategoryEmpty
	default:
		return ErrRejected
	}
}
