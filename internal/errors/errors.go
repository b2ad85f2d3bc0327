// Package errors provides the structured BuildError used to classify build
// failures and map them to CLI exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category classifies a BuildError.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryInput      Category = "input"
	CategoryValidation Category = "validation"
	CategoryRender     Category = "render"
	CategoryFileSystem Category = "filesystem"
	CategoryInternal   Category = "internal"
)

// ContextFields carries structured context for a BuildError.
type ContextFields map[string]any

// BuildError is a classified error. Every BuildError aborts the run.
type BuildError struct {
	Category Category      `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *BuildError) WithContext(key string, value any) *BuildError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new BuildError
func New(category Category, message string) *BuildError {
	return &BuildError{Category: category, Message: message}
}

// Wrap creates a new BuildError that wraps err
func Wrap(err error, category Category, message string) *BuildError {
	return &BuildError{Category: category, Message: message, Cause: err}
}

// As returns the outermost BuildError in err's chain.
func As(err error) (*BuildError, bool) {
	var be *BuildError
	if stderrors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsCategory checks if any BuildError in err's chain has the given category.
func IsCategory(err error, category Category) bool {
	be, ok := As(err)
	return ok && be.Category == category
}

// GetCategory extracts the category from err, or CategoryInternal if err is
// not a BuildError.
func GetCategory(err error) Category {
	if be, ok := As(err); ok {
		return be.Category
	}
	return CategoryInternal
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	be, ok := As(err)
	if !ok {
		return 1
	}
	switch be.Category {
	case CategoryValidation:
		return 2
	case CategoryInput:
		return 3
	case CategoryConfig:
		return 7
	case CategoryInternal:
		return 10
	case CategoryRender, CategoryFileSystem:
		return 11
	default:
		return 1
	}
}
