package errors

import "fmt"

// Convenience functions for common error patterns

func ConfigInvalid(path string, cause error) *BuildError {
	return Wrap(cause, CategoryConfig, "invalid configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *BuildError {
	return New(CategoryValidation, fmt.Sprintf("%s %s", field, reason)).
		WithContext("field", field).
		WithContext("reason", reason)
}

func InputMissing(path string, cause error) *BuildError {
	return Wrap(cause, CategoryInput, "input file unreadable").
		WithContext("path", path)
}

func EmptyCatalog(cause error) *BuildError {
	return Wrap(cause, CategoryInput, "catalog is empty or incomplete")
}

func RenderFailed(page string, cause error) *BuildError {
	return Wrap(cause, CategoryRender, "page rendering failed").
		WithContext("page", page)
}

func WriteFailed(path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, "writing output failed").
		WithContext("path", path)
}
