package store

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateEmployeeID = errors.New("employee id already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
)

// FieldError attributes a failure to a single input field so a
// form-driven caller can render it next to the right input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
