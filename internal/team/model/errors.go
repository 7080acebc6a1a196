package model

import (
	"errors"
	"strings"
)

var (
	// ErrUploadFailed indicates the payment screenshot could not be
	// transmitted to remote storage; the submission is aborted.
	ErrUploadFailed = errors.New("screenshot upload failed")
)

// ValidationError carries the ordered list of violated submission rules.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ConstraintError is a data-shape violation reported by the storage
// layer after an attempted write.
type ConstraintError struct {
	Detail string
}

func (e *ConstraintError) Error() string {
	return "constraint violated: " + e.Detail
}
