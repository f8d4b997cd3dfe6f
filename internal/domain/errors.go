package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoPersonalInfo   = errors.New("resume has no personal info")
	ErrBusy             = errors.New("another export is in progress")
	ErrNotFound         = errors.New("not found")
	ErrRenderTimeout    = errors.New("render did not settle in time")
)

// CaptureError is returned when the mounted page could not be rasterized.
type CaptureError struct {
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("capture failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("capture failed: %s", e.Message)
}

func (e *CaptureError) Unwrap() error { return e.Cause }

// APIError wraps a failure of the text generation service.
type APIError struct {
	Kind  string
	Cause error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ai %s: %v", e.Kind, e.Cause)
}

func (e *APIError) Unwrap() error { return e.Cause }

// PersistenceError wraps a document store failure. Callers may retry.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }

// UserMessage turns an export or persistence error into text fit for a
// notification.
func UserMessage(err error) string {
	var capErr *CaptureError
	var perErr *PersistenceError
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTemplateNotFound):
		return "Please select a template before exporting."
	case errors.Is(err, ErrNoPersonalInfo):
		return "Please fill in your personal information before exporting."
	case errors.Is(err, ErrBusy):
		return "Another export is in progress. Please try again in a moment."
	case errors.Is(err, ErrRenderTimeout):
		return "The resume took too long to render. Please try again."
	case errors.As(err, &capErr):
		return "We could not capture your resume. Images from other sites may block the export."
	case errors.As(err, &perErr):
		return "Saving failed. Please try again."
	case errors.As(err, &apiErr):
		return "The writing assistant is unavailable right now."
	case errors.Is(err, ErrNotFound):
		return "Resume not found."
	}
	return "Export failed. Please try again."
}
