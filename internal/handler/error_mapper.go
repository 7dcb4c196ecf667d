package handler

import (
	"errors"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrTodoNotFound):
		return model.NewNotFoundError("todo")
	case errors.Is(err, service.ErrPhotoNotFound):
		return model.NewNotFoundError("photo")
	case errors.Is(err, service.ErrMemberNotFound):
		return model.NewNotFoundError("family member")
	case errors.Is(err, service.ErrNotOnboarded):
		return model.NewNotFoundError("device identity")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrEventTitleRequired),
		errors.Is(err, service.ErrEventTitleTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "title", Message: err.Error()}})
	case errors.Is(err, service.ErrDescriptionTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "description", Message: err.Error()}})
	case errors.Is(err, service.ErrEventEndsBeforeStart):
		return model.NewValidationError([]model.FieldError{{Field: "end_time", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidCategory):
		return model.NewValidationError([]model.FieldError{{Field: "category", Message: err.Error()}})
	case errors.Is(err, service.ErrTodoTitleRequired),
		errors.Is(err, service.ErrTodoTitleTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "title", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidPriority):
		return model.NewValidationError([]model.FieldError{{Field: "priority", Message: err.Error()}})
	case errors.Is(err, service.ErrMemberNameRequired),
		errors.Is(err, service.ErrMemberNameTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})
	case errors.Is(err, service.ErrPhotoURLRequired):
		return model.NewValidationError([]model.FieldError{{Field: "url", Message: err.Error()}})
	case errors.Is(err, service.ErrInputRequired):
		return model.NewValidationError([]model.FieldError{{Field: "input", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidViewMode):
		return model.NewValidationError([]model.FieldError{{Field: "view", Message: err.Error()}})

	// ===== Parser Errors → 422 (retryable, never fatal) =====
	case errors.Is(err, service.ErrParseFailed):
		return model.NewUnparseableError()

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
