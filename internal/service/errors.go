package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Event Errors =====
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventTitleRequired   = errors.New("event title is required")
	ErrEventTitleTooLong    = errors.New("event title exceeds maximum length")
	ErrDescriptionTooLong   = errors.New("event description exceeds maximum length")
	ErrEventEndsBeforeStart = errors.New("event end time must not be before its start time")
	ErrInvalidCategory      = errors.New("invalid event category")
)

// ===== Todo Errors =====
var (
	ErrTodoNotFound      = errors.New("todo not found")
	ErrTodoTitleRequired = errors.New("todo title is required")
	ErrTodoTitleTooLong  = errors.New("todo title exceeds maximum length")
	ErrInvalidPriority   = errors.New("invalid priority")
)

// ===== Member Errors =====
var (
	ErrMemberNotFound     = errors.New("family member not found")
	ErrMemberNameRequired = errors.New("member name is required")
	ErrMemberNameTooLong  = errors.New("member name exceeds maximum length")
	ErrNotOnboarded       = errors.New("device has no member identity")
)

// ===== Photo Errors =====
var (
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrPhotoURLRequired = errors.New("photo url is required")
)

// ===== Magic Input Errors =====
var (
	ErrInputRequired = errors.New("input text is required")
	ErrParseFailed   = errors.New("could not understand the input")
)

// ===== Calendar Errors =====
var (
	ErrInvalidViewMode = errors.New("invalid calendar view mode")
)
