// Package model defines the domain entities and request/response types for
// the MeowHome API.
//
// The four core entities (FamilyMember, TodoItem, CalendarEvent, Photo) are
// plain structs keyed by an opaque string identity. Relations between them
// are weak references: an AssignedTo or UploadedBy field stores a member id
// and is resolved with a lookup that tolerates the member's absence.
//
// Errors returned to HTTP clients use RFC 9457 Problem Details, constructed
// via the New*Error helpers in errors.go.
package model
