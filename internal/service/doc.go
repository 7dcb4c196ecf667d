// Package service implements the business logic for MeowHome.
//
// Services validate input, apply defaults, and write optimistically:
// the in-memory store is updated the moment a request is accepted, and
// the database write that follows is best-effort. A failed persistence
// write is logged and the optimistic state stands until the sync layer
// reconciles it against the database view.
package service
