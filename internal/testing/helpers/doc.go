// Package helpers provides common test utilities for the MeowHome API.
//
// The helpers package contains HTTP request builders, response decoders
// and small value helpers shared by the acceptance tests.
//
// # Pointer Helpers
//
// Create pointers to literal values:
//
//	desc := helpers.StringPtr("notes")
//
// # Time Helpers
//
// Time manipulation for tests:
//
//	past := helpers.TimeAgo(24 * time.Hour)
//	future := helpers.TimeFromNow(1 * time.Hour)
//
// # HTTP Helpers
//
// Build requests and decode the response envelope:
//
//	rec := helpers.DoJSON(t, mux, "POST", "/v1/todos", body)
//	helpers.DecodeData(t, rec, &todo)
package helpers
