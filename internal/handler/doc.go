// Package handler exposes the MeowHome HTTP API.
//
// Handlers decode and route; validation and defaulting live in the
// service layer, and every service error passes through MapServiceError
// so status codes stay consistent. Responses wrap payloads in a data
// envelope and errors follow RFC 9457 problem details.
package handler
