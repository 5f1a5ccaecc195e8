// Package service contains the application use cases. It orchestrates the
// domain entities and the storage interfaces defined in internal/store, and
// never depends on a concrete storage implementation.
//
// Service methods return sentinel errors for expected conditions (checked
// with errors.Is) and wrap everything else in a service-specific error type.
// The API layer maps both to HTTP responses.
package service
