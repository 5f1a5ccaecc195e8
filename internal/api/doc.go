// Package api translates HTTP requests into service calls and service
// results into JSON responses. Handlers decode and validate request bodies,
// read the caller placed in the context by middleware.AuthMiddleware, and map
// errors to status codes and fixed messages without leaking internal detail.
package api
