// Package store defines interfaces for data persistence operations on users
// and posts. Implementations live under internal/platform; the rest of the
// application depends only on these interfaces and the sentinel errors below.
package store
