// Package auth issues and verifies the bearer tokens that identify authors,
// and checks passwords against their stored bcrypt hashes.
package auth
