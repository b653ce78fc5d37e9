// Package auth holds the credential primitives of the mock QDryClean API:
// token issue/verify and password hashing.
package auth

import "time"

// Strategy issues and verifies bearer tokens for user identifiers.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
