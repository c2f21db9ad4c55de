// Package token verifies bearer credentials and extracts the authenticated
// principal. The verifier is the only component that ever sees raw tokens.
package token

import "context"

// Claims is the decoded identity attached to a verified token.
type Claims struct {
	// Phone is the E.164 phone number claim. May be empty if the token was
	// issued without one; callers must treat that as a rejection.
	Phone string
	// JTI is the token's unique id, used for revocation checks.
	JTI string
}

// Verifier checks a raw bearer credential. Any returned error means the
// token is not acceptable (expired, malformed, revoked, bad signature).
type Verifier interface {
	Verify(ctx context.Context, raw string) (*Claims, error)
}
