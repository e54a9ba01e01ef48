package auth

import "github.com/google/uuid"

// TokenGenerator produces opaque, collision-resistant identifiers.
// Session tokens and reset tokens come from the same generator, so
// callers must not assume the two are distinguishable by format.
type TokenGenerator interface {
	NewToken() string
}

// UUIDTokenGenerator mints random version-4 UUIDs (122 bits of
// entropy), which keeps the collision probability negligible.
type UUIDTokenGenerator struct{}

func (UUIDTokenGenerator) NewToken() string {
	return uuid.NewString()
}
