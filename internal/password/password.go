// Package password wraps bcrypt hashing and verification of user
// passwords. Each hash embeds its own random salt, so hashing the same
// plaintext twice yields different values; verification is constant
// time within the primitive.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when callers pass a cost
// below bcrypt.MinCost.
const DefaultCost = bcrypt.DefaultCost

// Hash derives a salted bcrypt hash of plain. No validation is imposed
// on the plaintext; an empty password is hashed like any other.
func Hash(plain string, cost int) ([]byte, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(plain), cost)
}

// Check reports whether plain is the password that produced hash.
func Check(hash []byte, plain string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain)) == nil
}
