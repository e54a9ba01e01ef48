package users

import "time"

// User is a single credential record. SessionID and ResetToken are nil
// while the user has no active session or pending password reset.
type User struct {
	ID             int64
	Email          string
	HashedPassword []byte
	SessionID      *string
	ResetToken     *string
	CreatedAt      time.Time
}
