// Package users implements the credential store: the authoritative
// record set mapping identity attributes (email, session token, reset
// token) to the current password hash. Lookups and updates go through
// a closed set of Field selectors; anything outside the set yields
// common.ErrInvalidField.
package users

import (
	"context"
	"fmt"

	"github.com/adiomi90/alx-backend-user-data/internal/common"
)

// Field selects a User attribute for lookups and updates.
type Field string

const (
	FieldID             Field = "id"
	FieldEmail          Field = "email"
	FieldHashedPassword Field = "hashed_password"
	FieldSessionID      Field = "session_id"
	FieldResetToken     Field = "reset_token"
)

// lookupFields are the attributes FindBy accepts.
var lookupFields = map[Field]struct{}{
	FieldID:         {},
	FieldEmail:      {},
	FieldSessionID:  {},
	FieldResetToken: {},
}

// settableFields are the attributes Update accepts.
var settableFields = map[Field]struct{}{
	FieldHashedPassword: {},
	FieldSessionID:      {},
	FieldResetToken:     {},
}

// Store is the persistence boundary for credential records.
//
// Implementations must serialize mutations: Add performs the email
// uniqueness check and the insert in one critical section, and Update
// applies all requested fields atomically or none at all.
type Store interface {
	// Add creates and persists a new record. A record with the same
	// email yields common.ErrAlreadyExists.
	Add(ctx context.Context, email string, hashedPassword []byte) (*User, error)

	// FindBy returns the record whose field equals value.
	// FieldID expects an int64 value; the other lookup fields expect a
	// string. No match yields common.ErrNotFound; a field outside the
	// lookup set yields common.ErrInvalidField.
	FindBy(ctx context.Context, field Field, value any) (*User, error)

	// Update applies changes to the record with the given id as a
	// single commit. An unknown id yields common.ErrNotFound; an
	// unknown or unsettable key, or a value of the wrong type, yields
	// common.ErrInvalidField and leaves the record untouched.
	// FieldHashedPassword takes []byte; FieldSessionID and
	// FieldResetToken take *string or nil to clear.
	Update(ctx context.Context, id int64, changes map[Field]any) error
}

// checkLookup validates a FindBy field/value pair.
func checkLookup(field Field, value any) error {
	if _, ok := lookupFields[field]; !ok {
		return fmt.Errorf("%w: %q is not a lookup field", common.ErrInvalidField, field)
	}
	switch field {
	case FieldID:
		if _, ok := value.(int64); !ok {
			return fmt.Errorf("%w: %q expects an int64 value", common.ErrInvalidField, field)
		}
	default:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: %q expects a string value", common.ErrInvalidField, field)
		}
	}
	return nil
}

// checkChanges validates an Update change set before anything is
// applied, so a bad key can never leave a partial write behind.
func checkChanges(changes map[Field]any) error {
	for field, value := range changes {
		if _, ok := settableFields[field]; !ok {
			return fmt.Errorf("%w: %q is not settable", common.ErrInvalidField, field)
		}
		if value == nil {
			if field == FieldHashedPassword {
				return fmt.Errorf("%w: %q cannot be cleared", common.ErrInvalidField, field)
			}
			continue
		}
		switch field {
		case FieldHashedPassword:
			if _, ok := value.([]byte); !ok {
				return fmt.Errorf("%w: %q expects a []byte value", common.ErrInvalidField, field)
			}
		default:
			switch value.(type) {
			case *string, string:
			default:
				return fmt.Errorf("%w: %q expects a string value or nil", common.ErrInvalidField, field)
			}
		}
	}
	return nil
}

// tokenValue normalizes a session/reset token change to *string.
func tokenValue(value any) *string {
	switch v := value.(type) {
	case nil:
		return nil
	case *string:
		return v
	case string:
		return &v
	}
	return nil
}
