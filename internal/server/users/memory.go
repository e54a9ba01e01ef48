package users

import (
	"context"
	"sync"
	"time"

	"github.com/adiomi90/alx-backend-user-data/internal/common"
)

// MemoryStore is an in-process Store guarded by a single mutex, so the
// uniqueness check in Add and every Update happen inside one critical
// section.
type MemoryStore struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]*User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, records: make(map[int64]*User)}
}

func (s *MemoryStore) Add(ctx context.Context, email string, hashedPassword []byte) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.records {
		if u.Email == email {
			return nil, common.ErrAlreadyExists
		}
	}

	u := &User{
		ID:             s.nextID,
		Email:          email,
		HashedPassword: append([]byte(nil), hashedPassword...),
		CreatedAt:      time.Now(),
	}
	s.records[u.ID] = u
	s.nextID++

	return cloneUser(u), nil
}

func (s *MemoryStore) FindBy(ctx context.Context, field Field, value any) (*User, error) {
	if err := checkLookup(field, value); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if field == FieldID {
		if u, ok := s.records[value.(int64)]; ok {
			return cloneUser(u), nil
		}
		return nil, common.ErrNotFound
	}

	want := value.(string)
	for _, u := range s.records {
		switch field {
		case FieldEmail:
			if u.Email == want {
				return cloneUser(u), nil
			}
		case FieldSessionID:
			if u.SessionID != nil && *u.SessionID == want {
				return cloneUser(u), nil
			}
		case FieldResetToken:
			if u.ResetToken != nil && *u.ResetToken == want {
				return cloneUser(u), nil
			}
		}
	}

	return nil, common.ErrNotFound
}

func (s *MemoryStore) Update(ctx context.Context, id int64, changes map[Field]any) error {
	if err := checkChanges(changes); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.records[id]
	if !ok {
		return common.ErrNotFound
	}

	for field, value := range changes {
		switch field {
		case FieldHashedPassword:
			u.HashedPassword = append([]byte(nil), value.([]byte)...)
		case FieldSessionID:
			u.SessionID = tokenValue(value)
		case FieldResetToken:
			u.ResetToken = tokenValue(value)
		}
	}

	return nil
}

// cloneUser copies a record so callers never alias store-owned memory.
func cloneUser(u *User) *User {
	c := *u
	c.HashedPassword = append([]byte(nil), u.HashedPassword...)
	if u.SessionID != nil {
		v := *u.SessionID
		c.SessionID = &v
	}
	if u.ResetToken != nil {
		v := *u.ResetToken
		c.ResetToken = &v
	}
	return &c
}
