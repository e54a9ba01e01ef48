package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiomi90/alx-backend-user-data/internal/common"
)

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	s, err := NewGormStore(":memory:")
	require.NoError(t, err)
	return s
}

func TestGormStore_AddAndFindBy(t *testing.T) {
	s := newTestGormStore(t)
	ctx := context.Background()

	u, err := s.Add(ctx, "a@x.com", []byte("hash"))
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	got, err := s.FindBy(ctx, FieldEmail, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, []byte("hash"), got.HashedPassword)
	assert.Nil(t, got.SessionID)
}

func TestGormStore_Add_DuplicateEmail(t *testing.T) {
	s := newTestGormStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "a@x.com", []byte("hash1"))
	require.NoError(t, err)

	_, err = s.Add(ctx, "a@x.com", []byte("hash2"))
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestGormStore_FindBy_TokenFields(t *testing.T) {
	s := newTestGormStore(t)
	ctx := context.Background()

	u, err := s.Add(ctx, "a@x.com", []byte("hash"))
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, u.ID, map[Field]any{
		FieldSessionID:  "session-1",
		FieldResetToken: "reset-1",
	}))

	bySession, err := s.FindBy(ctx, FieldSessionID, "session-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, bySession.ID)

	byReset, err := s.FindBy(ctx, FieldResetToken, "reset-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byReset.ID)
}

func TestGormStore_FindBy_Errors(t *testing.T) {
	s := newTestGormStore(t)
	ctx := context.Background()

	_, err := s.FindBy(ctx, FieldEmail, "missing@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = s.FindBy(ctx, Field("role"), "admin")
	assert.ErrorIs(t, err, common.ErrInvalidField)
}

func TestGormStore_Update_SetAndClear(t *testing.T) {
	s := newTestGormStore(t)
	ctx := context.Background()

	u, err := s.Add(ctx, "a@x.com", []byte("hash1"))
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, u.ID, map[Field]any{
		FieldHashedPassword: []byte("hash2"),
		FieldResetToken:     "reset-1",
	}))

	require.NoError(t, s.Update(ctx, u.ID, map[Field]any{FieldResetToken: nil}))

	got, err := s.FindBy(ctx, FieldID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("hash2"), got.HashedPassword)
	assert.Nil(t, got.ResetToken)
}

func TestGormStore_Update_Errors(t *testing.T) {
	s := newTestGormStore(t)
	ctx := context.Background()

	err := s.Update(ctx, 42, map[Field]any{FieldSessionID: "s"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	u, err := s.Add(ctx, "a@x.com", []byte("hash"))
	require.NoError(t, err)

	err = s.Update(ctx, u.ID, map[Field]any{FieldEmail: "b@x.com"})
	assert.ErrorIs(t, err, common.ErrInvalidField)
}
