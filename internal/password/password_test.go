package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_SaltRandomization(t *testing.T) {
	h1, err := Hash("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := Hash("pw1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ")
	assert.True(t, Check(h1, "pw1"))
	assert.True(t, Check(h2, "pw1"))
}

func TestCheck_WrongPassword(t *testing.T) {
	h, err := Hash("pw1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, Check(h, "pw2"))
	assert.False(t, Check(h, ""))
}

func TestHash_EmptyPasswordAccepted(t *testing.T) {
	h, err := Hash("", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, Check(h, ""))
	assert.False(t, Check(h, "x"))
}

func TestHash_InvalidCostFallsBackToDefault(t *testing.T) {
	h, err := Hash("pw1", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost(h)
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestCheck_MalformedHash(t *testing.T) {
	assert.False(t, Check([]byte("not-a-bcrypt-hash"), "pw1"))
	assert.False(t, Check(nil, "pw1"))
}
