package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifelse01-debug/subpool-admin/internal/lib/password"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := password.GetHash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, password.CompareHash(hash, "correct horse battery staple"))
	assert.Error(t, password.CompareHash(hash, "wrong password"))
}

func TestGetHash_DifferentSalts(t *testing.T) {
	first, err := password.GetHash("same password")
	require.NoError(t, err)
	second, err := password.GetHash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.CompareHash(first, "same password"))
	assert.NoError(t, password.CompareHash(second, "same password"))
}

func TestCompareHash_MalformedHash(t *testing.T) {
	assert.Error(t, password.CompareHash("not-a-bcrypt-hash", "whatever"))
}
