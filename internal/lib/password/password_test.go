package password_test

import (
	"testing"

	"team-backoffice/internal/lib/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("hemmelig123")
	require.NoError(t, err)
	assert.NotEqual(t, "hemmelig123", hash)

	assert.NoError(t, password.Compare(hash, "hemmelig123"))
	assert.ErrorIs(t, password.Compare(hash, "feil"), password.ErrMismatch)
}

func TestUnusable(t *testing.T) {
	a, err := password.Unusable()
	require.NoError(t, err)
	b, err := password.Unusable()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.ErrorIs(t, password.Compare(a, ""), password.ErrMismatch)
}
