package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	Cost = bcrypt.MinCost
	t.Cleanup(func() { Cost = bcrypt.DefaultCost })

	h, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h, "$2a$"), "bcrypt hash expected, got %q", h)
	assert.NotContains(t, h, "s3cret!")
	assert.True(t, CheckPassword(h, "s3cret!"))
	assert.False(t, CheckPassword(h, "S3cret!"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret!"))
}

func TestHashPassword_Salted(t *testing.T) {
	Cost = bcrypt.MinCost
	t.Cleanup(func() { Cost = bcrypt.DefaultCost })

	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestBurnCompare_DoesNotPanic(t *testing.T) {
	BurnCompare("anything")
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	Wipe(b)
	assert.Equal(t, make([]byte, 6), b)

	Wipe(nil)
}
