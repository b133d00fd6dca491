package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		tok, err := New()
		require.NoError(t, err)

		_, dup := seen[tok]
		assert.False(t, dup, "duplicate token generated: %s", tok)
		seen[tok] = struct{}{}
	}
}

func TestNew_Length(t *testing.T) {
	tok, err := New()
	require.NoError(t, err)
	// 32 bytes base64url without padding
	assert.Len(t, tok, 43)
}
