package session

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken_ShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{})

	for range 100 {
		token, err := NewToken()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err, "token must be unpadded base64url")
		assert.Len(t, raw, tokenBytes)

		_, dup := seen[token]
		assert.False(t, dup, "token %q generated twice", token)
		seen[token] = struct{}{}
	}
}
