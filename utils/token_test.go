package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomToken(t *testing.T) {
	for _, length := range []int{6, 31, 32} {
		token := GenerateRandomToken(length)
		require.Len(t, token, length)
		for _, r := range token {
			assert.Contains(t, "0123456789abcdef", string(r))
		}
	}

	// Tokens must not repeat across calls.
	assert.NotEqual(t, GenerateRandomToken(32), GenerateRandomToken(32))
}
