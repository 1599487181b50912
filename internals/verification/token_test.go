package verification

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEmailToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateEmailToken()
		require.NoError(t, err)
		assert.Regexp(t, "^[0-9a-f]{40}$", token)
		assert.False(t, seen[token], "token repeated")
		seen[token] = true
	}
}

func TestGenerateMobileCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := GenerateMobileCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
