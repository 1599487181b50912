package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("AUTH_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("AUTH_TEST_KEY"))
	assert.Equal(t, "", GetEnv("AUTH_TEST_MISSING"))
}

func TestGetEnvAsStr(t *testing.T) {
	t.Setenv("AUTH_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnvAsStr("AUTH_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnvAsStr("AUTH_TEST_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name           string
		value          string
		fallback       int
		ensurePositive bool
		want           int
	}{
		{"valid", "42", 10, false, 42},
		{"not an integer", "abc", 10, false, 10},
		{"negative allowed", "-5", 10, false, -5},
		{"negative rejected", "-5", 10, true, 10},
		{"zero rejected", "0", 10, true, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("AUTH_TEST_INT", tc.value)
			assert.Equal(t, tc.want, GetEnvAsInt("AUTH_TEST_INT", tc.fallback, tc.ensurePositive))
		})
	}
}

func TestGetEnvAsInt_Missing(t *testing.T) {
	assert.Equal(t, 7, GetEnvAsInt("AUTH_TEST_INT_MISSING", 7, true))
}
