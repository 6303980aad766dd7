package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("VERITAS_TEST_STRING", "hello")

	assert.Equal(t, "hello", GetEnv("VERITAS_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("VERITAS_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("VERITAS_TEST_INT", "42")
	t.Setenv("VERITAS_TEST_BAD_INT", "not-a-number")

	assert.Equal(t, 42, GetEnvInt("VERITAS_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("VERITAS_TEST_MISSING", 7))
	assert.Equal(t, 7, GetEnvInt("VERITAS_TEST_BAD_INT", 7))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("VERITAS_TEST_FLOAT", "62.5")
	t.Setenv("VERITAS_TEST_BAD_FLOAT", "fifty")

	assert.Equal(t, 62.5, GetEnvFloat("VERITAS_TEST_FLOAT", 50.0))
	assert.Equal(t, 50.0, GetEnvFloat("VERITAS_TEST_MISSING", 50.0))
	assert.Equal(t, 50.0, GetEnvFloat("VERITAS_TEST_BAD_FLOAT", 50.0))
}
