package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HK97_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("HK97_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("HK97_TEST_UNSET", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HK97_TEST_INT", "42")
	n, err := GetEnvInt("HK97_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = GetEnvInt("HK97_TEST_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	t.Setenv("HK97_TEST_INT", "forty-two")
	n, err = GetEnvInt("HK97_TEST_INT", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "HK97_TEST_INT")
	assert.Equal(t, 3, n)
}

func TestGetEnvFloatAndBool(t *testing.T) {
	t.Setenv("HK97_TEST_FLOAT", "0.25")
	f, err := GetEnvFloat("HK97_TEST_FLOAT", 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, f, 1e-9)

	t.Setenv("HK97_TEST_BOOL", "false")
	b, err := GetEnvBool("HK97_TEST_BOOL", true)
	require.NoError(t, err)
	assert.False(t, b)

	t.Setenv("HK97_TEST_BOOL", "maybe")
	_, err = GetEnvBool("HK97_TEST_BOOL", true)
	assert.Error(t, err)

	t.Setenv("HK97_TEST_SEED", "")
	seed, err := GetEnvInt64("HK97_TEST_SEED", 99)
	require.NoError(t, err)
	assert.Equal(t, int64(99), seed)
}
