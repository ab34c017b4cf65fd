package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HK97_ENEMY_SPAWN_INTERVAL", "0.25")
	t.Setenv("HK97_INITIAL_LIVES", "5")
	t.Setenv("HK97_SEED", "1234")

	tuning, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, tuning.EnemySpawnInterval)
	assert.Equal(t, 2*time.Second, tuning.CarSpawnInterval)
	assert.Equal(t, 5, tuning.InitialLives)
	assert.Equal(t, int64(1234), tuning.Seed)
}

func TestFromEnvFailsFast(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparsable interval", "HK97_CAR_SPAWN_INTERVAL", "soon"},
		{"zero interval", "HK97_ENEMY_SPAWN_INTERVAL", "0"},
		{"no lives", "HK97_INITIAL_LIVES", "0"},
		{"negative bombs", "HK97_INITIAL_BOMBS", "-1"},
		{"fade too long", "HK97_GAME_OVER_FADE", "60"},
		{"bad seed", "HK97_SEED", "0x10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
