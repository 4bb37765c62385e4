package session

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(env(nil))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 5, cfg.Size)
	assert.Equal(t, 5, cfg.Walls)
}

func TestLoadConfigFromEnv(t *testing.T) {
	cfg, err := loadConfig(env(map[string]string{
		ENV_SIZE:      "9",
		ENV_WALLS:     "10",
		ENV_LOG_LEVEL: "debug",
	}))

	require.NoError(t, err)
	assert.Equal(t, Config{Size: 9, Walls: 10, LogLevel: log.DebugLevel}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]map[string]string{
		"size not a number":  {ENV_SIZE: "big"},
		"size too small":     {ENV_SIZE: "1"},
		"walls not a number": {ENV_WALLS: "many"},
		"negative walls":     {ENV_WALLS: "-3"},
		"bad level":          {ENV_LOG_LEVEL: "loud"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(env(vars))
			assert.Error(t, err)
		})
	}
}
