package session

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/varidor/model"
)

const (
	ENV_SIZE      = "VARIDOR_SIZE"
	ENV_WALLS     = "VARIDOR_WALLS"
	ENV_LOG_LEVEL = "VARIDOR_LOG_LEVEL"

	DEFAULT_SIZE = 5
)

type Config struct {
	Size     int
	Walls    int
	LogLevel log.Level
}

func DefaultConfig() Config {
	return Config{Size: DEFAULT_SIZE, Walls: model.DefaultWalls, LogLevel: log.InfoLevel}
}

// LoadConfig reads the environment on top of DefaultConfig. Unset variables
// keep their default; malformed ones are an error.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if s, ok := lookup(ENV_SIZE); ok {
		size, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", ENV_SIZE, err)
		}
		cfg.Size = size
	} else {
		log.Debugf("Defaulting to board size %d", cfg.Size)
	}

	if s, ok := lookup(ENV_WALLS); ok {
		walls, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", ENV_WALLS, err)
		}
		cfg.Walls = walls
	} else {
		log.Debugf("Defaulting to %d walls per player", cfg.Walls)
	}

	if s, ok := lookup(ENV_LOG_LEVEL); ok {
		level, err := log.ParseLevel(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", ENV_LOG_LEVEL, err)
		}
		cfg.LogLevel = level
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("board size %d: need at least 2", c.Size)
	}
	if c.Walls < 0 {
		return fmt.Errorf("wall budget %d: must not be negative", c.Walls)
	}
	return nil
}
