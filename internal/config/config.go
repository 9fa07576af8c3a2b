package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "memtour.yaml"

// Config holds all memtour configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Passing  PassingConfig  `yaml:"passing"`
	Objects  ObjectsConfig  `yaml:"objects"`
	Storage  StorageConfig  `yaml:"storage"`
	Pointers PointersConfig `yaml:"pointers"`
}

// LoggingConfig configures the structured logger (written to stderr).
type LoggingConfig struct {
	Level   string `yaml:"level"`   // debug, info, warn, error
	Enabled bool   `yaml:"enabled"` // false = nop logger
}

// PassingConfig seeds the value/reference/pointer passing lesson.
type PassingConfig struct {
	A               int `yaml:"a"`
	B               int `yaml:"b"`
	C               int `yaml:"c"`
	ValueTarget     int `yaml:"value_target"`
	ReferenceTarget int `yaml:"reference_target"`
	PointerTarget   int `yaml:"pointer_target"`
}

// ObjectsConfig seeds the counter lifecycle lesson.
type ObjectsConfig struct {
	Start     int `yaml:"start"`
	HeapStart int `yaml:"heap_start"`
}

// StorageConfig seeds the storage duration lesson.
type StorageConfig struct {
	ArenaCapacity int `yaml:"arena_capacity"`
	StaticCalls   int `yaml:"static_calls"`
	GlobalVar     int `yaml:"global_var"`
	FileStatic    int `yaml:"file_static"`
}

// PointersConfig seeds the pointer mechanics lesson.
type PointersConfig struct {
	Value  int   `yaml:"value"`
	Values []int `yaml:"values"`
}

// DefaultConfig returns the values used by the lessons when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Passing: PassingConfig{
			A: 1, B: 2, C: 3,
			ValueTarget:     10,
			ReferenceTarget: 20,
			PointerTarget:   30,
		},
		Objects: ObjectsConfig{
			Start:     5,
			HeapStart: 10,
		},
		Storage: StorageConfig{
			ArenaCapacity: 8,
			StaticCalls:   3,
			GlobalVar:     42,
			FileStatic:    100,
		},
		Pointers: PointersConfig{
			Value:  42,
			Values: []int{10, 20, 30},
		},
	}
}

// Load reads the config from path, falling back to defaults if it does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies MEMTOUR_* environment variables.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("MEMTOUR_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
		c.Logging.Enabled = true
	}
	switch strings.ToLower(os.Getenv("MEMTOUR_VERBOSE")) {
	case "1", "true", "yes":
		c.Logging.Enabled = true
		c.Logging.Level = "debug"
	}
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the configuration for values the lessons cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	if c.Objects.Start < 0 || c.Objects.HeapStart < 0 {
		errs = append(errs, errors.New("objects.start and objects.heap_start must be non-negative"))
	}
	if c.Storage.ArenaCapacity <= 0 {
		errs = append(errs, errors.New("storage.arena_capacity must be positive"))
	}
	if c.Storage.StaticCalls < 0 {
		errs = append(errs, errors.New("storage.static_calls must be non-negative"))
	}
	if len(c.Pointers.Values) == 0 {
		errs = append(errs, errors.New("pointers.values must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
