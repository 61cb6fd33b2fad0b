package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr       string
	LogLevel       slog.Level
	DatabasePath   string
	SeedIdeas      bool
	FavoriteOnPick bool
	Wheel          Wheel
}

// Wheel tunes the spin engine. Loaded from the YAML file named by
// WHEEL_PROFILE; unset fields keep their defaults.
type Wheel struct {
	WindUp        time.Duration `yaml:"wind_up"`
	SpinDuration  time.Duration `yaml:"spin_duration"`
	PulseInterval time.Duration `yaml:"pulse_interval"`
	PulseWindow   time.Duration `yaml:"pulse_window"`
	WobbleFrame   time.Duration `yaml:"wobble_frame"`
	WobbleDegrees float64       `yaml:"wobble_degrees"`
	MinRotations  int           `yaml:"min_rotations"`
	MaxRotations  int           `yaml:"max_rotations"`
	Palette       []string      `yaml:"palette"`
}

func DefaultWheel() Wheel {
	return Wheel{
		WindUp:        300 * time.Millisecond,
		SpinDuration:  5 * time.Second,
		PulseInterval: 100 * time.Millisecond,
		PulseWindow:   2 * time.Second,
		WobbleFrame:   20 * time.Millisecond,
		WobbleDegrees: 12,
		MinRotations:  8,
		MaxRotations:  12,
	}
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	c := Config{
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
		Wheel:        DefaultWheel(),
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.SeedIdeas, err = parseBool("SEED_IDEAS", true); err != nil {
		return Config{}, err
	}
	if c.FavoriteOnPick, err = parseBool("FAVORITE_ON_PICK", false); err != nil {
		return Config{}, err
	}

	if path := os.Getenv("WHEEL_PROFILE"); path != "" {
		w, err := LoadWheelProfile(path)
		if err != nil {
			return Config{}, err
		}
		c.Wheel = w
	}

	return c, nil
}

// LoadWheelProfile reads a YAML wheel profile over the defaults.
func LoadWheelProfile(path string) (Wheel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Wheel{}, fmt.Errorf("read wheel profile: %w", err)
	}
	w := DefaultWheel()
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Wheel{}, fmt.Errorf("parse wheel profile %s: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return Wheel{}, fmt.Errorf("wheel profile %s: %w", path, err)
	}
	return w, nil
}

func (w Wheel) Validate() error {
	switch {
	case w.WindUp <= 0:
		return fmt.Errorf("wind_up must be positive")
	case w.SpinDuration <= 0:
		return fmt.Errorf("spin_duration must be positive")
	case w.PulseInterval <= 0:
		return fmt.Errorf("pulse_interval must be positive")
	case w.PulseWindow < 0:
		return fmt.Errorf("pulse_window must not be negative")
	case w.WobbleFrame <= 0:
		return fmt.Errorf("wobble_frame must be positive")
	case w.MinRotations < 1:
		return fmt.Errorf("min_rotations must be at least 1")
	case w.MaxRotations < w.MinRotations:
		return fmt.Errorf("max_rotations %d is below min_rotations %d", w.MaxRotations, w.MinRotations)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
