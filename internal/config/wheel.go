package config

import (
	"time"

	"github.com/randomtoy/ideawheel/internal/app"
	"github.com/randomtoy/ideawheel/internal/domain"
)

// EngineConfig converts the profile into the spin engine's settings.
func (w Wheel) EngineConfig() app.WheelConfig {
	cfg := app.DefaultWheelConfig()
	cfg.WindUp = w.WindUp
	cfg.SpinDuration = w.SpinDuration
	cfg.PulseInterval = w.PulseInterval
	cfg.PulseWindow = w.PulseWindow
	cfg.WobbleFrame = w.WobbleFrame
	cfg.WobbleDegrees = w.WobbleDegrees
	cfg.MinRotations = w.MinRotations
	cfg.MaxRotations = w.MaxRotations
	if len(w.Palette) > 0 {
		cfg.Palette = domain.Palette(w.Palette)
	}
	return cfg
}

// Scaled returns a copy with every duration divided by factor, wobble
// frames included, so a faster wind-up keeps its pull-back.
func (w Wheel) Scaled(factor int) Wheel {
	if factor <= 1 {
		return w
	}
	d := time.Duration(factor)
	w.WindUp /= d
	w.SpinDuration /= d
	w.PulseInterval /= d
	w.PulseWindow /= d
	w.WobbleFrame /= d
	return w
}
