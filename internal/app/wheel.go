package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/randomtoy/ideawheel/internal/domain"
	"github.com/randomtoy/ideawheel/internal/ports"
)

// WheelConfig tunes the spin phases. Zero fields take DefaultWheelConfig values.
type WheelConfig struct {
	WindUp        time.Duration
	SpinDuration  time.Duration
	PulseInterval time.Duration
	PulseWindow   time.Duration
	WobbleFrame   time.Duration
	WobbleDegrees float64
	MinRotations  int
	MaxRotations  int
	Palette       domain.Palette
}

func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		WindUp:        300 * time.Millisecond,
		SpinDuration:  5 * time.Second,
		PulseInterval: 100 * time.Millisecond,
		PulseWindow:   2 * time.Second,
		WobbleFrame:   20 * time.Millisecond,
		WobbleDegrees: 12,
		MinRotations:  8,
		MaxRotations:  12,
		Palette:       domain.DefaultPalette,
	}
}

func (c WheelConfig) withDefaults() WheelConfig {
	d := DefaultWheelConfig()
	if c.WindUp <= 0 {
		c.WindUp = d.WindUp
	}
	if c.SpinDuration <= 0 {
		c.SpinDuration = d.SpinDuration
	}
	if c.PulseInterval <= 0 {
		c.PulseInterval = d.PulseInterval
	}
	if c.PulseWindow < 0 {
		c.PulseWindow = 0
	}
	if c.WobbleFrame <= 0 {
		c.WobbleFrame = d.WobbleFrame
	}
	if c.MinRotations <= 0 && c.MaxRotations <= 0 {
		c.MinRotations, c.MaxRotations = d.MinRotations, d.MaxRotations
	}
	if c.MinRotations < 0 {
		c.MinRotations = 0
	}
	if c.MaxRotations < c.MinRotations {
		c.MaxRotations = c.MinRotations
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
	return c
}

// Wheel is the spin engine: Idle -> WindUp -> Spinning -> Resolved -> Idle.
//
// Phases are sequenced only through the injected clock. At most one spin is
// in flight; there is no way to abort it once started.
type Wheel struct {
	clock    ports.Clock
	rng      domain.RNG
	feedback ports.Feedback
	source   ports.ItemSource
	cfg      WheelConfig
	logger   *slog.Logger

	mu        sync.Mutex
	sections  []domain.Section
	phase     domain.Phase
	rotation  float64
	spinFrom  float64
	spinStart time.Time
	pointer   pointer
	wobble    float64
	selected  *domain.Item
	gen       uint64
	spins     int
}

// NewWheel builds an idle wheel. source may be nil, in which case sections
// come only from UpdateSections.
func NewWheel(clock ports.Clock, rng domain.RNG, fb ports.Feedback, source ports.ItemSource, cfg WheelConfig, logger *slog.Logger) *Wheel {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Wheel{
		clock:    clock,
		rng:      rng,
		feedback: fb,
		source:   source,
		cfg:      cfg,
		logger:   logger,
		phase:    domain.PhaseIdle,
		pointer:  newPointer(cfg.WobbleFrame),
	}
}

// UpdateSections re-partitions the wheel. Safe at any time, including
// mid-spin: the resolver uses whatever partition exists when the spin ends.
func (w *Wheel) UpdateSections(items []domain.Item) {
	sections := domain.Partition(items, w.cfg.Palette)

	w.mu.Lock()
	w.sections = sections
	w.mu.Unlock()
}

// Refresh reloads items from the configured source.
func (w *Wheel) Refresh(ctx context.Context) error {
	if w.source == nil {
		return nil
	}
	items, err := w.source.Items(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	w.UpdateSections(items)
	return nil
}

// Sections returns the current partition.
func (w *Wheel) Sections() []domain.Section {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.sections)
}

// State returns a snapshot for rendering.
func (w *Wheel) State() domain.SpinState {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := domain.SpinState{
		Phase:         w.phase,
		RotationAngle: w.rotation,
		DisplayAngle:  w.rotation,
		PointerWobble: w.wobble,
		SpinCount:     w.spins,
	}
	if w.phase == domain.PhaseSpinning {
		progress := float64(w.clock.Now().Sub(w.spinStart)) / float64(w.cfg.SpinDuration)
		st.DisplayAngle = w.spinFrom + (w.rotation-w.spinFrom)*domain.EaseOut(progress)
	}
	if w.selected != nil {
		sel := *w.selected
		st.Selected = &sel
	}
	return st
}

// Spin starts a spin. onSelected runs exactly once, from the clock's callback,
// when the spin resolves. A spin requested while another is in flight, or on
// an empty wheel, is rejected without side effects.
func (w *Wheel) Spin(ctx context.Context, onSelected func(domain.Item)) error {
	if w.busy() {
		w.logger.DebugContext(ctx, "spin rejected", "reason", domain.ErrSpinInProgress)
		return domain.ErrSpinInProgress
	}

	if err := w.Refresh(ctx); err != nil {
		return err
	}

	w.mu.Lock()
	if w.phase != domain.PhaseIdle {
		w.mu.Unlock()
		return domain.ErrSpinInProgress
	}
	if len(w.sections) == 0 {
		w.mu.Unlock()
		w.logger.DebugContext(ctx, "spin rejected", "reason", domain.ErrNoItems)
		return domain.ErrNoItems
	}

	w.gen++
	gen := w.gen
	w.phase = domain.PhaseWindUp
	w.selected = nil
	w.wobble = 0
	w.pointer.reset()

	for at := w.cfg.WobbleFrame; at < w.cfg.WindUp; at += w.cfg.WobbleFrame {
		w.clock.AfterFunc(at, w.wobbleFrame(gen, at))
	}
	w.clock.AfterFunc(w.cfg.WindUp, func() { w.startSpinning(gen, onSelected) })
	sections, rotation := len(w.sections), w.rotation
	w.mu.Unlock()

	w.logger.DebugContext(ctx, "spin started", "sections", sections, "rotation", rotation)
	w.pulse(ports.PulseTick)
	return nil
}

func (w *Wheel) busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase != domain.PhaseIdle
}

// wobbleFrame pulls the pointer back for the first half of the wind-up and
// releases it for the second.
func (w *Wheel) wobbleFrame(gen uint64, at time.Duration) func() {
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.gen != gen || w.phase != domain.PhaseWindUp {
			return
		}
		target := 0.0
		if at < w.cfg.WindUp/2 {
			target = -w.cfg.WobbleDegrees
		}
		w.wobble = w.pointer.step(target)
	}
}

func (w *Wheel) startSpinning(gen uint64, onSelected func(domain.Item)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gen != gen || w.phase != domain.PhaseWindUp {
		return
	}

	plan := domain.DrawSpin(w.rng, w.cfg.MinRotations, w.cfg.MaxRotations)
	w.phase = domain.PhaseSpinning
	w.wobble = 0
	w.pointer.reset()
	w.spinFrom = w.rotation
	w.rotation += plan.TotalRotation()
	w.spinStart = w.clock.Now()

	for at := w.cfg.PulseInterval; at <= w.cfg.PulseWindow && at < w.cfg.SpinDuration; at += w.cfg.PulseInterval {
		w.clock.AfterFunc(at, w.spinPulse(gen))
	}
	w.clock.AfterFunc(w.cfg.SpinDuration, func() { w.resolve(gen, onSelected) })

	w.logger.Debug("wheel spinning",
		"full_rotations", plan.FullRotations,
		"final_offset", plan.FinalOffset,
		"target_rotation", w.rotation,
	)
}

// spinPulse emits a tick only while this spin is still in the Spinning phase.
func (w *Wheel) spinPulse(gen uint64) func() {
	return func() {
		w.mu.Lock()
		live := w.gen == gen && w.phase == domain.PhaseSpinning
		w.mu.Unlock()
		if live {
			w.pulse(ports.PulseTick)
		}
	}
}

func (w *Wheel) resolve(gen uint64, onSelected func(domain.Item)) {
	w.mu.Lock()
	if w.gen != gen || w.phase != domain.PhaseSpinning {
		w.mu.Unlock()
		return
	}
	rotation := w.rotation
	sections := len(w.sections)
	item, err := domain.Resolve(rotation, w.sections)
	if err != nil {
		// Every item was removed mid-spin; nothing to select.
		w.phase = domain.PhaseIdle
		w.mu.Unlock()
		w.logger.Warn("spin ended without selection", "error", err, "rotation", rotation)
		return
	}
	w.phase = domain.PhaseResolved
	w.selected = &item
	w.spins++
	w.mu.Unlock()

	w.logger.Info("spin resolved",
		"item_id", item.ID,
		"label", item.Label,
		"rotation", rotation,
		"sections", sections,
	)

	if onSelected != nil {
		onSelected(item)
	}
	w.pulse(ports.PulseSuccess)

	w.mu.Lock()
	if w.gen == gen && w.phase == domain.PhaseResolved {
		w.phase = domain.PhaseIdle
	}
	w.mu.Unlock()
}

func (w *Wheel) pulse(kind ports.PulseKind) {
	if w.feedback != nil {
		w.feedback.Pulse(kind)
	}
}
