package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the tick interval from the score.
// It satisfies core.Pacer.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(score)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the current speed multiplier based on difficulty level.
func (d *DifficultyManager) Speed(score int) float64 {
	return 1.0 + d.Level(score)*d.cfg.Scaling.SpeedMultiplier
}

// TickInterval returns how long to wait between ticks at score.
// The base interval is divided by the speed multiplier and never drops
// below the configured minimum. A disabled manager returns base unchanged.
func (d *DifficultyManager) TickInterval(base time.Duration, score int) time.Duration {
	if !d.cfg.Enabled {
		return base
	}

	interval := time.Duration(float64(base) / d.Speed(score))
	floor := d.cfg.Scaling.MinInterval
	if floor <= 0 || floor > base {
		floor = min(base, time.Millisecond)
	}
	if interval < floor {
		interval = floor
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Pacer returns a DifficultyManager for the difficulty section with preset
// applied. The receiver is not modified.
func (c SnakeConfig) Pacer(preset DifficultyPreset) *DifficultyManager {
	if preset != "" {
		ApplySnakePreset(&c, preset)
	}
	return NewDifficultyManager(c.Difficulty)
}

// Preset names the preset matching the difficulty section: fixed when
// progression is disabled, otherwise the preset with the same initial level.
func (c SnakeConfig) Preset() DifficultyPreset {
	if !c.Difficulty.Enabled {
		return DifficultyFixed
	}
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if InitialLevelForPreset(p) == c.Difficulty.InitialLevel {
			return p
		}
	}
	return DifficultyNormal
}
