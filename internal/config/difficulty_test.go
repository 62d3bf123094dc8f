package config

import (
	"testing"
	"time"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 40},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
			MinInterval:     50 * time.Millisecond,
		},
	}
}

func TestTickIntervalProgression(t *testing.T) {
	base := 80 * time.Millisecond
	dm := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 80 * time.Millisecond},
		{10, 64 * time.Millisecond},
		{20, 53333333 * time.Nanosecond},
		{40, 50 * time.Millisecond}, // 40ms clamped to the floor
		{400, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		got := dm.TickInterval(base, tc.score)
		if got != tc.want {
			t.Errorf("TickInterval(score=%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestTickIntervalNonIncreasing(t *testing.T) {
	base := 80 * time.Millisecond
	dm := NewDifficultyManager(testDifficulty())

	prev := dm.TickInterval(base, 0)
	for score := 1; score <= 100; score++ {
		cur := dm.TickInterval(base, score)
		if cur > prev {
			t.Fatalf("interval grew from %v to %v at score %d", prev, cur, score)
		}
		prev = cur
	}
}

func TestTickIntervalDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	dm := NewDifficultyManager(cfg)

	if got := dm.TickInterval(80*time.Millisecond, 1000); got != 80*time.Millisecond {
		t.Errorf("disabled manager changed the interval to %v", got)
	}
}

func TestLevelWithInitialLevel(t *testing.T) {
	cfg := testDifficulty()
	dm := NewDifficultyManager(cfg)
	dm.SetInitialLevel(0.5)

	if got := dm.Level(0); got != 0.5 {
		t.Errorf("Level(0) = %v, expected 0.5", got)
	}
	if got := dm.Level(20); got != 0.75 {
		t.Errorf("Level(20) = %v, expected 0.75", got)
	}
	if got := dm.Level(80); got != 1.0 {
		t.Errorf("Level(80) = %v, expected 1.0", got)
	}

	dm.SetInitialLevel(3)
	if got := dm.Level(0); got != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %v", got)
	}
}

func TestLevelProgressionNone(t *testing.T) {
	cfg := testDifficulty()
	cfg.Progression.Type = "none"
	cfg.InitialLevel = 0.3
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("progression none should report disabled")
	}
	if got := dm.Level(100); got != 0.3 {
		t.Errorf("Level = %v, expected the initial level 0.3", got)
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()

	ApplySnakePreset(&cfg, DifficultyNormal)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.3 {
		t.Errorf("normal preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestConfigPacer(t *testing.T) {
	cfg := DefaultSnakeConfig()

	fixed := cfg.Pacer(DifficultyFixed)
	if got := fixed.TickInterval(80*time.Millisecond, 30); got != 80*time.Millisecond {
		t.Errorf("fixed pacer changed the interval to %v", got)
	}

	hard := cfg.Pacer(DifficultyHard)
	if got := hard.TickInterval(80*time.Millisecond, 0); got >= 80*time.Millisecond {
		t.Errorf("hard pacer should start faster than the base, got %v", got)
	}
	if cfg.Difficulty.Enabled {
		t.Error("Pacer must not modify the receiver")
	}
}

func TestConfigPreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if got := cfg.Preset(); got != DifficultyFixed {
		t.Errorf("default preset = %q, expected fixed", got)
	}

	ApplySnakePreset(&cfg, DifficultyHard)
	if got := cfg.Preset(); got != DifficultyHard {
		t.Errorf("preset = %q, expected hard", got)
	}
}
