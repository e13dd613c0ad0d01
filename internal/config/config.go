// Package config holds the flat set of planner parameters that a
// caller bundles per run: flick timing/direction, sample spacing,
// pointer cap, and the cache/beat-snap/log-level behaviors.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the planner's full parameter set. Zero value is invalid;
// use Default() and override from there.
type Config struct {
	// FlickStartMs is the pre-roll, in ms, before a flick's note time
	// where its DOWN is emitted. Conventionally negative.
	FlickStartMs int `json:"flick_start_ms"`
	// FlickEndMs is the post-roll, in ms, after a flick's note time
	// where its UP is emitted.
	FlickEndMs int `json:"flick_end_ms"`
	// FlickDirection selects the flick's travel axis relative to the
	// line's tangent at the note time: 0 = perpendicular, 1 = parallel.
	FlickDirection int `json:"flick_direction"`
	// SampleDelayMs is the spacing between MOVE samples for holds and
	// drags.
	SampleDelayMs int `json:"sample_delay_ms"`
	// TapHoldMs is how long a TAP's DOWN precedes its UP.
	TapHoldMs int `json:"tap_hold_ms"`

	// TargetScore and StrictMode are accepted for forward
	// compatibility with the GUI's configuration file; the planner
	// treats both as no-ops.
	TargetScore float64 `json:"target_score"`
	StrictMode  bool    `json:"strict_mode"`

	// ContinueWhenFailed governs the radical planner's behavior on
	// pointer exhaustion: drop the offending note with a warning
	// instead of failing the run.
	ContinueWhenFailed bool `json:"continue_when_failed"`
	// MaxPointers is the hard concurrent-pointer cap.
	MaxPointers int `json:"max_pointers"`
	// PointerReuseDistance is the radical planner's "near position"
	// threshold: a released pointer is only reused if its release
	// position is within this many logical units of the new note's
	// start position, otherwise a fresh id is minted.
	PointerReuseDistance float64 `json:"pointer_reuse_distance"`

	// CacheDir is where planned timelines are cached, keyed by the
	// SHA-1 of the source chart text. Empty disables caching.
	CacheDir string `json:"cache_dir"`
	// SnapSamplesToBeat spaces hold/drag MOVE samples by the line's
	// BeatDuration at the note's start (truncated to whole ms) instead
	// of a flat SampleDelayMs.
	SnapSamplesToBeat bool `json:"snap_samples_to_beat"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level"`
}

// Default returns the configuration the GUI ships with out of the box.
func Default() Config {
	return Config{
		FlickStartMs:         -17,
		FlickEndMs:           17,
		FlickDirection:       0,
		SampleDelayMs:        10,
		TapHoldMs:            1,
		ContinueWhenFailed:   false,
		MaxPointers:          10,
		PointerReuseDistance: 50,
		LogLevel:             "info",
	}
}

// Load reads a JSON config file, starting from Default() so that any
// field the file omits keeps its default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the configuration is internally consistent
// enough for the planner to run.
func (c Config) Validate() error {
	if c.MaxPointers <= 0 {
		return fmt.Errorf("config: max_pointers must be positive, got %d", c.MaxPointers)
	}
	if c.FlickDirection != 0 && c.FlickDirection != 1 {
		return fmt.Errorf("config: flick_direction must be 0 or 1, got %d", c.FlickDirection)
	}
	if c.SampleDelayMs <= 0 {
		return fmt.Errorf("config: sample_delay_ms must be positive, got %d", c.SampleDelayMs)
	}
	return nil
}
