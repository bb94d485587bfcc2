package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/minikomi/temper"
	"github.com/minikomi/temper/internal/keymap"
)

// Config drives the keyboard. Zero-effort defaults: A4 = 440 Hz, equal
// temperament, key of C major, MIDI output.
type Config struct {
	ReferencePitch float64
	Tuning         string
	Tonic          string
	Scale          temper.ScaleType
	Octave         int
	Velocity       uint8
	BendRange      float64
	Synth          bool
	Font           string
	LogLevel       slog.Level
}

func DefaultConfig() *Config {
	return &Config{
		ReferencePitch: temper.DefaultReferencePitch,
		Tuning:         "equal",
		Tonic:          "C",
		Scale:          temper.Major,
		Octave:         keymap.DefaultOctave,
		Velocity:       90,
		BendRange:      2,
		LogLevel:       slog.LevelInfo,
	}
}

// LoadConfig reads KEYBOYE_* environment variables over the defaults.
// Values that do not parse are ignored.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("KEYBOYE_REFERENCE_PITCH"); v != "" {
		if hz, err := strconv.ParseFloat(v, 64); err == nil && hz > 0 {
			cfg.ReferencePitch = hz
		}
	}
	if v := os.Getenv("KEYBOYE_TUNING"); v != "" {
		cfg.Tuning = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("KEYBOYE_TONIC"); v != "" {
		cfg.Tonic = strings.ToUpper(strings.TrimSpace(v))
	}
	if v := os.Getenv("KEYBOYE_SCALE"); v != "" {
		if sc, err := temper.ParseScale(v); err == nil {
			cfg.Scale = sc
		}
	}
	if v := os.Getenv("KEYBOYE_OCTAVE"); v != "" {
		if o, err := strconv.Atoi(v); err == nil && o >= keymap.MinOctave && o <= keymap.MaxOctave {
			cfg.Octave = o
		}
	}
	if v := os.Getenv("KEYBOYE_VELOCITY"); v != "" {
		if vel, err := strconv.Atoi(v); err == nil && vel > 0 && vel < 128 {
			cfg.Velocity = uint8(vel)
		}
	}
	if v := os.Getenv("KEYBOYE_BEND_RANGE"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			cfg.BendRange = r
		}
	}
	if v := os.Getenv("KEYBOYE_SYNTH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Synth = b
		}
	}
	if v := os.Getenv("KEYBOYE_FONT"); v != "" {
		cfg.Font = v
	}
	if v := os.Getenv("KEYBOYE_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}

	return cfg
}

// Context builds the tuning context the keyboard plays through.
func (cfg *Config) Context(logger *slog.Logger) (*temper.Context, error) {
	b := temper.NewBuilder().
		WithReferencePitch(cfg.ReferencePitch).
		WithTuningSystemName(cfg.Tuning).
		WithLogger(logger)
	if cfg.Tonic != "" {
		b = b.WithKey(cfg.Tonic, cfg.Scale)
	}
	return b.Build()
}
