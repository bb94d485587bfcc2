package main

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/minikomi/temper"
	"github.com/minikomi/temper/tuning"
)

var configEnv = []string{
	"KEYBOYE_REFERENCE_PITCH",
	"KEYBOYE_TUNING",
	"KEYBOYE_TONIC",
	"KEYBOYE_SCALE",
	"KEYBOYE_OCTAVE",
	"KEYBOYE_VELOCITY",
	"KEYBOYE_BEND_RANGE",
	"KEYBOYE_SYNTH",
	"KEYBOYE_FONT",
	"KEYBOYE_LOG_LEVEL",
}

func clearConfigEnv(t *testing.T) {
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
}

// TestLoadConfigDefaults verifies loading with no env vars
func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	cfg := LoadConfig()
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadConfigFromEnv verifies every variable is read
func TestLoadConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("KEYBOYE_REFERENCE_PITCH", "415.3")
	t.Setenv("KEYBOYE_TUNING", " Werckmeister3 ")
	t.Setenv("KEYBOYE_TONIC", "d")
	t.Setenv("KEYBOYE_SCALE", "minor")
	t.Setenv("KEYBOYE_OCTAVE", "6")
	t.Setenv("KEYBOYE_VELOCITY", "110")
	t.Setenv("KEYBOYE_BEND_RANGE", "12")
	t.Setenv("KEYBOYE_SYNTH", "true")
	t.Setenv("KEYBOYE_FONT", "/tmp/font.ttf")
	t.Setenv("KEYBOYE_LOG_LEVEL", "debug")

	cfg := LoadConfig()
	want := Config{
		ReferencePitch: 415.3,
		Tuning:         "werckmeister3",
		Tonic:          "D",
		Scale:          temper.Minor,
		Octave:         6,
		Velocity:       110,
		BendRange:      12,
		Synth:          true,
		Font:           "/tmp/font.ttf",
		LogLevel:       slog.LevelDebug,
	}
	if *cfg != want {
		t.Errorf("Expected %+v, got %+v", want, *cfg)
	}
}

// TestLoadConfigIgnoresInvalid verifies bad values keep the defaults
func TestLoadConfigIgnoresInvalid(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("KEYBOYE_REFERENCE_PITCH", "-440")
	t.Setenv("KEYBOYE_SCALE", "lydian")
	t.Setenv("KEYBOYE_OCTAVE", "12")
	t.Setenv("KEYBOYE_VELOCITY", "300")
	t.Setenv("KEYBOYE_BEND_RANGE", "zero")
	t.Setenv("KEYBOYE_SYNTH", "sometimes")
	t.Setenv("KEYBOYE_LOG_LEVEL", "loud")

	if cfg := LoadConfig(); *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestConfigContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := DefaultConfig()
	cfg.Tuning = "werckmeister3"
	cfg.ReferencePitch = 430
	tc, err := cfg.Context(logger)
	if err != nil {
		t.Fatal(err)
	}
	s := tc.Settings()
	if s.System != tuning.Werckmeister3 || s.ReferencePitch != 430 || s.Tonic.String() != "C" {
		t.Errorf("settings = %+v", s)
	}
	// C4 keeps its equal tempered pitch when C is the tonic
	want, _ := tuning.Equal.IndexToHz(430, 60, 0)
	if hz, err := tc.NoteToHz("C4"); err != nil || hz != want {
		t.Errorf("C4 = %v, %v; want %v", hz, err, want)
	}

	cfg.Tuning = "meantone"
	if _, err := cfg.Context(logger); !errors.Is(err, temper.ErrInvalidSetting) {
		t.Errorf("error = %v, want ErrInvalidSetting", err)
	}
	cfg.Tuning = "equal"
	cfg.Tonic = "Q"
	if _, err := cfg.Context(logger); !errors.Is(err, temper.ErrInvalidSetting) {
		t.Errorf("error = %v, want ErrInvalidSetting", err)
	}
}

func TestWinTitle(t *testing.T) {
	s := temper.Settings{ReferencePitch: 440, System: tuning.Just, Scale: temper.Major}
	if got := winTitle(s); got != "🎹 just, unset major, A4 = 440 Hz" {
		t.Errorf("winTitle = %q", got)
	}
}
