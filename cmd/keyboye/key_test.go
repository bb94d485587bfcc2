package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/minikomi/temper"
	"github.com/minikomi/temper/internal/keymap"
	"github.com/minikomi/temper/tuning"
	"github.com/veandco/go-sdl2/sdl"
)

type fakePlayer struct {
	on  []int
	off []int
}

func (p *fakePlayer) NoteOn(idx int, _ uint8) error { p.on = append(p.on, idx); return nil }
func (p *fakePlayer) NoteOff(idx int) error { p.off = append(p.off, idx); return nil }
func (p *fakePlayer) Close() error { return nil }

func newTestKeyboye(tc *temper.Context) (*keyboye, *fakePlayer) {
	p := &fakePlayer{}
	return &keyboye{
		cfg:    DefaultConfig(),
		tc:     tc,
		layout: keymap.New(),
		player: p,
		active: map[sdl.Keycode]int{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, p
}

func keyEvent(sym sdl.Keycode, state uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{State: state, Keysym: sdl.Keysym{Sym: sym}}
}

// TestPressRelease verifies a key plays its note and stops on release
func TestPressRelease(t *testing.T) {
	kb, p := newTestKeyboye(temper.New())

	kb.HandleKeyEvent(keyEvent(sdl.K_h, 1))
	if len(p.on) != 1 || p.on[0] != 69 {
		t.Fatalf("Expected A4 (69) on, got %v", p.on)
	}
	if kb.active[sdl.K_h] != 69 {
		t.Errorf("Expected key h active, got %v", kb.active)
	}

	kb.HandleKeyEvent(keyEvent(sdl.K_h, 0))
	if len(p.off) != 1 || p.off[0] != 69 {
		t.Errorf("Expected A4 (69) off, got %v", p.off)
	}
	if len(kb.active) != 0 {
		t.Errorf("Expected no active keys, got %v", kb.active)
	}

	// release without press is ignored
	kb.HandleKeyEvent(keyEvent(sdl.K_a, 0))
	if len(p.off) != 1 {
		t.Errorf("Expected one NoteOff, got %v", p.off)
	}
}

// TestOctaveCommands verifies octave keys shift later notes
func TestOctaveCommands(t *testing.T) {
	kb, p := newTestKeyboye(temper.New())
	kb.HandleKeyEvent(keyEvent(sdl.K_PERIOD, 1))
	kb.HandleKeyEvent(keyEvent(sdl.K_a, 1))
	if len(p.on) != 1 || p.on[0] != 72 {
		t.Errorf("Expected C5 (72) after octave up, got %v", p.on)
	}
	kb.HandleKeyEvent(keyEvent(sdl.K_COMMA, 1))
	kb.HandleKeyEvent(keyEvent(sdl.K_COMMA, 1))
	kb.HandleKeyEvent(keyEvent(sdl.K_s, 1))
	if len(p.on) != 2 || p.on[1] != 50 {
		t.Errorf("Expected D3 (50) after two octaves down, got %v", p.on)
	}
}

// TestPressWithoutTonic verifies untunable notes are not played
func TestPressWithoutTonic(t *testing.T) {
	tc := temper.New()
	if err := tc.SetTuningSystem(tuning.Werckmeister3); err != nil {
		t.Fatal(err)
	}
	kb, p := newTestKeyboye(tc)
	kb.HandleKeyEvent(keyEvent(sdl.K_a, 1))
	if len(p.on) != 0 || len(kb.active) != 0 {
		t.Errorf("Expected nothing played, got %v", p.on)
	}
}

func TestReleaseAll(t *testing.T) {
	kb, p := newTestKeyboye(temper.New())
	for _, k := range []sdl.Keycode{sdl.K_a, sdl.K_d, sdl.K_g} {
		kb.HandleKeyEvent(keyEvent(k, 1))
	}
	kb.releaseAll()
	if len(p.off) != 3 || len(kb.active) != 0 {
		t.Errorf("Expected three notes released, got %v", p.off)
	}
}

// TestPressLogsCents verifies a tempered press reports its deviation
func TestPressLogsCents(t *testing.T) {
	tc := temper.New()
	if err := tc.SetTuningSystem(tuning.Werckmeister3); err != nil {
		t.Fatal(err)
	}
	if err := tc.SetKey("C"); err != nil {
		t.Fatal(err)
	}
	kb, p := newTestKeyboye(tc)
	var buf bytes.Buffer
	kb.logger = slog.New(slog.NewTextHandler(&buf, nil))

	kb.HandleKeyEvent(keyEvent(sdl.K_d, 1))
	if len(p.on) != 1 || p.on[0] != 64 {
		t.Fatalf("Expected E4 (64) on, got %v", p.on)
	}
	out := buf.String()
	for _, want := range []string{"note=E4", "cents=-9.77"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log, got %s", want, out)
		}
	}
	if strings.Contains(out, "cannot measure cents") {
		t.Errorf("Unexpected warning: %s", out)
	}
}
