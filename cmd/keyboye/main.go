// Command keyboye turns the computer keyboard into a tempered MIDI
// keyboard. Notes go to the first MIDI output port with pitch bends that
// carry the configured temperament, or to a sine preview with
// KEYBOYE_SYNTH=1. "keyboye list" prints the available ports.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/denizsincar29/goerror"
	"github.com/minikomi/temper"
	"github.com/minikomi/temper/internal/keymap"
	driver "github.com/minikomi/rtmididrv"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var winWidth, winHeight int32 = 800, 600

type keyboye struct {
	cfg    *Config
	tc     *temper.Context
	layout *keymap.Layout
	player Player
	active map[sdl.Keycode]int
	logger *slog.Logger
}

func winTitle(s temper.Settings) string {
	return fmt.Sprintf("🎹 %s, %s %s, A4 = %g Hz", s.System.Name(), s.Tonic, s.Scale, s.ReferencePitch)
}

func run() int {
	cfg := LoadConfig()
	logger := NewLogger(os.Stderr, cfg.LogLevel)
	e := goerror.NewError(logger)

	tc, err := cfg.Context(logger)
	e.Must(err, "Failed to build tuning context")

	// midi
	drv, err := driver.New()
	e.Must(err, "Failed to open MIDI driver")
	defer drv.Close()

	ins, err := drv.Ins()
	e.Must(err, "Failed to list MIDI inputs")

	outs, err := drv.Outs()
	e.Must(err, "Failed to list MIDI outputs")

	if len(os.Args) == 2 && os.Args[1] == "list" {
		logPorts(logger, "in", ins)
		logPorts(logger, "out", outs)
		return 0
	}

	var player Player
	if cfg.Synth || len(outs) == 0 {
		logger.Info("using sine preview", "midi_outs", len(outs))
		player, err = newSynthPlayer(tc)
		e.Must(err, "Failed to start audio")
	} else {
		logger.Info("using MIDI output", "port", outs[0].String(), "bend_range", cfg.BendRange)
		player, err = newMIDIPlayer(outs[0], tc, cfg.BendRange)
		e.Must(err, "Failed to open MIDI output")
	}
	defer player.Close()

	kb := &keyboye{
		cfg:    cfg,
		tc:     tc,
		layout: &keymap.Layout{Octave: cfg.Octave},
		player: player,
		active: map[sdl.Keycode]int{},
		logger: logger,
	}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		logger.Error("Failed to initialise SDL", "err", err)
		return 1
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(winTitle(tc.Settings()), sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		logger.Error("Failed to create window", "err", err)
		return 1
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		logger.Error("Failed to create renderer", "err", err)
		return 2
	}
	defer renderer.Destroy()

	var font *ttf.Font
	if cfg.Font != "" {
		if err := ttf.Init(); err == nil {
			defer ttf.Quit()
			if font, err = ttf.OpenFont(cfg.Font, 12); err != nil {
				logger.Warn("Failed to open font, octave labels disabled", "font", cfg.Font, "err", err)
				font = nil
			} else {
				defer font.Close()
			}
		}
	}

	kb.Draw(renderer, font)

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.KeyboardEvent:
				kb.HandleKeyEvent(ev)
				kb.Draw(renderer, font)
			case *sdl.QuitEvent:
				logger.Info("Quit")
				running = false
			}
		}
		sdl.Delay(5)
	}
	kb.releaseAll()
	return 0
}

func (kb *keyboye) releaseAll() {
	for kc := range kb.active {
		kb.release(kc)
	}
}

func main() {
	os.Exit(run())
}
