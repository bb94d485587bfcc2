package main

import (
	"github.com/minikomi/temper/internal/keymap"
	"github.com/minikomi/temper/note"
	"github.com/minikomi/temper/tuning"
	"github.com/veandco/go-sdl2/sdl"
)

var keyToNote = map[sdl.Keycode]keymap.Key{
	sdl.K_a: keymap.C,
	sdl.K_w: keymap.CSharp,
	sdl.K_s: keymap.D,
	sdl.K_e: keymap.DSharp,
	sdl.K_d: keymap.E,
	sdl.K_f: keymap.F,
	sdl.K_t: keymap.FSharp,
	sdl.K_g: keymap.G,
	sdl.K_y: keymap.GSharp,
	sdl.K_h: keymap.A,
	sdl.K_u: keymap.ASharp,
	sdl.K_j: keymap.B,
	// high octave
	sdl.K_k: keymap.HC,
	sdl.K_o: keymap.HCSharp,
	sdl.K_l: keymap.HD,
	sdl.K_p: keymap.HDSharp,
}

var keyToCommand = map[sdl.Keycode]string{
	sdl.K_COMMA:  "octave down",
	sdl.K_PERIOD: "octave up",
}

func (kb *keyboye) logKeyEvent(ev *sdl.KeyboardEvent) {
	kb.logger.Debug("keyboard",
		"ms", ev.Timestamp, "type", ev.Type, "sym", string(rune(ev.Keysym.Sym)),
		"modifiers", ev.Keysym.Mod, "state", ev.State, "repeat", ev.Repeat)
}

func (kb *keyboye) HandleKeyEvent(ev *sdl.KeyboardEvent) {
	kc := ev.Keysym.Sym

	k, notePressed := keyToNote[kc]
	command, commandPressed := keyToCommand[kc]

	switch {
	case notePressed:
		// first keydown = ev.State = 1, ev.Repeat = 0
		switch {
		case ev.State == 1 && ev.Repeat == 0:
			kb.press(kc, kb.layout.Index(k))
		case ev.State == 0:
			kb.release(kc)
		}
	case commandPressed:
		if ev.State == 1 && ev.Repeat == 0 {
			moved := false
			switch command {
			case "octave down":
				moved = kb.layout.OctaveDown()
			case "octave up":
				moved = kb.layout.OctaveUp()
			}
			kb.logger.Info(command, "octave", kb.layout.Octave, "moved", moved)
		}
	default:
		kb.logKeyEvent(ev)
	}
}

func (kb *keyboye) press(kc sdl.Keycode, idx int) {
	s := kb.tc.Settings()
	hz, err := s.IndexToHz(idx)
	if err != nil {
		kb.logger.Warn("cannot tune note", "index", idx, "err", err)
		return
	}
	cents, err := tuning.Cents(s.System, s.ReferencePitch, idx, s.Tonic)
	if err != nil {
		kb.logger.Warn("cannot measure cents", "index", idx, "err", err)
	}
	if err := kb.player.NoteOn(idx, kb.cfg.Velocity); err != nil {
		kb.logger.Warn("note on failed", "index", idx, "err", err)
		return
	}
	kb.active[kc] = idx
	kb.logger.Info("pressed", "note", note.Name(idx), "index", idx, "hz", hz, "cents", cents)
}

func (kb *keyboye) release(kc sdl.Keycode) {
	idx, ok := kb.active[kc]
	if !ok {
		return
	}
	delete(kb.active, kc)
	if err := kb.player.NoteOff(idx); err != nil {
		kb.logger.Warn("note off failed", "index", idx, "err", err)
		return
	}
	kb.logger.Info("released", "note", note.Name(idx), "index", idx)
}
