package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/minikomi/temper"
)

const sampleRate = beep.SampleRate(44100)

// synthPlayer previews tuned pitches as sine tones when no MIDI port is
// around.
type synthPlayer struct {
	tc     *temper.Context
	mixer  *beep.Mixer
	voices map[int]*beep.Ctrl
}

func newSynthPlayer(tc *temper.Context) (*synthPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	p := &synthPlayer{
		tc:     tc,
		mixer:  &beep.Mixer{},
		voices: map[int]*beep.Ctrl{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *synthPlayer) NoteOn(idx int, velocity uint8) error {
	if _, ok := p.voices[idx]; ok {
		return fmt.Errorf("can't play %d. note already running.", idx)
	}
	hz, err := p.tc.IndexToHz(idx)
	if err != nil {
		return err
	}
	sine, err := generators.SineTone(sampleRate, hz)
	if err != nil {
		return err
	}
	ctrl := &beep.Ctrl{Streamer: withVelocity(sine, velocity)}
	p.voices[idx] = ctrl

	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()
	return nil
}

func (p *synthPlayer) NoteOff(idx int) error {
	ctrl, ok := p.voices[idx]
	if !ok {
		return fmt.Errorf("can't stop %d. note is not running.", idx)
	}
	delete(p.voices, idx)

	// a Ctrl without a streamer drains and leaves the mixer
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
	return nil
}

func (p *synthPlayer) Close() error {
	speaker.Close()
	return nil
}

// withVelocity scales a voice by velocity and leaves headroom for chords.
func withVelocity(s beep.Streamer, velocity uint8) beep.Streamer {
	if velocity == 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	gain := float64(velocity) / 127 / 4
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
