package main

import (
	"github.com/gomidi/connect"
	"github.com/minikomi/temper"
	"github.com/minikomi/temper/midiout"
)

// Player sounds semitone indices.
type Player interface {
	NoteOn(idx int, velocity uint8) error
	NoteOff(idx int) error
	Close() error
}

type midiPlayer struct {
	out connect.Out
	wr  *midiout.Writer
}

func newMIDIPlayer(out connect.Out, tc *temper.Context, bendRange float64) (*midiPlayer, error) {
	if err := out.Open(); err != nil {
		return nil, err
	}
	return &midiPlayer{
		out: out,
		wr:  midiout.WriteTo(out, tc, midiout.WithBendRange(bendRange)),
	}, nil
}

func (p *midiPlayer) NoteOn(idx int, velocity uint8) error { return p.wr.NoteOn(idx, velocity) }
func (p *midiPlayer) NoteOff(idx int) error { return p.wr.NoteOff(idx) }
func (p *midiPlayer) Close() error { return p.out.Close() }
