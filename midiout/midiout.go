// Package midiout plays tempered pitches on ordinary 12-note MIDI
// instruments. Each pitch class gets its own channel, and a pitch bend on
// that channel moves the key to the frequency the tuning context assigns.
package midiout

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gomidi/connect"
	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"
)

// DefaultBendRange is the General MIDI pitch bend sensitivity in semitones.
const DefaultBendRange = 2

// StandardPitch is the A4 a receiving synthesizer is assumed to be tuned to.
const StandardPitch = 440.0

// Converter tunes a semitone index. *temper.Context and temper.Settings
// both satisfy it.
type Converter interface {
	IndexToHz(idx int) (float64, error)
}

var (
	ErrKeyRange  = errors.New("midiout: key outside MIDI range")
	ErrBendRange = errors.New("midiout: deviation exceeds pitch bend range")
)

type midiWriter struct {
	wr              midi.Writer
	conv            Converter
	bendRange       float64
	noteState       [16][128]bool
	bend            [16]int16
	bendSent        [16]bool
	noConsolidation bool
}

// Writer sends NoteOn/NoteOff with the pitch bend each note needs.
type Writer struct {
	*midiWriter
}

// Option configures a Writer.
type Option func(*midiWriter)

// WithBendRange sets the receiver's pitch bend sensitivity in semitones.
func WithBendRange(semitones float64) Option {
	return func(w *midiWriter) { w.bendRange = semitones }
}

// NoConsolidation lets repeated NoteOn/NoteOff through unchecked.
func NoConsolidation() Option {
	return func(w *midiWriter) { w.noConsolidation = true }
}

// NewWriter encodes to dest. Running status is disabled so every message is
// self-contained.
func NewWriter(dest io.Writer, conv Converter, opts ...Option) *Writer {
	w := &midiWriter{
		wr:        midiwriter.New(dest, midiwriter.NoRunningStatus()),
		conv:      conv,
		bendRange: DefaultBendRange,
	}
	for _, opt := range opts {
		opt(w)
	}
	return &Writer{w}
}

type outWriter struct {
	out connect.Out
}

func (w *outWriter) Write(b []byte) (int, error) {
	return len(b), w.out.Send(b)
}

// Out adapts a MIDI output port to io.Writer.
func Out(out connect.Out) io.Writer {
	return &outWriter{out}
}

// WriteTo returns a Writer sending to a MIDI output port.
func WriteTo(out connect.Out, conv Converter, opts ...Option) *Writer {
	return NewWriter(Out(out), conv, opts...)
}

// ChannelFor spreads the twelve pitch classes over channels 0-12,
// leaving out channel 9, which General MIDI reserves for percussion.
func ChannelFor(key uint8) channel.Channel {
	pc := key % 12
	if pc >= 9 {
		pc++
	}
	return channel.Channel(pc)
}

// Cents returns how far the converter puts key from a synthesizer tuned to
// equal temperament at StandardPitch.
func (w *midiWriter) Cents(key uint8) (float64, error) {
	hz, err := w.conv.IndexToHz(int(key))
	if err != nil {
		return 0, err
	}
	standard := StandardPitch * math.Pow(2, float64(int(key)-69)/12)
	return 1200 * math.Log2(hz/standard), nil
}

// BendValue converts a deviation in cents to a 14-bit signed bend for a
// receiver with the given sensitivity.
func BendValue(cents, bendRange float64) (int16, error) {
	if bendRange <= 0 {
		return 0, fmt.Errorf("%w: range %v", ErrBendRange, bendRange)
	}
	v := math.Round(cents / (bendRange * 100) * 8192)
	if v < -8192 || v > 8191 {
		return 0, fmt.Errorf("%w: %.2f cents with ±%v semitones", ErrBendRange, cents, bendRange)
	}
	return int16(v), nil
}

// NoteOn bends the note's channel if needed and starts idx.
func (w *midiWriter) NoteOn(idx int, velocity uint8) error {
	key, err := toKey(idx)
	if err != nil {
		return err
	}
	cents, err := w.Cents(key)
	if err != nil {
		return err
	}
	bend, err := BendValue(cents, w.bendRange)
	if err != nil {
		return err
	}
	ch := ChannelFor(key)
	msg := ch.NoteOn(key, velocity)
	// a rejected note must not retune the one already sounding
	if err := w.checkState(msg); err != nil {
		return err
	}
	if !w.bendSent[ch] || w.bend[ch] != bend {
		if err := w.wr.Write(ch.Pitchbend(bend)); err != nil {
			return err
		}
		w.bend[ch], w.bendSent[ch] = bend, true
	}
	return w.Write(msg)
}

// NoteOff stops idx.
func (w *midiWriter) NoteOff(idx int) error {
	key, err := toKey(idx)
	if err != nil {
		return err
	}
	return w.Write(ChannelFor(key).NoteOff(key))
}

func (w *midiWriter) Write(msg midi.Message) error {
	if err := w.checkState(msg); err != nil {
		return err
	}
	if !w.noConsolidation {
		switch m := msg.(type) {
		case channel.NoteOn:
			w.noteState[m.Channel()][m.Key()] = m.Velocity() > 0
		case channel.NoteOff:
			w.noteState[m.Channel()][m.Key()] = false
		case channel.NoteOffVelocity:
			w.noteState[m.Channel()][m.Key()] = false
		}
	}
	return w.wr.Write(msg)
}

// checkState rejects a NoteOn for a running key and a NoteOff for a
// silent one.
func (w *midiWriter) checkState(msg midi.Message) error {
	if w.noConsolidation {
		return nil
	}
	switch m := msg.(type) {
	case channel.NoteOn:
		if m.Velocity() > 0 && w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note already running.", msg)
		}
		if m.Velocity() == 0 && !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
	case channel.NoteOff:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
	case channel.NoteOffVelocity:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
	}
	return nil
}

func toKey(idx int) (uint8, error) {
	if idx < 0 || idx > 127 {
		return 0, fmt.Errorf("%w: %d", ErrKeyRange, idx)
	}
	return uint8(idx), nil
}
