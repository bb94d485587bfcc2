// Package temper converts between scientific pitch notation, MIDI-style
// semitone indices and frequencies under a configurable temperament.
//
// The package-level functions read the process-wide Default context:
//
//	hz, err := temper.NoteToHz("A4") // 440
//
//	temper.SetTuningSystem(tuning.Werckmeister3)
//	temper.SetKey("C")
//	hz, err = temper.NoteToHz("E4")
//
// Overrides are scoped to a function:
//
//	temper.WithReferencePitch(430, func() error {
//		hz, err = temper.NoteToHz("A4") // 430
//		return err
//	})
package temper

import "github.com/minikomi/temper/tuning"

// IndexToHz tunes idx with the current settings.
func (c *Context) IndexToHz(idx int) (float64, error) {
	return c.Settings().IndexToHz(idx)
}

// NoteToHz parses text and tunes it with the current settings.
func (c *Context) NoteToHz(text string) (float64, error) {
	return c.Settings().NoteToHz(text)
}

// NoteToIndex parses text into a MIDI note number.
func (c *Context) NoteToIndex(text string) (int, error) {
	return c.Settings().NoteToIndex(text)
}

// HzToNoteIndex returns the MIDI note nearest freq.
func (c *Context) HzToNoteIndex(freq float64) (int, error) {
	return c.Settings().HzToNoteIndex(freq)
}

// NoteToHz converts text to Hz under the Default context.
func NoteToHz(text string) (float64, error) { return std.NoteToHz(text) }

// NoteToIndex parses text under the Default context and requires a MIDI note.
func NoteToIndex(text string) (int, error) { return std.NoteToIndex(text) }

// HzToNoteIndex returns the MIDI note nearest freq under the Default context.
func HzToNoteIndex(freq float64) (int, error) { return std.HzToNoteIndex(freq) }

// IndexToHz tunes idx under the Default context.
func IndexToHz(idx int) (float64, error) { return std.IndexToHz(idx) }

// SetReferencePitch sets A4 on the Default context.
func SetReferencePitch(hz float64) error { return std.SetReferencePitch(hz) }

// SetTuningSystem selects the temperament of the Default context.
func SetTuningSystem(sys tuning.System) error { return std.SetTuningSystem(sys) }

// SetKey sets the tonic and scale type of the Default context.
func SetKey(tonic string, scale ...ScaleType) error { return std.SetKey(tonic, scale...) }

// WithReferencePitch runs fn with A4 bound on the Default context.
func WithReferencePitch(hz float64, fn func() error) error {
	return std.WithReferencePitch(hz, fn)
}

// WithTuningSystem runs fn with sys bound on the Default context.
func WithTuningSystem(sys tuning.System, fn func() error) error {
	return std.WithTuningSystem(sys, fn)
}

// WithKey runs fn with the key bound on the Default context.
func WithKey(tonic string, scale ScaleType, fn func() error) error {
	return std.WithKey(tonic, scale, fn)
}

// WithTuning runs fn with the given overrides bound on the Default context.
func WithTuning(fn func() error, args ...any) error {
	return std.WithTuning(fn, args...)
}
