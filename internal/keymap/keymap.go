// Package keymap lays a one-and-a-bit octave piano over the computer
// keyboard and tracks the octave it currently sounds in.
package keymap

import "github.com/minikomi/temper/note"

// Key is a semitone offset from the C the layout is anchored to.
type Key int

const (
	C = Key(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
	HC
	HCSharp
	HD
	HDSharp
)

const (
	MinOctave     = 2
	MaxOctave     = 8
	DefaultOctave = 4
)

// Layout is the playing state of the keyboard.
type Layout struct {
	Octave int
}

func New() *Layout {
	return &Layout{Octave: DefaultOctave}
}

// Index is the semitone index k sounds at in the current octave.
func (l *Layout) Index(k Key) int {
	return note.Base(note.C, l.Octave) + int(k)
}

// Name spells k in scientific pitch notation.
func (l *Layout) Name(k Key) string {
	return note.Name(l.Index(k))
}

func (l *Layout) OctaveUp() bool {
	if l.Octave >= MaxOctave {
		return false
	}
	l.Octave++
	return true
}

func (l *Layout) OctaveDown() bool {
	if l.Octave <= MinOctave {
		return false
	}
	l.Octave--
	return true
}

// IsBlack reports whether index falls on a black piano key.
func IsBlack(index int) bool {
	switch ((index % 12) + 12) % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}
