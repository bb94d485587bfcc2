// Package note converts scientific pitch notation ("C#5") to semitone
// indices anchored at MIDI note 0 (C-1) and back.
package note

import "fmt"

// Letter is a natural note name. The zero value is "no letter".
type Letter byte

const (
	C Letter = 'C'
	D Letter = 'D'
	E Letter = 'E'
	F Letter = 'F'
	G Letter = 'G'
	A Letter = 'A'
	B Letter = 'B'
)

// Letters lists the naturals in octave order.
var Letters = [7]Letter{C, D, E, F, G, A, B}

// Offset returns the semitone distance from C within an octave.
func (l Letter) Offset() int {
	switch l {
	case C:
		return 0
	case D:
		return 2
	case E:
		return 4
	case F:
		return 5
	case G:
		return 7
	case A:
		return 9
	case B:
		return 11
	default:
		return -1
	}
}

// Valid reports whether l is one of the seven naturals.
func (l Letter) Valid() bool {
	return l.Offset() >= 0
}

func (l Letter) String() string {
	if !l.Valid() {
		return "unset"
	}
	return string(rune(l))
}

// ParseLetter reads a single uppercase natural.
func ParseLetter(s string) (Letter, error) {
	if len(s) != 1 || !Letter(s[0]).Valid() {
		return 0, &FormatError{Input: s}
	}
	return Letter(s[0]), nil
}

// Base is the accidental-free index of letter at octave: C4 = 60.
func Base(l Letter, octave int) int {
	return l.Offset() + octave*12 + 12
}

// Octave returns the scientific pitch octave an index falls in,
// rounding toward negative infinity (index 60 is octave 4, index 0 is -1).
func Octave(index int) int {
	return floorDiv(index-12, 12)
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name spells index with sharps, e.g. 61 -> "C#4".
func Name(index int) string {
	pc := ((index % 12) + 12) % 12
	return fmt.Sprintf("%s%d", sharpNames[pc], Octave(index))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
