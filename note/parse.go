package note

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrFormat is matched by every FormatError.
var ErrFormat = errors.New("invalid scientific pitch notation")

// FormatError reports text that is not <letter><accidentals><octave>.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("note: %q is not scientific pitch notation", e.Input)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

var notation = regexp.MustCompile(`^([A-G])([#b]*)([+-]?[0-9]+)$`)

// Parse converts text such as "A4", "C#5" or "Dbb-1" to a semitone index.
// Letters are uppercase only; sharps and flats are folded in written order.
// The result is not range checked, but an octave too large for the index
// to be represented as an int is a FormatError.
func Parse(text string) (int, error) {
	m := notation.FindStringSubmatch(text)
	if m == nil {
		return 0, &FormatError{Input: text}
	}
	octave, err := strconv.Atoi(m[3])
	if err != nil || !octaveFits(octave, len(m[2])) {
		return 0, &FormatError{Input: text}
	}

	index := Base(Letter(m[1][0]), octave)
	for _, acc := range m[2] {
		switch acc {
		case '#':
			index++
		case 'b':
			index--
		}
	}
	return index, nil
}

// octaveFits reports whether Base plus n accidentals stays inside int.
func octaveFits(octave, n int) bool {
	return octave <= (math.MaxInt-23-n)/12 && octave >= (math.MinInt+n)/12+1
}
