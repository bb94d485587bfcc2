package temper

import (
	"fmt"
	"math"
	"strings"

	"github.com/minikomi/temper/note"
	"github.com/minikomi/temper/tuning"
)

// DefaultReferencePitch is the frequency of A4 unless configured otherwise.
const DefaultReferencePitch = 440.0

// ScaleType records the mode of the key. No conversion reads it.
type ScaleType int

const (
	Major ScaleType = iota
	Minor
)

func (s ScaleType) String() string {
	switch s {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "unknown"
	}
}

// ParseScale accepts "major" or "minor" in any case.
func ParseScale(s string) (ScaleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	}
	return 0, fmt.Errorf("%w: scale %q", ErrInvalidSetting, s)
}

// Settings is an immutable snapshot of a tuning context. Its conversion
// methods read nothing else, so a Settings value can be passed freely
// between goroutines.
type Settings struct {
	ReferencePitch float64
	System         tuning.System
	Tonic          note.Letter
	Scale          ScaleType
}

// DefaultSettings is A4 = 440 Hz, equal temperament, no tonic, major.
func DefaultSettings() Settings {
	return Settings{
		ReferencePitch: DefaultReferencePitch,
		System:         tuning.Equal,
		Scale:          Major,
	}
}

func (s Settings) system() tuning.System {
	if s.System == nil {
		return tuning.Equal
	}
	return s.System
}

// IndexToHz tunes a semitone index. The index is not range checked; the
// reference pitch must be positive.
func (s Settings) IndexToHz(idx int) (float64, error) {
	if err := checkReferencePitch(s.ReferencePitch); err != nil {
		return 0, err
	}
	return s.system().IndexToHz(s.ReferencePitch, idx, s.Tonic)
}

// NoteToHz parses text and tunes it.
func (s Settings) NoteToHz(text string) (float64, error) {
	idx, err := note.Parse(text)
	if err != nil {
		return 0, err
	}
	return s.IndexToHz(idx)
}

// NoteToIndex parses text and requires the result to be a MIDI note.
func (s Settings) NoteToIndex(text string) (int, error) {
	idx, err := note.Parse(text)
	if err != nil {
		return 0, err
	}
	if err := checkIndex(idx); err != nil {
		return 0, err
	}
	return idx, nil
}

// HzToNoteIndex returns the MIDI note nearest freq. freq must be positive
// and the result always lies in [MinIndex, MaxIndex].
func (s Settings) HzToNoteIndex(freq float64) (int, error) {
	if !(freq > 0) || math.IsInf(freq, 0) {
		return 0, fmt.Errorf("%w: frequency %v Hz", ErrRange, freq)
	}
	if err := checkReferencePitch(s.ReferencePitch); err != nil {
		return 0, err
	}
	idx, err := s.system().HzToIndex(s.ReferencePitch, freq, s.Tonic)
	if err != nil {
		return 0, err
	}
	if err := checkIndex(idx); err != nil {
		return 0, err
	}
	return idx, nil
}

func checkReferencePitch(hz float64) error {
	if !(hz > 0) || math.IsInf(hz, 0) {
		return fmt.Errorf("%w: reference pitch %v Hz", ErrInvalidSetting, hz)
	}
	return nil
}
