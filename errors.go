package temper

import (
	"errors"
	"fmt"

	"github.com/minikomi/temper/note"
	"github.com/minikomi/temper/tuning"
)

// MIDI note range enforced by NoteToIndex and HzToNoteIndex.
const (
	MinIndex = 0
	MaxIndex = 127
)

// Sentinel errors
var (
	ErrFormat         = note.ErrFormat
	ErrNoTonic        = tuning.ErrNoTonic
	ErrUnsupported    = tuning.ErrUnsupported
	ErrRange          = errors.New("temper: out of range")
	ErrInvalidSetting = errors.New("temper: invalid setting")
)

// RangeError reports an index outside [MinIndex, MaxIndex].
type RangeError struct {
	Index int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("temper: index %d outside MIDI range [%d, %d]", e.Index, MinIndex, MaxIndex)
}

func (e *RangeError) Unwrap() error { return ErrRange }

func checkIndex(idx int) error {
	if idx < MinIndex || idx > MaxIndex {
		return &RangeError{Index: idx}
	}
	return nil
}
