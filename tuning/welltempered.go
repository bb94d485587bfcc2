package tuning

import (
	"fmt"
	"math"

	"github.com/minikomi/temper/note"
)

// RatioTable holds the multiplier for each semitone above the tonic.
// Entry 0 is the tonic itself and must be exactly 1.
type RatioTable [12]float64

// Validate checks that every ratio is positive and finite and that the
// tonic entry is 1.
func (t RatioTable) Validate() error {
	if t[0] != 1 {
		return fmt.Errorf("%w: entry 0 is %v, want 1", ErrRatioTable, t[0])
	}
	for i, r := range t {
		if !(r > 0) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: entry %d is %v", ErrRatioTable, i, r)
		}
	}
	return nil
}

// WellTempered lays a ratio table over each octave starting at the tonic.
type WellTempered struct {
	name  string
	table RatioTable
}

// NewWellTempered validates table and returns a tonic-relative system.
func NewWellTempered(name string, table RatioTable) (*WellTempered, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrRatioTable)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &WellTempered{name: name, table: table}, nil
}

// MustWellTempered is NewWellTempered for package-level tables.
func MustWellTempered(name string, table RatioTable) *WellTempered {
	wt, err := NewWellTempered(name, table)
	if err != nil {
		panic(err)
	}
	return wt
}

func (w *WellTempered) Name() string { return w.name }

// Table returns a copy of the ratios.
func (w *WellTempered) Table() RatioTable { return w.table }

// IndexToHz finds the tonic in the octave idx belongs to, tunes it in equal
// temperament and scales it by the ratio for idx's distance above the tonic.
// A note below that tonic wraps to the previous octave's ratios and is
// halved once.
func (w *WellTempered) IndexToHz(ref float64, idx int, tonic note.Letter) (float64, error) {
	if !tonic.Valid() {
		return 0, fmt.Errorf("%s: %w", w.name, ErrNoTonic)
	}
	tonicIdx := note.Base(tonic, note.Octave(idx))
	n := ((idx-tonicIdx)%12 + 12) % 12

	freq := equalHz(ref, tonicIdx) * w.table[n]
	if idx < tonicIdx {
		freq /= 2
	}
	return freq, nil
}

// HzToIndex is not defined for ratio-table systems.
func (w *WellTempered) HzToIndex(_, _ float64, _ note.Letter) (int, error) {
	return 0, &UnsupportedError{System: w.name, Op: "hz to index"}
}
