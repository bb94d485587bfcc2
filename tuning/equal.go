package tuning

import (
	"math"

	"github.com/minikomi/temper/note"
)

// EqualTemperament divides the octave into twelve identical semitones.
type EqualTemperament struct{}

// Equal is the default system.
var Equal System = EqualTemperament{}

func (EqualTemperament) Name() string { return "equal" }

// IndexToHz returns ref * 2^((idx-69)/12).
func (EqualTemperament) IndexToHz(ref float64, idx int, _ note.Letter) (float64, error) {
	return equalHz(ref, idx), nil
}

// HzToIndex returns round(69 + 12*log2(freq/ref)), ties rounding away from
// zero. freq and ref must be positive; the caller checks.
func (EqualTemperament) HzToIndex(ref, freq float64, _ note.Letter) (int, error) {
	return roundIndex(ReferenceIndex + 12*math.Log2(freq/ref)), nil
}

func equalHz(ref float64, idx int) float64 {
	return ref * math.Pow(2, float64(idx-ReferenceIndex)/12)
}

// roundIndex rounds half away from zero: 69.5 -> 70, -0.5 -> -1.
func roundIndex(x float64) int {
	return int(math.Round(x))
}
