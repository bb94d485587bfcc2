package tuning

import "math"

var fourthRoot2 = math.Pow(2, 0.25)

// Werckmeister III ("correct temperament no. 1"): the fifths C-G, G-D, D-A
// and B-F# are each narrowed by a quarter of the Pythagorean comma.
var WerckmeisterIII = RatioTable{
	1,
	256.0 / 243,
	64.0 / 81 * math.Sqrt2,
	32.0 / 27,
	256.0 / 243 * fourthRoot2,
	4.0 / 3,
	1024.0 / 729,
	8.0 / 9 * math.Pow(2, 0.75),
	128.0 / 81,
	1024.0 / 729 * fourthRoot2,
	16.0 / 9,
	128.0 / 81 * fourthRoot2,
}

// FiveLimitJust is the symmetric 5-limit just intonation scale.
var FiveLimitJust = RatioTable{
	1,
	16.0 / 15,
	9.0 / 8,
	6.0 / 5,
	5.0 / 4,
	4.0 / 3,
	45.0 / 32,
	3.0 / 2,
	8.0 / 5,
	5.0 / 3,
	9.0 / 5,
	15.0 / 8,
}

// Built-in ratio-table systems.
var (
	Werckmeister3 = MustWellTempered("werckmeister3", WerckmeisterIII)
	Just          = MustWellTempered("just", FiveLimitJust)
)
