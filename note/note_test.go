package note

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"A4", 69},
		{"C4", 60},
		{"C#4", 61},
		{"Dbb4", 60},
		{"B#3", 60},
		{"C-1", 0},
		{"C-2", -12},
		{"Cb-1", -1},
		{"G9", 127},
		{"G#9", 128},
		{"C#b4", 60}, // mixed runs fold in written order
		{"E+4", 64},
		{"A10", 141},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, input := range []string{"H4", "C", "C4.5", "", "c4", "4", " C4", "C4 ", "C#", "Cx4", "C--1", "C99999999999999999999",
		"C4611686018427387908", "A4611686018427387908", "C#768614336404564649", "Cb-768614336404564650"} {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
			continue
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrFormat", input, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Input != input {
			t.Errorf("Parse(%q) error does not carry the input: %v", input, err)
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	for i := -30; i <= 140; i++ {
		got, err := Parse(Name(i))
		if err != nil {
			t.Fatalf("Parse(Name(%d)) = %q: %v", i, Name(i), err)
		}
		if got != i {
			t.Errorf("Parse(Name(%d)) = %d", i, got)
		}
	}
	if got := Name(61); got != "C#4" {
		t.Errorf("Name(61) = %q, want C#4", got)
	}
	if got := Name(-1); got != "B-2" {
		t.Errorf("Name(-1) = %q, want B-2", got)
	}
}

func TestOctave(t *testing.T) {
	tests := []struct{ index, want int }{
		{60, 4}, {71, 4}, {72, 5}, {12, 0}, {11, -1}, {0, -1}, {-1, -2}, {-12, -2}, {-13, -3},
	}
	for _, tt := range tests {
		if got := Octave(tt.index); got != tt.want {
			t.Errorf("Octave(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestParseLetter(t *testing.T) {
	l, err := ParseLetter("F")
	if err != nil || l != F {
		t.Fatalf("ParseLetter(F) = %v, %v", l, err)
	}
	for _, bad := range []string{"", "f", "H", "C#", "CD"} {
		if _, err := ParseLetter(bad); !errors.Is(err, ErrFormat) {
			t.Errorf("ParseLetter(%q) error = %v, want ErrFormat", bad, err)
		}
	}
	var unset Letter
	if unset.Valid() {
		t.Error("zero Letter should be invalid")
	}
	if unset.String() != "unset" {
		t.Errorf("zero Letter String() = %q", unset.String())
	}
}

func TestBase(t *testing.T) {
	for i, l := range Letters {
		want := []int{60, 62, 64, 65, 67, 69, 71}[i]
		if got := Base(l, 4); got != want {
			t.Errorf("Base(%s, 4) = %d, want %d", l, got, want)
		}
	}
}
