package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

type fakePort struct {
	n    int
	name string
}

func (p fakePort) Number() int    { return p.n }
func (p fakePort) String() string { return p.name }

func TestLogPorts(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logPorts(logger, "out", []fakePort{{0, "Synth A"}, {1, "Synth B"}})
	out := buf.String()
	for _, want := range []string{`direction=out number=0 name="Synth A"`, `number=1 name="Synth B"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log, got %s", want, out)
		}
	}

	buf.Reset()
	logPorts[fakePort](logger, "in", nil)
	if !strings.Contains(buf.String(), "no MIDI ports") {
		t.Errorf("Expected empty listing to be reported, got %s", buf.String())
	}
}
