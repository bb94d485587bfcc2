package main

import "log/slog"

// port is the part of connect.Port the listing needs.
type port interface {
	Number() int
	String() string
}

// logPorts reports every port of one direction, or that there are none.
func logPorts[P port](logger *slog.Logger, direction string, ports []P) {
	if len(ports) == 0 {
		logger.Info("no MIDI ports", "direction", direction)
		return
	}
	for _, p := range ports {
		logger.Info("MIDI port", "direction", direction, "number", p.Number(), "name", p.String())
	}
}
