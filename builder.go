package temper

import (
	"log/slog"

	"github.com/minikomi/temper/tuning"
)

// Builder assembles a Context. Errors surface from Build.
type Builder struct {
	ReferencePitch float64
	System         tuning.System
	SystemName     string
	Tonic          string
	Scale          ScaleType
	Logger         *slog.Logger
}

// NewBuilder starts from A4 = 440 Hz, equal temperament and no key.
func NewBuilder() *Builder {
	return &Builder{
		ReferencePitch: DefaultReferencePitch,
		System:         tuning.Equal,
		Scale:          Major,
	}
}

// WithReferencePitch sets A4 in Hz.
func (b *Builder) WithReferencePitch(hz float64) *Builder {
	b.ReferencePitch = hz
	return b
}

// WithTuningSystem selects sys and clears any registry name.
func (b *Builder) WithTuningSystem(sys tuning.System) *Builder {
	b.System = sys
	b.SystemName = ""
	return b
}

// WithTuningSystemName selects a system from the tuning registry.
func (b *Builder) WithTuningSystemName(name string) *Builder {
	b.SystemName = name
	return b
}

// WithKey sets the tonic letter and scale type.
func (b *Builder) WithKey(tonic string, scale ScaleType) *Builder {
	b.Tonic = tonic
	b.Scale = scale
	return b
}

// WithLogger sets where the Context logs; nil means slog.Default.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.Logger = logger
	return b
}

// Build validates the collected settings and returns the Context.
func (b *Builder) Build() (*Context, error) {
	c := New()
	c.logger = b.Logger
	if err := c.SetReferencePitch(b.ReferencePitch); err != nil {
		return nil, err
	}
	sys := b.System
	if b.SystemName != "" {
		found, err := lookupSystem(b.SystemName)
		if err != nil {
			return nil, err
		}
		sys = found
	}
	if err := c.SetTuningSystem(sys); err != nil {
		return nil, err
	}
	if b.Tonic != "" {
		if err := c.SetKey(b.Tonic, b.Scale); err != nil {
			return nil, err
		}
	} else {
		c.settings.Scale = b.Scale
	}
	return c, nil
}
