package temper

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/minikomi/temper/note"
	"github.com/minikomi/temper/tuning"
)

// Context is a mutable tuning configuration.
//
// Set* calls change it for every later reader. With* calls bind a field
// only while the supplied function runs and restore the previous value on
// return, including error returns and panics. Overrides must nest: each one
// restores exactly the value it replaced.
//
// A Context is safe to share between goroutines, but an override is seen by
// every reader of the same instance while it is active. Give each goroutine
// its own Context (New, NewBuilder) and carry it with NewContext when
// overrides must stay private.
type Context struct {
	mu       sync.Mutex
	settings Settings
	logger   *slog.Logger
}

var std = New()

// Default returns the process-wide Context.
func Default() *Context { return std }

// New returns a Context holding DefaultSettings and logging to slog.Default.
func New() *Context {
	return &Context{settings: DefaultSettings()}
}

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// Settings returns a snapshot of the current configuration.
func (c *Context) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// SetReferencePitch sets the frequency of A4.
func (c *Context) SetReferencePitch(hz float64) error {
	if err := checkReferencePitch(hz); err != nil {
		return err
	}
	c.mu.Lock()
	c.settings.ReferencePitch = hz
	c.mu.Unlock()
	c.log().Debug("reference pitch set", "hz", hz)
	return nil
}

// SetTuningSystem selects the temperament.
func (c *Context) SetTuningSystem(sys tuning.System) error {
	if sys == nil {
		return fmt.Errorf("%w: nil tuning system", ErrInvalidSetting)
	}
	c.mu.Lock()
	c.settings.System = sys
	c.mu.Unlock()
	c.log().Debug("tuning system set", "system", sys.Name())
	return nil
}

// SetKey sets the tonic, a single natural letter, and the scale type,
// which defaults to Major.
func (c *Context) SetKey(tonic string, scale ...ScaleType) error {
	l, sc, err := parseKey(tonic, scale)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.settings.Tonic, c.settings.Scale = l, sc
	c.mu.Unlock()
	c.log().Debug("key set", "tonic", l, "scale", sc)
	return nil
}

// ClearKey unsets the tonic.
func (c *Context) ClearKey() {
	c.mu.Lock()
	c.settings.Tonic = 0
	c.mu.Unlock()
	c.log().Debug("key cleared")
}

// WithReferencePitch runs fn with A4 bound to hz.
func (c *Context) WithReferencePitch(hz float64, fn func() error) error {
	if err := checkReferencePitch(hz); err != nil {
		return err
	}
	return c.scoped("reference pitch", func(s *Settings) func(*Settings) {
		prev := s.ReferencePitch
		s.ReferencePitch = hz
		return func(s *Settings) { s.ReferencePitch = prev }
	}, fn)
}

// WithTuningSystem runs fn under sys.
func (c *Context) WithTuningSystem(sys tuning.System, fn func() error) error {
	if sys == nil {
		return fmt.Errorf("%w: nil tuning system", ErrInvalidSetting)
	}
	return c.scoped("tuning system", func(s *Settings) func(*Settings) {
		prev := s.System
		s.System = sys
		return func(s *Settings) { s.System = prev }
	}, fn)
}

// WithKey runs fn with the tonic and scale type bound.
func (c *Context) WithKey(tonic string, scale ScaleType, fn func() error) error {
	l, sc, err := parseKey(tonic, []ScaleType{scale})
	if err != nil {
		return err
	}
	return c.scoped("key", func(s *Settings) func(*Settings) {
		prevTonic, prevScale := s.Tonic, s.Scale
		s.Tonic, s.Scale = l, sc
		return func(s *Settings) { s.Tonic, s.Scale = prevTonic, prevScale }
	}, fn)
}

// WithTuning runs fn with the reference pitch and/or tuning system bound.
// A numeric argument is a reference pitch; a tuning.System, or the name of
// a registered one, is a tuning system. Fields not given keep their
// current values.
func (c *Context) WithTuning(fn func() error, args ...any) error {
	var (
		hz  float64
		sys tuning.System
	)
	for _, arg := range args {
		var pitch float64
		isPitch := true
		switch v := arg.(type) {
		case float64:
			pitch = v
		case float32:
			pitch = float64(v)
		case int:
			pitch = float64(v)
		case tuning.System:
			isPitch = false
			if sys != nil {
				return fmt.Errorf("%w: tuning system given twice", ErrInvalidSetting)
			}
			sys = v
		case string:
			isPitch = false
			if sys != nil {
				return fmt.Errorf("%w: tuning system given twice", ErrInvalidSetting)
			}
			found, err := lookupSystem(v)
			if err != nil {
				return err
			}
			sys = found
		default:
			return fmt.Errorf("%w: cannot override with %T", ErrInvalidSetting, arg)
		}
		if !isPitch {
			continue
		}
		if hz != 0 {
			return fmt.Errorf("%w: reference pitch given twice", ErrInvalidSetting)
		}
		if err := checkReferencePitch(pitch); err != nil {
			return err
		}
		hz = pitch
	}

	return c.scoped("tuning", func(s *Settings) func(*Settings) {
		prevHz, prevSys := s.ReferencePitch, s.System
		if hz != 0 {
			s.ReferencePitch = hz
		}
		if sys != nil {
			s.System = sys
		}
		return func(s *Settings) { s.ReferencePitch, s.System = prevHz, prevSys }
	}, fn)
}

// scoped applies bind under the lock, runs fn unlocked and always applies
// the undo bind returned.
func (c *Context) scoped(what string, bind func(*Settings) func(*Settings), fn func() error) error {
	c.mu.Lock()
	undo := bind(&c.settings)
	c.mu.Unlock()
	c.log().Debug("override enter", "field", what)

	defer func() {
		c.mu.Lock()
		undo(&c.settings)
		c.mu.Unlock()
		c.log().Debug("override exit", "field", what)
	}()
	return fn()
}

func parseKey(tonic string, scale []ScaleType) (note.Letter, ScaleType, error) {
	l, err := note.ParseLetter(tonic)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: tonic: %w", ErrInvalidSetting, err)
	}
	sc := Major
	if len(scale) > 0 {
		sc = scale[0]
	}
	if sc != Major && sc != Minor {
		return 0, 0, fmt.Errorf("%w: scale %d", ErrInvalidSetting, sc)
	}
	return l, sc, nil
}

func lookupSystem(name string) (tuning.System, error) {
	sys, ok := tuning.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown tuning system %q", ErrInvalidSetting, name)
	}
	return sys, nil
}

type ctxKey struct{}

// NewContext returns ctx carrying c.
func NewContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the Context carried by ctx, or Default.
func FromContext(ctx context.Context) *Context {
	if c, ok := ctx.Value(ctxKey{}).(*Context); ok && c != nil {
		return c
	}
	return std
}
