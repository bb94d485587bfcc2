// Package tuning maps semitone indices to frequencies and back under a
// temperament. Index 69 always sounds at the reference pitch in equal
// temperament; ratio-table temperaments are laid out relative to a tonic.
package tuning

import (
	"errors"
	"fmt"
	"math"

	"github.com/minikomi/temper/note"
)

// ReferenceIndex is the index assigned to the reference pitch (A4).
const ReferenceIndex = 69

// System converts between semitone indices and Hz.
// tonic is ignored by systems that are not tonic relative.
type System interface {
	Name() string
	IndexToHz(ref float64, idx int, tonic note.Letter) (float64, error)
	HzToIndex(ref, freq float64, tonic note.Letter) (int, error)
}

// Sentinel errors
var (
	// ErrNoTonic: a tonic-relative conversion ran with no key set.
	ErrNoTonic = errors.New("tuning: no tonic set")
	// ErrUnsupported: the system does not implement the requested conversion.
	ErrUnsupported = errors.New("tuning: conversion not supported")
	// ErrRatioTable: a ratio table is malformed.
	ErrRatioTable = errors.New("tuning: invalid ratio table")
	// ErrDuplicate: a system with the same name is already registered.
	ErrDuplicate = errors.New("tuning: system already registered")
)

// UnsupportedError names the system and conversion that is missing.
type UnsupportedError struct {
	System string
	Op     string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("tuning: %s does not support %s", e.System, e.Op)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// Cents returns how far sys places idx from equal temperament at the same
// reference pitch, in hundredths of a semitone.
func Cents(sys System, ref float64, idx int, tonic note.Letter) (float64, error) {
	hz, err := sys.IndexToHz(ref, idx, tonic)
	if err != nil {
		return 0, err
	}
	return 1200 * math.Log2(hz/equalHz(ref, idx)), nil
}
