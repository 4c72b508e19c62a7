/*
Package emotion implements the scalar affect field underlying the surface.

Five emotion intensities are closed-form functions of a point (x, y) in the
plane of expectation and perception, together with a set of parameters.
Each intensity is

	tanh(κ · w · Δ · exp(-λ·T))

where Δ is a discrepancy between perception and expectation, w combines
attachment, confidence, acceptance and perspective weights, κ is a
per-emotion sensitivity and λ a per-emotion decay rate. Sadness is reported
with negative sign. The surface height is the κ-weighted average of all five
intensities, scaled by 2.

The model is a fixed analytic formula. It is not calibrated against any data.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package emotion

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'emotion'
func tracer() tracing.Trace {
	return tracing.Select("emotion")
}

// ErrInvalidParams indicates a parameter set containing NaN or ±Inf.
var ErrInvalidParams = errors.New("emotional parameters must be finite")

// Params is an immutable set of emotional parameters. It is passed by value
// everywhere and never mutated by this module.
//
// The zero value describes a flat surface, as the attachment weight V is 0.
type Params struct {
	EP  float64 // expectation
	P   float64 // perception
	V   float64 // attachment weight, in [0,1]
	SC  float64 // source confidence, in [0,1]
	Acc float64 // acceptance, in [0,1]
	Wp  float64 // perspective weight, in [0,1]
	T   float64 // elapsed time, ≥ 0
}

// At returns a copy of p with expectation and perception replaced by the
// plane coordinates x and y.
func (p Params) At(x, y float64) Params {
	p.EP, p.P = x, y
	return p
}

// WithPerspective returns a copy of p with perspective weight w.
func (p Params) WithPerspective(w float64) Params {
	p.Wp = w
	return p
}

// Base returns the point (EP, P) the parameters describe.
func (p Params) Base() (float64, float64) {
	return p.EP, p.P
}

// Validate checks that all fields are finite. Ranges are not enforced, as
// all formulas stay defined for every real input.
func (p Params) Validate() error {
	fields := [...]struct {
		name  string
		value float64
	}{
		{"EP", p.EP}, {"P", p.P}, {"V", p.V}, {"SC", p.SC},
		{"Acc", p.Acc}, {"Wp", p.Wp}, {"T", p.T},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			tracer().Errorf("parameter %s = %g", f.name, f.value)
			return fmt.Errorf("%w: %s = %g", ErrInvalidParams, f.name, f.value)
		}
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("{EP=%g P=%g V=%g SC=%g Acc=%g Wp=%g T=%g}",
		p.EP, p.P, p.V, p.SC, p.Acc, p.Wp, p.T)
}
