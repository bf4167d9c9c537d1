// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package animation implements the transitions used by headless
// drivers.
//
// A Timeline holds at most one running transition per target and
// property. Starting another one for the same pair retargets it from
// wherever the previous one left the value.
package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Curve maps linear progress in [0, 1] to eased progress. Curves
// must return 0 at 0 and 1 at 1 but may overshoot in between.
type Curve func(p float64) float64

// Linear returns linear progress (no easing).
func Linear(p float64) float64 {
	return p
}

// Swing is the jQuery default easing.
func Swing(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}

const springSamples = 60

// Spring returns a curve that follows a damped spring heading from 0
// to 1. An underdamped spring (damping < 1) overshoots.
//
// The spring is simulated over one second at 60fps and the samples
// are stretched to fit the transition duration.
func Spring(frequency, damping float64) Curve {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)
	samples := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for kk := 1; kk < springSamples; kk++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[kk] = pos
	}
	samples[springSamples] = 1

	return func(p float64) float64 {
		switch {
		case p <= 0:
			return 0
		case p >= 1:
			return 1
		}
		x := p * springSamples
		kk := int(x)
		return samples[kk] + (samples[kk+1]-samples[kk])*(x-float64(kk))
	}
}
