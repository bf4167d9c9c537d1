// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package sweet

import (
	"time"

	"github.com/dotchain/dot/streams"
	"github.com/dotchain/sweet/animation"
)

// Options configures a switch. Zero values mean "not provided" and
// fall back to the size preset or the defaults.
type Options struct {
	// Size is one of small, medium or large. Anything else is small.
	Size string

	Width, Height, FontSize float64
	OffText, OnText         string
	WrapperClass            string
	InputClass              string

	// Duration of the state transitions; DefaultDuration if zero.
	Duration time.Duration

	// Easing of the state transitions; animation.Swing if nil.
	Easing animation.Curve

	// Checked, when set, receives every checked value the switch
	// observes.
	Checked *streams.Bool
}

// Settings is the resolved configuration of an installed switch
type Settings struct {
	Width        float64         `yaml:"width"`
	Height       float64         `yaml:"height"`
	FontSize     float64         `yaml:"font_size"`
	OffText      string          `yaml:"off_text"`
	OnText       string          `yaml:"on_text"`
	WrapperClass string          `yaml:"wrapper_class,omitempty"`
	InputClass   string          `yaml:"input_class,omitempty"`
	Duration     time.Duration   `yaml:"duration"`
	Easing       animation.Curve `yaml:"-"`
	Checked      *streams.Bool   `yaml:"-"`
}

// Dimensions of a size preset
type Dimensions struct {
	Width, Height, FontSize float64
}

// DefaultSize is used when the size is missing or unknown
const DefaultSize = "small"

// DefaultDuration is the transition length when none is configured
const DefaultDuration = animation.DefaultDuration

var presets = map[string]Dimensions{
	"small":  {Width: 60, Height: 22, FontSize: 12},
	"medium": {Width: 80, Height: 30, FontSize: 15},
	"large":  {Width: 120, Height: 40, FontSize: 22},
}

// Preset returns the dimensions of a named size
func Preset(name string) (Dimensions, bool) {
	d, ok := presets[name]
	return d, ok
}

// Resolve merges the size preset with the explicitly provided
// options. Explicit options always win.
func Resolve(o Options) Settings {
	d, ok := Preset(o.Size)
	if !ok {
		d = presets[DefaultSize]
	}

	s := Settings{
		Width:        d.Width,
		Height:       d.Height,
		FontSize:     d.FontSize,
		OffText:      "OFF",
		OnText:       "ON",
		WrapperClass: o.WrapperClass,
		InputClass:   o.InputClass,
		Duration:     DefaultDuration,
		Easing:       animation.Swing,
		Checked:      o.Checked,
	}

	if o.Width != 0 {
		s.Width = o.Width
	}
	if o.Height != 0 {
		s.Height = o.Height
	}
	if o.FontSize != 0 {
		s.FontSize = o.FontSize
	}
	if o.OffText != "" {
		s.OffText = o.OffText
	}
	if o.OnText != "" {
		s.OnText = o.OnText
	}
	if o.Duration != 0 {
		s.Duration = o.Duration
	}
	if o.Easing != nil {
		s.Easing = o.Easing
	}
	return s
}
