// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package sweet implements a toggle switch on top of a native
// checkbox.
//
// The checkbox stays in the document (hidden) and remains the source
// of truth: the switch only mirrors its checked state and forwards
// clicks to it.
//
//	w := sweet.New()
//	w.Init(sweet.Options{Size: "medium"}, checkbox)
//	...
//	w.Destroy(checkbox)
package sweet

import (
	"strings"

	"github.com/dotchain/dot/streams"
	"github.com/dotchain/sweet/dom"
	"github.com/go-pkgz/lgr"
)

type instance struct {
	settings Settings

	// inline values before Init, restored by Destroy
	originalPosition, originalVisibility string

	// input classes added by Init
	addedClasses string

	input, wrapper, track, text, ball dom.Element
	checked                           *streams.Bool
}

func (inst *instance) animation() dom.AnimateOptions {
	return dom.AnimateOptions{
		Duration: inst.settings.Duration,
		Easing:   dom.Easing(inst.settings.Easing),
	}
}

// Widget installs and removes switches. It owns the state of every
// switch it installed; elements are only ever installed once per
// widget.
//
// A Widget is not safe for concurrent use.
type Widget struct {
	log       lgr.L
	instances map[dom.Element]*instance
}

// Option configures a Widget
type Option func(w *Widget)

// WithLogger sets the logger, lgr.NoOp by default
func WithLogger(l lgr.L) Option {
	return func(w *Widget) { w.log = l }
}

// New creates a widget
func New(opts ...Option) *Widget {
	w := &Widget{log: lgr.NoOp, instances: map[dom.Element]*instance{}}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Init installs a switch on each of the checkboxes. Checkboxes that
// already have one, from this widget or any other, are left alone. It returns its input so calls
// can be chained.
func (w *Widget) Init(options Options, elts ...dom.Element) []dom.Element {
	settings := Resolve(options)

	for _, elt := range elts {
		if _, ok := w.instances[elt]; ok || hasSwitch(elt) {
			w.log.Logf("[DEBUG] switch already installed, skipping")
			continue
		}

		inst := &instance{
			settings:           settings,
			originalPosition:   elt.Style("position"),
			originalVisibility: elt.Style("visibility"),
			addedClasses:       missingClasses(elt, settings.InputClass),
			input:              elt,
			checked:            settings.Checked,
		}
		w.instances[elt] = inst

		bootstrapHTML(inst)
		styleCheckbox(inst)
		bindEvents(inst)
		w.log.Logf("[DEBUG] switch installed %vx%v, checked=%v", settings.Width, settings.Height, isChecked(elt))
	}

	return elts
}

// Destroy removes the switches from the checkboxes, putting each
// checkbox back in place with its original position and visibility.
// Checkboxes without a switch are ignored.
func (w *Widget) Destroy(elts ...dom.Element) {
	for _, elt := range elts {
		inst, ok := w.instances[elt]
		if !ok {
			w.log.Logf("[DEBUG] no switch installed, nothing to destroy")
			continue
		}

		unbindEvents(inst)
		unwrapHTML(inst)

		elt.SetStyle("position", inst.originalPosition)
		elt.SetStyle("visibility", inst.originalVisibility)
		elt.RemoveClass(inst.addedClasses)

		delete(w.instances, elt)
		w.log.Logf("[DEBUG] switch destroyed")
	}
}

// Installed reports whether the checkbox has a switch
func (w *Widget) Installed(elt dom.Element) bool {
	_, ok := w.instances[elt]
	return ok
}

// Settings returns the settings the switch was installed with
func (w *Widget) Settings(elt dom.Element) (Settings, bool) {
	if inst, ok := w.instances[elt]; ok {
		return inst.settings, true
	}
	return Settings{}, false
}

// Refresh restyles the switch from the checked state of the
// checkbox. Setting checked programmatically does not fire change,
// so callers that do so refresh explicitly.
func (w *Widget) Refresh(elts ...dom.Element) {
	for _, elt := range elts {
		if inst, ok := w.instances[elt]; ok {
			mirror(inst)
		}
	}
}

// missingClasses returns the classes in names the element does not
// have yet
func missingClasses(elt dom.Element, names string) string {
	result := ""
	for _, name := range strings.Fields(names) {
		if !elt.HasClass(name) {
			if result != "" {
				result += " "
			}
			result += name
		}
	}
	return result
}
