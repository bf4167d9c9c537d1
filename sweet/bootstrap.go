// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package sweet

import "github.com/dotchain/sweet/dom"

// Class names of the generated markup. External stylesheets rely on
// them.
const (
	WrapperMarker = "sc-wrapper"
	TrackMarker   = "sc-fake-checkbox"
	TextMarker    = "sc-text"
	BallMarker    = "sc-ball"
)

// bootstrapHTML wraps the input and puts the track before it:
//
//	div.sc-wrapper
//	  div.sc-fake-checkbox
//	    span.sc-text
//	    div.sc-ball
//	  input
//
// Calling it twice double-wraps.
func bootstrapHTML(inst *instance) {
	inst.text = dom.NewElement(dom.Props{Tag: "span", Class: TextMarker})
	inst.ball = dom.NewElement(dom.Props{Class: BallMarker})
	inst.track = dom.NewElement(dom.Props{Class: TrackMarker}, inst.text, inst.ball)
	inst.wrapper = dom.NewElement(dom.Props{Class: WrapperMarker})

	if parent := inst.input.Parent(); parent != nil {
		parent.ReplaceChild(inst.wrapper, inst.input)
	}
	inst.wrapper.InsertChild(0, inst.input)
	inst.wrapper.InsertChild(0, inst.track)
}

// unwrapHTML puts the input back where the wrapper was and releases
// the generated elements
func unwrapHTML(inst *instance) {
	if parent := inst.wrapper.Parent(); parent != nil {
		parent.ReplaceChild(inst.input, inst.wrapper)
	} else if inst.input.Parent() == inst.wrapper {
		inst.wrapper.RemoveChild(indexOf(inst.wrapper.Children(), inst.input))
	}
	inst.wrapper.Close()
}

// hasSwitch reports whether the input already sits in switch
// markup, possibly installed by another widget
func hasSwitch(input dom.Element) bool {
	wrapper := input.Parent()
	if wrapper == nil || !wrapper.HasClass(WrapperMarker) {
		return false
	}
	children := wrapper.Children()
	return len(children) > 0 && children[0].HasClass(TrackMarker)
}

func indexOf(elts []dom.Element, elt dom.Element) int {
	for kk, e := range elts {
		if e == elt {
			return kk
		}
	}
	return -1
}
