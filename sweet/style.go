// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package sweet

import "github.com/dotchain/sweet/dom"

// Track colors
const (
	OffColor = "#DC7F6D"
	OnColor  = "#9EC369"
)

const (
	// the ball is this much taller than the track
	ballMargin = 4
	ballTop    = -3

	// space between the ball and the label
	textGap = 3

	fontFamily  = "Helvetica, Arial, sans-serif"
	textColor   = "rgba(1,1,1, 0.5)"
	trackShadow = "1px 1px 3px 1px rgba(1,1,1,.2) inset"
	ballShadow  = "-13px -14px 25px -23px rgba(1,1,1,.2) inset," +
		"-.5px -.5px 2px .5px rgba(111,111,111,.3)"
	ballBorder = "1px solid rgba(1,1,1,.1)"
)

// styleCheckbox applies the geometry of the generated elements and
// then the current state
func styleCheckbox(inst *instance) {
	s := inst.settings

	inst.wrapper.SetStyles(dom.Styles{
		Width:    dom.Px(s.Width),
		Height:   dom.Px(s.Height),
		Position: "relative",
		Cursor:   "pointer",
	})
	inst.wrapper.AddClass(s.WrapperClass)

	// the text is only set here so that its height can be measured
	inst.text.SetProp("TextContent", s.OffText)
	inst.text.SetStyles(dom.Styles{
		Position:   "absolute",
		FontSize:   dom.Px(s.FontSize),
		FontFamily: fontFamily,
		FontWeight: "bold",
		Color:      textColor,
	})
	inst.text.SetStyles(dom.Styles{
		Top: dom.Px(s.Height/2 - inst.text.Height()/2),
	})

	inst.track.SetStyles(dom.Styles{
		Width:        dom.Px(s.Width),
		Height:       dom.Px(s.Height),
		BoxShadow:    trackShadow,
		BorderRadius: dom.Px(39),
	})

	size := inst.track.Height() + ballMargin
	inst.ball.SetStyles(dom.Styles{
		Width:           dom.Px(size),
		Height:          dom.Px(size),
		BoxShadow:       ballShadow,
		Position:        "absolute",
		BackgroundColor: "white",
		BorderRadius:    dom.Size{Percent: 50},
		Border:          ballBorder,
		Top:             dom.Px(ballTop),
	})

	inst.input.SetStyles(dom.Styles{
		Visibility: "hidden",
		Position:   "absolute",
	})
	inst.input.AddClass(s.InputClass)

	styleState(inst, isChecked(inst.input))
}

func isChecked(input dom.Element) bool {
	return input.Value() == "on"
}

func styleState(inst *instance, checked bool) {
	if checked {
		styleAsChecked(inst)
	} else {
		styleAsUnchecked(inst)
	}
}

// styleAsUnchecked parks the ball on the left edge, slightly
// outside the track, with the label to its right
func styleAsUnchecked(inst *instance) {
	s := inst.settings
	ballWidth := inst.ball.Width()
	left := -(ballWidth / 3.5)

	inst.text.SetProp("TextContent", s.OffText)
	inst.text.SetStyles(dom.Styles{Left: dom.Px(left + ballWidth + textGap)})

	inst.track.Animate("background-color", OffColor, inst.animation())
	inst.ball.Animate("left", dom.Px(left).String(), inst.animation())
}

// styleAsChecked parks the ball on the right edge with the label to
// its left
func styleAsChecked(inst *instance) {
	s := inst.settings
	ballWidth := inst.ball.Width()
	left := inst.track.Width() - ballWidth/1.5

	inst.text.SetProp("TextContent", s.OnText)
	inst.text.SetStyles(dom.Styles{Left: dom.Px(left - inst.text.Width() - textGap)})

	inst.track.Animate("background-color", OnColor, inst.animation())
	inst.ball.Animate("left", dom.Px(left).String(), inst.animation())
}
