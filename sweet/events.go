// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package sweet

import "github.com/dotchain/sweet/dom"

// namespace of the listeners installed by the widget
const namespace = "sweetCheckbox"

func bindEvents(inst *instance) {
	inst.wrapper.On("click."+namespace, &dom.EventHandler{Handle: func(e dom.Event) {
		// the input itself is clickable even though it is hidden
		// and its click already toggles it
		if e.Target() == inst.input {
			return
		}
		inst.input.Click()
	}})

	inst.input.On("change."+namespace, &dom.EventHandler{Handle: func(e dom.Event) {
		mirrorState(inst, e.Value() == "on")
	}})
}

func unbindEvents(inst *instance) {
	inst.wrapper.Off("." + namespace)
	inst.input.Off("." + namespace)
}

// mirror copies the checked state of the input into the proxy and
// the optional stream
func mirror(inst *instance) {
	mirrorState(inst, isChecked(inst.input))
}

func mirrorState(inst *instance, checked bool) {
	styleState(inst, checked)

	if inst.checked == nil {
		return
	}
	inst.checked = inst.checked.Latest()
	if inst.checked.Value != checked {
		inst.checked = inst.checked.Update(checked)
	}
}
