// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package html

import (
	"strings"

	"github.com/dotchain/sweet/dom"
	"golang.org/x/net/html"
)

type event struct {
	typ    string
	target element
	value  string
}

func newEvent(e element, typ string) dom.Event {
	return &event{typ, e, e.Value()}
}

func (e *event) Type() string {
	return e.typ
}

func (e *event) Target() dom.Element {
	return e.target
}

func (e *event) Value() string {
	return e.value
}

func splitEvent(s string) (typ, namespace string) {
	if idx := strings.Index(s, "."); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}

func (e element) On(event string, h *dom.EventHandler) {
	typ, ns := splitEvent(event)
	listeners[e.Node] = append(listeners[e.Node], listener{typ, ns, false, h})
}

func (e element) Off(event string) {
	typ, ns := splitEvent(event)
	e.filterListeners(func(l listener) bool {
		return l.prop || (typ != "" && l.event != typ) || (ns != "" && l.namespace != ns)
	})
}

func (e element) setPropListener(typ string, h *dom.EventHandler) {
	e.filterListeners(func(l listener) bool {
		return !l.prop || l.event != typ
	})
	if h != nil {
		listeners[e.Node] = append(listeners[e.Node], listener{typ, "", true, h})
	}
}

// filterListeners keeps the listeners matching keep, dropping the
// node from the registry once it has none
func (e element) filterListeners(keep func(l listener) bool) {
	result := []listener{}
	for _, l := range listeners[e.Node] {
		if keep(l) {
			result = append(result, l)
		}
	}
	if len(result) == 0 {
		delete(listeners, e.Node)
	} else {
		listeners[e.Node] = result
	}
}

// dispatch calls the listeners on the target and then bubbles up
// through the ancestors
func (e element) dispatch(ev dom.Event) {
	for n := e.Node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		handlers := []*dom.EventHandler{}
		for _, l := range listeners[n] {
			if l.event == ev.Type() {
				handlers = append(handlers, l.EventHandler)
			}
		}
		for _, h := range handlers {
			h.Handle(ev)
		}
	}
}

func (e element) Click() {
	checkbox := e.isCheckbox()
	if checkbox {
		e.SetProp("Checked", e.Value() != "on")
	}

	e.dispatch(newEvent(e, "click"))

	if checkbox {
		e.dispatch(newEvent(e, "change"))
	}
}
