// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build js

// Package js implements a basic gopherjs driver for dom
package js

import (
	"strings"
	"time"
	"unsafe"

	"github.com/dotchain/sweet/animation"
	"github.com/dotchain/sweet/dom"
	"github.com/gopherjs/gopherjs/js"
)

func init() {
	dom.RegisterDriver(driver{})
}

// elements maps DOM nodes to their element, so that an element
// reached via Parent or Children has the same identity (and
// listeners) as the one that was created or wrapped first. A
// WeakMap lets a node and its element go once the page drops the
// node.
var elements = js.Global.Get("WeakMap").New()

// Wrap returns the element of an existing DOM node
func Wrap(n *js.Object) dom.Element {
	return wrap(n)
}

func wrap(n *js.Object) *element {
	if elements.Call("has", n).Bool() {
		jso := elements.Call("get", n)
		return (*element)(unsafe.Pointer(jso.Unsafe())) // nolint
	}
	e := &element{n: n, current: map[string]string{}}
	elements.Call("set", n, js.InternalObject(e))
	return e
}

type driver struct{}

func (d driver) NewElement(props dom.Props, children ...dom.Element) dom.Element {
	tag := strings.ToLower(props.Tag)
	if tag == "" {
		tag = "div"
	}
	elt := wrap(js.Global.Get("document").Call("createElement", tag))
	for k, v := range props.ToMap() {
		elt.SetProp(k, v)
	}
	for kk, child := range children {
		elt.InsertChild(kk, child)
	}
	return elt
}

type listener struct {
	event, namespace string
	prop             bool
	*dom.EventHandler
	fn *js.Object
}

type element struct {
	n         *js.Object
	listeners []*listener

	// last values applied by Animate: browsers report inline
	// colors as rgb() which loses the requested form
	current map[string]string
}

func (e *element) tag() string {
	return strings.ToLower(e.n.Get("tagName").String())
}

func (e *element) SetProp(key string, value interface{}) {
	switch key {
	case "Tag":
		tag := strings.ToLower(value.(string))
		if tag == "" {
			tag = "div"
		}
		if tag != e.tag() {
			panic("Cannot change the tag of an element: " + tag)
		}
	case "Checked":
		e.n.Set("checked", value.(bool))
	case "Type", "Class", "ID":
		e.updateAttribute(strings.ToLower(key), value.(string))
	case "TextContent":
		if e.tag() == "input" {
			e.n.Set("value", value.(string))
		} else {
			e.n.Set("textContent", value.(string))
		}
	case "Styles":
		e.updateAttribute("style", value.(dom.Styles).String())
	case "OnChange":
		e.setPropListener("change", value.(*dom.EventHandler))
	case "OnClick":
		e.setPropListener("click", value.(*dom.EventHandler))
	default:
		panic("Unknown key: " + key)
	}
}

func (e *element) updateAttribute(key, value string) {
	if value == "" {
		e.n.Call("removeAttribute", key)
	} else {
		e.n.Call("setAttribute", key, value)
	}
}

func (e *element) Value() string {
	if e.tag() == "input" && e.n.Get("type").String() == "checkbox" {
		if e.n.Get("checked").Bool() {
			return "on"
		}
		return "off"
	}
	if e.tag() == "input" {
		return e.n.Get("value").String()
	}
	return e.n.Get("textContent").String()
}

func (e *element) Parent() dom.Element {
	if p := e.n.Get("parentElement"); p != nil {
		return wrap(p)
	}
	return nil
}

func (e *element) Children() []dom.Element {
	result := []dom.Element{}
	children := e.n.Get("children")
	for kk := 0; kk < children.Length(); kk++ {
		result = append(result, wrap(children.Index(kk)))
	}
	return result
}

func (e *element) child(index int) *js.Object {
	children := e.n.Get("children")
	if index < children.Length() {
		return children.Index(index)
	}
	return nil
}

func (e *element) RemoveChild(index int) {
	n := e.child(index)
	if n == nil {
		panic(index)
	}
	e.n.Call("removeChild", n)
}

func (e *element) InsertChild(index int, elt dom.Element) {
	n := elt.(*element).n
	if p := n.Get("parentNode"); p != nil {
		p.Call("removeChild", n)
	}

	if before := e.child(index); before != nil {
		e.n.Call("insertBefore", n, before)
	} else {
		e.n.Call("appendChild", n)
	}
}

func (e *element) ReplaceChild(elt, old dom.Element) {
	n, o := elt.(*element).n, old.(*element).n
	if o.Get("parentNode") != e.n {
		panic("ReplaceChild: not a child")
	}
	if n != o {
		e.n.Call("replaceChild", n, o)
	}
}

func (e *element) style() *js.Object {
	return e.n.Get("style")
}

func (e *element) Style(name string) string {
	return e.style().Call("getPropertyValue", name).String()
}

func (e *element) SetStyle(name, value string) {
	delete(e.current, name)
	if value == "" {
		e.style().Call("removeProperty", name)
	} else {
		e.style().Call("setProperty", name, value)
	}
}

func (e *element) SetStyles(styles dom.Styles) {
	for _, pair := range styles.Entries() {
		e.SetStyle(pair[0], pair[1])
	}
}

func (e *element) HasClass(name string) bool {
	return e.n.Get("classList").Call("contains", name).Bool()
}

func (e *element) AddClass(names string) {
	for _, name := range strings.Fields(names) {
		e.n.Get("classList").Call("add", name)
	}
}

func (e *element) RemoveClass(names string) {
	for _, name := range strings.Fields(names) {
		e.n.Get("classList").Call("remove", name)
	}
	if e.n.Get("classList").Length() == 0 {
		e.n.Call("removeAttribute", "class")
	}
}

func (e *element) Width() float64 {
	if w, ok := dom.ParsePx(e.Style("width")); ok {
		return w
	}
	return e.n.Call("getBoundingClientRect").Get("width").Float()
}

func (e *element) Height() float64 {
	if h, ok := dom.ParsePx(e.Style("height")); ok {
		return h
	}
	return e.n.Call("getBoundingClientRect").Get("height").Float()
}

func (e *element) Click() {
	e.n.Call("click")
}

func (e *element) Close() {
	for _, child := range e.Children() {
		child.Close()
	}
	for _, l := range e.listeners {
		e.n.Call("removeEventListener", l.event, l.fn)
	}
	e.listeners = nil
	timeline.Stop(e)
	elements.Call("delete", e.n)
}

// DOMNode returns the underlying DOM node
func (e *element) DOMNode() *js.Object {
	return e.n
}

func splitEvent(s string) (typ, namespace string) {
	if idx := strings.Index(s, "."); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}

func (e *element) addListener(l *listener) {
	h := l.EventHandler
	l.fn = js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		h.Handle(newEvent(args[0]))
		return nil
	})
	e.n.Call("addEventListener", l.event, l.fn, false)
	e.listeners = append(e.listeners, l)
}

func (e *element) On(event string, h *dom.EventHandler) {
	typ, ns := splitEvent(event)
	e.addListener(&listener{event: typ, namespace: ns, EventHandler: h})
}

func (e *element) Off(event string) {
	typ, ns := splitEvent(event)
	e.removeListeners(func(l *listener) bool {
		return !l.prop && (typ == "" || l.event == typ) && (ns == "" || l.namespace == ns)
	})
}

func (e *element) setPropListener(typ string, h *dom.EventHandler) {
	e.removeListeners(func(l *listener) bool {
		return l.prop && l.event == typ
	})
	if h != nil {
		e.addListener(&listener{event: typ, prop: true, EventHandler: h})
	}
}

func (e *element) removeListeners(match func(l *listener) bool) {
	result := e.listeners[:0]
	for _, l := range e.listeners {
		if match(l) {
			e.n.Call("removeEventListener", l.event, l.fn)
		} else {
			result = append(result, l)
		}
	}
	e.listeners = result
}

type event struct {
	jso *js.Object
}

func newEvent(jso *js.Object) dom.Event {
	return event{jso}
}

func (e event) Type() string {
	return e.jso.Get("type").String()
}

func (e event) Target() dom.Element {
	return wrap(e.jso.Get("target"))
}

func (e event) Value() string {
	return wrap(e.jso.Get("target")).Value()
}

// timeline runs all transitions, stepped by animation frames
var timeline = animation.NewTimeline()

var (
	frameScheduled bool
	lastFrame      float64
)

func (e *element) Animate(name, value string, opts dom.AnimateOptions) {
	from := e.Style(name)
	if v, ok := e.current[name]; ok {
		from = v
	}
	key := animation.Key{Target: e, Property: name}
	apply := func(v string) {
		e.SetStyle(name, v)
		e.current[name] = v
	}
	timeline.Start(key, animation.TweenValue(from, value), opts.Duration, animation.Curve(opts.Easing), apply)
	scheduleFrame()
}

func scheduleFrame() {
	if frameScheduled || len(timeline.Running()) == 0 {
		return
	}
	frameScheduled = true
	lastFrame = js.Global.Get("performance").Call("now").Float()
	js.Global.Call("requestAnimationFrame", frame)
}

func frame(now float64) {
	frameScheduled = false
	// the frame timestamp can precede the time it was requested at
	if elapsed := now - lastFrame; elapsed > 0 {
		timeline.Advance(time.Duration(elapsed * float64(time.Millisecond)))
	}
	scheduleFrame()
}
