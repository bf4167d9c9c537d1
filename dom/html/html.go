// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package html implements a basic html driver for dom
//
// It uses "golang.org/x/net/html" as the basis. Animations run on a
// package timeline which only moves via Advance and Settle.
package html

import (
	"bytes"
	"sort"
	"strings"

	"github.com/dotchain/sweet/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func init() {
	dom.RegisterDriver(driver{})
}

type driver struct{}

func (d driver) NewElement(props dom.Props, children ...dom.Element) dom.Element {
	tag := strings.ToLower(props.Tag)
	if tag == "" {
		tag = "div"
	}
	a := atom.Lookup([]byte(tag))
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     tag,
	}
	elt := wrap(n)
	for k, v := range props.ToMap() {
		elt.SetProp(k, v)
	}
	for kk, child := range children {
		elt.InsertChild(kk, child)
	}
	elt.sortAttr()
	return elt
}

// listeners holds the event listeners by node. Elements are plain
// node handles: two handles of the same node are equal, and a node
// without listeners is not referenced by the driver.
var listeners = map[*html.Node][]listener{}

func wrap(n *html.Node) element {
	return element{n}
}

type listener struct {
	event, namespace string
	prop             bool
	*dom.EventHandler
}

type element struct {
	*html.Node
}

func (e element) String() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.Node); err != nil {
		panic(err)
	}
	return buf.String()
}

func (e element) sortAttr() {
	sort.SliceStable(e.Node.Attr, func(i, j int) bool {
		return e.Node.Attr[i].Key < e.Node.Attr[j].Key
	})
}

func (e element) SetProp(key string, value interface{}) {
	switch key {
	case "Tag":
		tag := strings.ToLower(value.(string))
		if tag == "" {
			tag = "div"
		}
		if tag != e.Node.Data {
			panic("Cannot change the tag of an element: " + tag)
		}
	case "Checked":
		if value.(bool) {
			e.setAttribute("checked", "")
		} else {
			e.removeAttribute("checked")
		}
	case "Type", "Class", "ID":
		e.updateAttribute(strings.ToLower(key), value.(string))
	case "TextContent":
		if e.Node.Data == "input" {
			e.updateAttribute("value", value.(string))
			return
		}

		for e.Node.FirstChild != nil {
			e.detach(e.Node.FirstChild)
		}
		if x := value.(string); x != "" {
			e.Node.AppendChild(&html.Node{Type: html.TextNode, Data: x})
		}
	case "Styles":
		e.setCSS(value.(dom.Styles).Entries())
	case "OnChange":
		e.setPropListener("change", value.(*dom.EventHandler))
	case "OnClick":
		e.setPropListener("click", value.(*dom.EventHandler))
	default:
		panic("Unknown key: " + key)
	}
}

func (e element) attribute(key string) (string, bool) {
	for _, a := range e.Node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e element) setAttribute(key, val string) {
	for kk, a := range e.Node.Attr {
		if a.Key == key {
			e.Node.Attr[kk].Val = val
			return
		}
	}
	e.Node.Attr = append(e.Node.Attr, html.Attribute{Key: key, Val: val})
}

// updateAttribute sets the attribute in place, removing it when val
// is empty
func (e element) updateAttribute(key, val string) {
	if val == "" {
		e.removeAttribute(key)
	} else {
		e.setAttribute(key, val)
	}
}

func (e element) removeAttribute(key string) {
	attr := e.Node.Attr
	for kk, a := range attr {
		if a.Key == key {
			copy(attr[kk:], attr[kk+1:])
			e.Node.Attr = attr[:len(attr)-1]
			return
		}
	}
}

func (e element) isCheckbox() bool {
	typ, _ := e.attribute("type")
	return e.Node.Data == "input" && strings.EqualFold(typ, "checkbox")
}

func (e element) Value() string {
	if e.isCheckbox() {
		if _, ok := e.attribute("checked"); ok {
			return "on"
		}
		return "off"
	}

	if val, ok := e.attribute("value"); ok {
		return val
	}

	return textContent(e.Node)
}

// SetValue updates the value and fires change, the way a user edit
// would.
func (e element) SetValue(s string) {
	if e.isCheckbox() {
		e.SetProp("Checked", s == "on")
	} else {
		e.SetProp("TextContent", s)
	}
	e.dispatch(newEvent(e, "change"))
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	result := ""
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result += textContent(c)
	}
	return result
}

func (e element) Parent() dom.Element {
	if p := e.Node.Parent; p != nil && p.Type == html.ElementNode {
		return wrap(p)
	}
	return nil
}

func (e element) Children() []dom.Element {
	result := []dom.Element{}
	for n := e.Node.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			result = append(result, wrap(n))
		}
	}
	return result
}

// child returns the index-th element child or nil
func (e element) child(index int) *html.Node {
	for n := e.Node.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if index == 0 {
			return n
		}
		index--
	}
	return nil
}

func (e element) RemoveChild(index int) {
	n := e.child(index)
	if n == nil {
		panic(index)
	}
	e.detach(n)
}

func (e element) InsertChild(index int, elt dom.Element) {
	n := elt.(element).Node
	if n.Parent != nil {
		wrap(n.Parent).detach(n)
	}

	if before := e.child(index); before != nil {
		e.Node.InsertBefore(n, before)
	} else {
		e.Node.AppendChild(n)
	}
}

func (e element) ReplaceChild(elt, old dom.Element) {
	n, o := elt.(element).Node, old.(element).Node
	if o.Parent != e.Node {
		panic("ReplaceChild: not a child")
	}
	if n == o {
		return
	}
	if n.Parent != nil {
		wrap(n.Parent).detach(n)
	}
	e.Node.InsertBefore(n, o)
	e.detach(o)
}

func (e element) detach(n *html.Node) {
	e.Node.RemoveChild(n)
}

func (e element) Close() {
	for c := e.Node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			wrap(c).Close()
		}
	}
	delete(listeners, e.Node)
	timeline.Stop(e)
}

// SetValue updates the value of an element and fires the change
// event, simulating user input.
func SetValue(elt dom.Element, s string) {
	elt.(element).SetValue(s)
}
