// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package dom provides the raw DOM abstraction used by sweet widgets.
//
// Widgets only talk to Element. The concrete elements come from a
// registered Driver: dom/js in the browser and dom/html for headless
// rendering and tests.
package dom

import (
	"strconv"
	"time"
)

// Driver represents the interface to be implemented by drivers. This
// allows testing in non-browser environments
type Driver interface {
	NewElement(props Props, children ...Element) Element
}

// NewElement creates a new element using the registered driver.
//
// While the children can be specified here, they can also be modified
// via InsertChild/RemoveChild/ReplaceChild APIs
func NewElement(props Props, children ...Element) Element {
	return driver.NewElement(props, children...)
}

// Element represents a raw DOM element to be implemented by a
// driver
type Element interface {
	// SetProp updates the prop to the provided value. The keys
	// are the field names of Props.
	SetProp(key string, value interface{})

	// Value is the equivalent of HTMLInputElement.value. For
	// checkboxes this is "on" or "off" and for other elements it
	// is the text content.
	Value() string

	// Parent returns the parent element or nil if detached
	Parent() Element

	// Children returns a readonly slice of children
	Children() []Element

	// RemoveChild remove a child element at the provided index
	RemoveChild(index int)

	// InsertChild inserts a child element at the provided index
	InsertChild(index int, elt Element)

	// ReplaceChild puts elt in the place of old, which must be a
	// child. elt is detached from its current parent first.
	ReplaceChild(elt, old Element)

	// Style returns the inline value of a CSS property
	Style(name string) string

	// SetStyle updates a single inline CSS property. An empty
	// value removes the property.
	SetStyle(name, value string)

	// SetStyles merges the non-empty entries of styles into the
	// inline style
	SetStyles(styles Styles)

	HasClass(name string) bool
	AddClass(names string)
	RemoveClass(names string)

	// Width and Height return the content size in pixels: the
	// inline size when one is set, the rendered text size
	// otherwise.
	Width() float64
	Height() float64

	// On adds an event listener. The event can carry a namespace
	// suffix ("click.ns") so that Off(".ns") removes the set.
	On(event string, h *EventHandler)

	// Off removes listeners by type ("click"), by namespace
	// (".ns") or both ("click.ns").
	Off(event string)

	// Click is the equivalent of HTMLElement.click(): it
	// dispatches a click and runs the default action (checkboxes
	// toggle and fire change).
	Click()

	// Animate requests a transition of the CSS property to
	// value. It does not wait: a later request for the same
	// property retargets the transition.
	Animate(name, value string, opts AnimateOptions)

	// Close releases any resources held by this element and its
	// descendants
	Close()
}

// Easing maps linear progress in [0, 1] to eased progress
type Easing func(p float64) float64

// AnimateOptions configures a transition request
type AnimateOptions struct {
	Duration time.Duration
	Easing   Easing
}

// Size represents a string, percent or numeric values. If an explicit
// zero value is needed, it is best to use the string form (see Px)
type Size struct {
	Raw     string
	Percent float64
	Pixels  float64
	Em      float64
}

// Px returns a pixel size, including zero
func Px(f float64) Size {
	if f == 0 {
		return Size{Raw: "0px"}
	}
	return Size{Pixels: f}
}

// String converts Size to a string form
func (s Size) String() string {
	var f float64

	suffix := ""
	switch {
	case s.Percent != 0:
		f, suffix = s.Percent, "%"
	case s.Pixels != 0:
		f, suffix = s.Pixels, "px"
	case s.Em != 0:
		f, suffix = s.Em, "em"
	}

	if f == 0 {
		return s.Raw
	}

	return strconv.FormatFloat(f, 'f', -1, 64) + suffix
}

// ParsePx parses a "12.5px" style value
func ParsePx(s string) (float64, bool) {
	if len(s) < 3 || s[len(s)-2:] != "px" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:len(s)-2], 64)
	return f, err == nil
}

// Styles represents a set of CSS Styles
type Styles struct {
	Color           string
	BackgroundColor string
	Width, Height   Size
	Position        string
	Top, Left       Size
	Visibility      string
	Cursor          string
	FontSize        Size
	FontFamily      string
	FontWeight      string
	BoxShadow       string
	Border          string
	BorderRadius    Size
}

// Entries returns the non-empty properties in a stable order
func (s Styles) Entries() [][2]string {
	all := [][2]string{
		{"color", s.Color},
		{"background-color", s.BackgroundColor},
		{"width", s.Width.String()},
		{"height", s.Height.String()},
		{"position", s.Position},
		{"top", s.Top.String()},
		{"left", s.Left.String()},
		{"visibility", s.Visibility},
		{"cursor", s.Cursor},
		{"font-size", s.FontSize.String()},
		{"font-family", s.FontFamily},
		{"font-weight", s.FontWeight},
		{"box-shadow", s.BoxShadow},
		{"border", s.Border},
		{"border-radius", s.BorderRadius.String()},
	}

	result := all[:0]
	for _, pair := range all {
		if pair[1] != "" {
			result = append(result, pair)
		}
	}
	return result
}

// String converts style to "CSS" text
func (s Styles) String() string {
	return FormatCSS(s.Entries())
}

// FormatCSS joins property/value pairs into inline style text
func FormatCSS(entries [][2]string) string {
	result := ""
	for _, pair := range entries {
		if result != "" {
			result += "; "
		}
		result += pair[0] + ": " + pair[1]
	}
	return result
}

// Props represents the props of an element
type Props struct {
	Styles
	Tag         string
	Class       string
	Checked     bool
	Type        string
	TextContent string
	ID          string
	OnChange    *EventHandler
	OnClick     *EventHandler
}

// ToMap returns the map version of props
func (p Props) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"ID":          p.ID,
		"Tag":         p.Tag,
		"Class":       p.Class,
		"Checked":     p.Checked,
		"Type":        p.Type,
		"TextContent": p.TextContent,
		"Styles":      p.Styles,
		"OnChange":    p.OnChange,
		"OnClick":     p.OnClick,
	}
}

// EventHandler is struct to hold a callback function
//
// Handlers are compared by pointer, which is what allows a driver to
// find and remove a specific listener.
type EventHandler struct {
	Handle func(Event)
}

// Event is passed to the EventHandler
type Event interface {
	// Type is the event type without namespace ("click")
	Type() string

	// Target is the element the event was dispatched on
	Target() Element

	// Value is the value of the target when the event fired
	Value() string
}

// RegisterDriver allows drivers to register their concrete
// implementation
func RegisterDriver(d Driver) (old Driver) {
	old, driver = driver, d
	return old
}

var driver Driver
