// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package html

import (
	"strings"
	"time"

	"github.com/gorilla/css/scanner"

	"github.com/dotchain/sweet/animation"
	"github.com/dotchain/sweet/dom"
)

// css parses the inline style attribute into ordered pairs
func (e element) css() [][2]string {
	style, _ := e.attribute("style")
	result := [][2]string{}
	for _, decl := range declarations(style) {
		idx := strings.Index(decl, ":")
		if idx < 0 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(decl[:idx]))
		value := strings.TrimSpace(decl[idx+1:])
		if name != "" && value != "" {
			result = append(result, [2]string{name, value})
		}
	}
	return result
}

// declarations splits inline style text at the semicolons that
// separate declarations. Semicolons inside strings, url() and other
// functions belong to the value.
func declarations(style string) []string {
	result := []string{}
	current, consumed, depth := "", 0, 0

	s := scanner.New(style)
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF {
			break
		}
		if tok.Type == scanner.TokenError {
			// keep whatever could not be tokenized as is
			current += style[consumed:]
			break
		}
		consumed += len(tok.Value)

		switch {
		case tok.Type == scanner.TokenFunction, tok.Type == scanner.TokenChar && tok.Value == "(":
			depth++
		case tok.Type == scanner.TokenChar && tok.Value == ")" && depth > 0:
			depth--
		case tok.Type == scanner.TokenChar && tok.Value == ";" && depth == 0:
			result = append(result, current)
			current = ""
			continue
		}
		current += tok.Value
	}
	return append(result, current)
}

func (e element) setCSS(entries [][2]string) {
	e.updateAttribute("style", dom.FormatCSS(entries))
}

func (e element) Style(name string) string {
	for _, pair := range e.css() {
		if pair[0] == name {
			return pair[1]
		}
	}
	return ""
}

func (e element) SetStyle(name, value string) {
	e.mergeCSS([][2]string{{name, value}})
}

func (e element) SetStyles(styles dom.Styles) {
	e.mergeCSS(styles.Entries())
}

// mergeCSS updates existing properties in place and appends the
// rest. Empty values remove the property.
func (e element) mergeCSS(updates [][2]string) {
	entries := e.css()
	for _, u := range updates {
		found := false
		for kk := range entries {
			if entries[kk][0] == u[0] {
				entries[kk][1], found = u[1], true
			}
		}
		if !found {
			entries = append(entries, u)
		}
	}

	result := entries[:0]
	for _, pair := range entries {
		if pair[1] != "" {
			result = append(result, pair)
		}
	}
	e.setCSS(result)
}

func (e element) classes() []string {
	class, _ := e.attribute("class")
	return strings.Fields(class)
}

func (e element) HasClass(name string) bool {
	for _, c := range e.classes() {
		if c == name {
			return true
		}
	}
	return false
}

func (e element) AddClass(names string) {
	classes := e.classes()
	for _, name := range strings.Fields(names) {
		if !e.HasClass(name) {
			classes = append(classes, name)
			e.SetProp("Class", strings.Join(classes, " "))
		}
	}
}

func (e element) RemoveClass(names string) {
	remove := strings.Fields(names)
	result := []string{}
	for _, c := range e.classes() {
		keep := true
		for _, name := range remove {
			keep = keep && c != name
		}
		if keep {
			result = append(result, c)
		}
	}
	e.SetProp("Class", strings.Join(result, " "))
}

func (e element) Width() float64 {
	if w, ok := dom.ParsePx(e.Style("width")); ok {
		return w
	}
	w, _ := e.measure()
	return w
}

func (e element) Height() float64 {
	if h, ok := dom.ParsePx(e.Style("height")); ok {
		return h
	}
	_, h := e.measure()
	return h
}

func (e element) measure() (width, height float64) {
	text := textContent(e.Node)
	if text == "" {
		return 0, 0
	}

	size, ok := dom.ParsePx(e.Style("font-size"))
	if !ok {
		size = defaultFontSize
	}
	weight := e.Style("font-weight")
	return measurer.Measure(text, size, weight == "bold" || weight == "700")
}

var timeline = animation.NewTimeline()

func (e element) Animate(name, value string, opts dom.AnimateOptions) {
	tween := animation.TweenValue(e.Style(name), value)
	key := animation.Key{Target: e, Property: name}
	apply := func(v string) { e.SetStyle(name, v) }
	timeline.Start(key, tween, opts.Duration, animation.Curve(opts.Easing), apply)
}

// Advance moves the animation clock forward, applying all running
// transitions
func Advance(d time.Duration) {
	timeline.Advance(d)
}

// Settle finishes all running transitions
func Settle() {
	timeline.Settle()
}
