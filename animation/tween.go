// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package animation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Tween produces the CSS value at eased progress t. At(1) must be
// the exact end value.
type Tween interface {
	At(t float64) string
}

// TweenPixels interpolates between two pixel lengths
func TweenPixels(from, to float64) Tween {
	return pixels{from, to}
}

type pixels struct {
	from, to float64
}

func (p pixels) At(t float64) string {
	if t == 1 {
		return formatPx(p.to)
	}
	return formatPx(p.from + (p.to-p.from)*t)
}

// TweenColor interpolates between two colors in RGB space. The
// colors are either hex or rgb() values, the form browsers report
// inline colors in. The end value is returned verbatim at t >= 1.
func TweenColor(from, to string) (Tween, error) {
	c1, err := ParseColor(from)
	if err != nil {
		return nil, err
	}
	c2, err := ParseColor(to)
	if err != nil {
		return nil, err
	}
	return colors{c1, c2, to}, nil
}

type colors struct {
	from, to colorful.Color
	end      string
}

func (c colors) At(t float64) string {
	switch {
	case t >= 1:
		return c.end
	case t < 0:
		t = 0
	}
	return c.from.BlendRgb(c.to, t).Clamped().Hex()
}

// ParseColor parses "#rgb", "#rrggbb" and "rgb(r, g, b)" colors
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "rgb(") || !strings.HasSuffix(s, ")") {
		return colorful.Hex(s)
	}

	parts := strings.Split(s[len("rgb("):len(s)-1], ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("color: %s is not a valid rgb() value", s)
	}
	var rgb [3]float64
	for kk, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("color: %s: %w", s, err)
		}
		rgb[kk] = v / 255
	}
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Clamped(), nil
}

func isColor(s string) bool {
	return strings.HasPrefix(s, "#") || strings.HasPrefix(s, "rgb(")
}

// TweenValue picks a tween from the shape of the values: pixel
// lengths and colors interpolate, anything else (including an unset
// starting value) jumps straight to the end.
func TweenValue(from, to string) Tween {
	if f, ok := parsePx(from); ok {
		if t, ok := parsePx(to); ok {
			return TweenPixels(f, t)
		}
	}
	if isColor(from) && isColor(to) {
		if tw, err := TweenColor(from, to); err == nil {
			return tw
		}
	}
	return jump(to)
}

type jump string

func (j jump) At(float64) string {
	return string(j)
}

func formatPx(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "px"
}

func parsePx(s string) (float64, bool) {
	if !strings.HasSuffix(s, "px") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	return f, err == nil
}
