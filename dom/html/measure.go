// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package html

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const defaultFontSize = 16

// Measurer computes the rendered size of a text run in pixels
type Measurer interface {
	Measure(text string, size float64, bold bool) (width, height float64)
}

// SetMeasurer replaces the text measurer, returning the previous
// one. The default measures with the Go fonts at 72dpi, where a
// point is a pixel.
func SetMeasurer(m Measurer) (old Measurer) {
	old, measurer = measurer, m
	return old
}

var measurer Measurer = newGoFonts()

type faceKey struct {
	size float64
	bold bool
}

type goFonts struct {
	regular, bold *opentype.Font
	faces         map[faceKey]font.Face
}

func newGoFonts() *goFonts {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
	return &goFonts{regular, bold, map[faceKey]font.Face{}}
}

func (g *goFonts) face(size float64, bold bool) font.Face {
	key := faceKey{size, bold}
	if f, ok := g.faces[key]; ok {
		return f
	}

	src := g.regular
	if bold {
		src = g.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(err)
	}
	g.faces[key] = f
	return f
}

func (g *goFonts) Measure(text string, size float64, bold bool) (width, height float64) {
	f := g.face(size, bold)
	return toFloat(font.MeasureString(f, text)), toFloat(f.Metrics().Height)
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
