// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package sweet_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/andreyvit/diff"
	"github.com/dotchain/dot/streams"
	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yosssi/gohtml"

	"github.com/dotchain/sweet/dom"
	"github.com/dotchain/sweet/dom/html"
	"github.com/dotchain/sweet/sweet"
)

func reportDriverLeaks(t *testing.T) {
	leaks := html.GetCurrentResources()
	if n := len(leaks); n > 0 {
		t.Fatal("Leaked", n, "resources\n", leaks)
	}
}

func assertMarkup(t *testing.T, expected string, elt interface{}) {
	t.Helper()
	if got := fmt.Sprint(elt); got != expected {
		t.Error("Unexpected markup\n", diff.LineDiff(gohtml.Format(expected), gohtml.Format(got)))
	}
}

// fixedMeasurer renders every text 20px wide and 14px high
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(string, float64, bool) (float64, float64) {
	return 20, 14
}

func withFixedMeasurer(t *testing.T) {
	old := html.SetMeasurer(fixedMeasurer{})
	t.Cleanup(func() { html.SetMeasurer(old) })
}

func newCheckbox(id string) (root, input dom.Element) {
	input = dom.NewElement(dom.Props{Tag: "input", Type: "checkbox", ID: id})
	root = dom.NewElement(dom.Props{}, input)
	return root, input
}

func px(t *testing.T, elt dom.Element, name string) float64 {
	t.Helper()
	f, ok := dom.ParsePx(elt.Style(name))
	require.True(t, ok, elt.Style(name))
	return f
}

// parts returns the track, label and ball of an installed switch
func parts(t *testing.T, input dom.Element) (track, text, ball dom.Element) {
	t.Helper()
	wrapper := input.Parent()
	require.NotNil(t, wrapper)
	require.True(t, wrapper.HasClass(sweet.WrapperMarker))
	track = wrapper.Children()[0]
	require.True(t, track.HasClass(sweet.TrackMarker))
	children := track.Children()
	require.Len(t, children, 2)
	return track, children[0], children[1]
}

const (
	wrapperStyle = "width: 100px; height: 38px; position: relative; cursor: pointer"
	trackStyle   = "width: 100px; height: 38px; box-shadow: 1px 1px 3px 1px rgba(1,1,1,.2) inset; border-radius: 39px; background-color: "
	textStyle    = "color: rgba(1,1,1, 0.5); position: absolute; font-size: 15px; font-family: Helvetica, Arial, sans-serif; font-weight: bold; top: 12px; left: "
	ballStyle    = "background-color: white; width: 42px; height: 42px; position: absolute; top: -3px; box-shadow: -13px -14px 25px -23px rgba(1,1,1,.2) inset,-.5px -.5px 2px .5px rgba(111,111,111,.3); border: 1px solid rgba(1,1,1,.1); border-radius: 50%; left: "
	inputAttrs   = `id="cb" type="checkbox" style="position: absolute; visibility: hidden" class="hidden-input"`
)

func TestMarkup(t *testing.T) {
	withFixedMeasurer(t)
	root, input := newCheckbox("cb")

	w := sweet.New()
	w.Init(sweet.Options{
		Width:        100,
		Height:       38,
		FontSize:     15,
		WrapperClass: "big",
		InputClass:   "hidden-input",
	}, input)

	assertMarkup(t, `<div><div class="sc-wrapper big" style="`+wrapperStyle+`">`+
		`<div class="sc-fake-checkbox" style="`+trackStyle+`#DC7F6D">`+
		`<span class="sc-text" style="`+textStyle+`33px">OFF</span>`+
		`<div class="sc-ball" style="`+ballStyle+`-12px"></div>`+
		`</div><input `+inputAttrs+`/></div></div>`, root)

	track, _, _ := parts(t, input)
	track.Click()
	html.Settle()

	assertMarkup(t, `<div><div class="sc-wrapper big" style="`+wrapperStyle+`">`+
		`<div class="sc-fake-checkbox" style="`+trackStyle+`#9EC369">`+
		`<span class="sc-text" style="`+textStyle+`49px">ON</span>`+
		`<div class="sc-ball" style="`+ballStyle+`72px"></div>`+
		`</div><input `+inputAttrs+` checked=""/></div></div>`, root)

	w.Destroy(input)
	assertMarkup(t, `<div><input id="cb" type="checkbox" checked=""/></div>`, root)
	reportDriverLeaks(t)
}

func TestMediumScenario(t *testing.T) {
	root, input := newCheckbox("cb")
	w := sweet.New()
	w.Init(sweet.Options{Size: "medium"}, input)

	track, text, ball := parts(t, input)
	assert.Equal(t, "OFF", text.Value())
	assert.Equal(t, 34.0, ball.Width())
	assert.InDelta(t, -(34 / 3.5), px(t, ball, "left"), 1e-9)
	assert.Equal(t, "#DC7F6D", track.Style("background-color"))
	assert.Equal(t, 80.0, track.Width())
	assert.Equal(t, 30.0, track.Height())
	assert.Equal(t, "15px", text.Style("font-size"))

	html.SetValue(input, "on")
	html.Settle()
	assert.Equal(t, "ON", text.Value())
	assert.InDelta(t, 80-34/1.5, px(t, ball, "left"), 1e-9)
	assert.Equal(t, "#9EC369", track.Style("background-color"))

	// the label sits to the left of the ball
	assert.Less(t, px(t, text, "left")+text.Width(), px(t, ball, "left"))

	html.SetValue(input, "off")
	html.Settle()
	assert.Equal(t, "OFF", text.Value())
	assert.InDelta(t, -(34 / 3.5), px(t, ball, "left"), 1e-9)
	assert.InDelta(t, -(34/3.5)+34+3, px(t, text, "left"), 1e-9)
	assert.Equal(t, "#DC7F6D", track.Style("background-color"))

	w.Destroy(input)
	root.Close()
	reportDriverLeaks(t)
}

func TestInitCheckedInput(t *testing.T) {
	root, input := newCheckbox("cb")
	input.SetProp("Checked", true)

	w := sweet.New()
	w.Init(sweet.Options{}, input)

	track, text, ball := parts(t, input)
	assert.Equal(t, "ON", text.Value())
	assert.Equal(t, 26.0, ball.Width())
	assert.InDelta(t, 60-26/1.5, px(t, ball, "left"), 1e-9)
	assert.Equal(t, "#9EC369", track.Style("background-color"))

	w.Destroy(input)
	root.Close()
	reportDriverLeaks(t)
}

func TestInitIdempotent(t *testing.T) {
	root, input := newCheckbox("cb")
	w := sweet.New()

	w.Init(sweet.Options{Size: "large"}, input)
	before := fmt.Sprint(root)

	result := w.Init(sweet.Options{Size: "small", WrapperClass: "again"}, input)
	assert.Equal(t, []dom.Element{input}, result)
	assert.Equal(t, before, fmt.Sprint(root))
	assert.Equal(t, 1, strings.Count(before, sweet.WrapperMarker))
	assert.Equal(t, 1, strings.Count(before, sweet.BallMarker))

	s, ok := w.Settings(input)
	require.True(t, ok)
	assert.Equal(t, 120.0, s.Width)

	w.Destroy(input)
	root.Close()
	reportDriverLeaks(t)
}

func TestInitAcrossWidgets(t *testing.T) {
	root, input := newCheckbox("cb")
	first, second := sweet.New(), sweet.New()

	first.Init(sweet.Options{Size: "medium"}, input)
	second.Init(sweet.Options{Size: "large"}, input)
	assert.Equal(t, 1, strings.Count(fmt.Sprint(root), sweet.WrapperMarker))
	assert.True(t, first.Installed(input))
	assert.False(t, second.Installed(input))

	first.Destroy(input)
	assert.Equal(t, `<div><input id="cb" type="checkbox"/></div>`, fmt.Sprint(root))

	// a plain wrapper-classed parent is not a switch
	plain := dom.NewElement(dom.Props{Class: sweet.WrapperMarker}, root)
	second.Init(sweet.Options{}, input)
	assert.True(t, second.Installed(input))
	second.Destroy(input)

	plain.Close()
	reportDriverLeaks(t)
}

func TestRoundTrip(t *testing.T) {
	src := `<html><head></head><body><form>` +
		`<label><input type="checkbox" class="existing" style="position: relative" name="a"/> A</label>` +
		`<input type="checkbox" checked="" name="b"/>` +
		`<input type="checkbox" style="visibility: visible; color: red" name="c"/>` +
		`</form></body></html>`

	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	elts, err := doc.Query("//input[@type='checkbox']")
	require.NoError(t, err)
	require.Len(t, elts, 3)

	w := sweet.New()
	w.Init(sweet.Options{Size: "medium", InputClass: "existing sc-input"}, elts...)
	for _, elt := range elts {
		assert.True(t, w.Installed(elt))
		assert.Equal(t, "hidden", elt.Style("visibility"))
		assert.Equal(t, "absolute", elt.Style("position"))
		assert.True(t, elt.HasClass("sc-input"))
	}
	assert.Equal(t, 3, strings.Count(doc.String(), `class="sc-wrapper"`))
	assert.Contains(t, doc.String(), `name="a"/></div> A</label>`)

	w.Destroy(elts...)
	assert.Equal(t, src, doc.String())
	for _, elt := range elts {
		assert.False(t, w.Installed(elt))
	}
	reportDriverLeaks(t)
}

func TestRoundTripInlineStyle(t *testing.T) {
	src := `<html><head></head><body>` +
		`<input type="checkbox" style="background: url(data:image/png;base64,AAAA); content: &#34;a;b&#34;"/>` +
		`</body></html>`

	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	elts, err := doc.Query("//input")
	require.NoError(t, err)
	require.Len(t, elts, 1)

	w := sweet.New()
	w.Init(sweet.Options{}, elts...)
	assert.Equal(t, "url(data:image/png;base64,AAAA)", elts[0].Style("background"))
	assert.Equal(t, `"a;b"`, elts[0].Style("content"))
	assert.Equal(t, "hidden", elts[0].Style("visibility"))

	w.Destroy(elts...)
	assert.Equal(t, src, doc.String())
	reportDriverLeaks(t)
}

func TestClickDelegation(t *testing.T) {
	root, input := newCheckbox("cb")
	changes := 0
	input.On("change.test", &dom.EventHandler{Handle: func(dom.Event) { changes++ }})

	w := sweet.New()
	w.Init(sweet.Options{}, input)
	track, text, ball := parts(t, input)

	track.Click()
	assert.Equal(t, "on", input.Value())
	assert.Equal(t, 1, changes)
	assert.Equal(t, "ON", text.Value())

	ball.Click()
	assert.Equal(t, "off", input.Value())
	assert.Equal(t, 2, changes)

	text.Click()
	assert.Equal(t, "on", input.Value())
	assert.Equal(t, 3, changes)

	// the hidden input is still clickable and must not double toggle
	input.Click()
	assert.Equal(t, "off", input.Value())
	assert.Equal(t, 4, changes)
	assert.Equal(t, "OFF", text.Value())

	input.Parent().Click()
	assert.Equal(t, "on", input.Value())
	assert.Equal(t, 5, changes)

	html.Settle()
	w.Destroy(input)

	// nothing is delegated any more
	input.Click()
	assert.Equal(t, 6, changes)
	input.Off(".test")
	root.Close()
	reportDriverLeaks(t)
}

func TestRefresh(t *testing.T) {
	root, input := newCheckbox("cb")
	w := sweet.New()
	w.Init(sweet.Options{OnText: "YES", OffText: "NO", Duration: -1}, input)
	_, text, _ := parts(t, input)
	assert.Equal(t, "NO", text.Value())

	// no change event, nothing happens until refreshed
	input.SetProp("Checked", true)
	assert.Equal(t, "NO", text.Value())

	w.Refresh(input)
	assert.Equal(t, "YES", text.Value())

	w.Destroy(input)
	w.Refresh(input)
	root.Close()
	reportDriverLeaks(t)
}

func TestTransition(t *testing.T) {
	root, input := newCheckbox("cb")
	w := sweet.New()
	w.Init(sweet.Options{Size: "medium", Duration: 200 * time.Millisecond}, input)
	track, _, ball := parts(t, input)

	start, end := -(34 / 3.5), 80-34/1.5
	html.SetValue(input, "on")
	assert.InDelta(t, start, px(t, ball, "left"), 1e-9)
	assert.Equal(t, "#DC7F6D", track.Style("background-color"))

	html.Advance(100 * time.Millisecond)
	mid := px(t, ball, "left")
	assert.InDelta(t, (start+end)/2, mid, 1e-6)
	assert.NotEqual(t, "#DC7F6D", track.Style("background-color"))
	assert.NotEqual(t, "#9EC369", track.Style("background-color"))

	// toggling back retargets from the current position
	html.SetValue(input, "off")
	html.Advance(10 * time.Millisecond)
	assert.Less(t, px(t, ball, "left"), mid)
	assert.Greater(t, px(t, ball, "left"), start)

	html.Advance(200 * time.Millisecond)
	assert.InDelta(t, start, px(t, ball, "left"), 1e-9)
	assert.Equal(t, "#DC7F6D", track.Style("background-color"))

	w.Destroy(input)
	root.Close()
	reportDriverLeaks(t)
}

func TestDestroyMidTransition(t *testing.T) {
	root, input := newCheckbox("cb")
	w := sweet.New()
	w.Init(sweet.Options{}, input)
	track, _, _ := parts(t, input)

	track.Click()
	html.Advance(50 * time.Millisecond)
	assert.NotEmpty(t, html.GetCurrentResources())

	w.Destroy(input)
	assert.Equal(t, `<div><input id="cb" type="checkbox" checked=""/></div>`, fmt.Sprint(root))
	reportDriverLeaks(t)
}

func TestDestroyUninstalled(t *testing.T) {
	root, input := newCheckbox("cb")
	w := sweet.New()

	w.Destroy(input)
	assert.False(t, w.Installed(input))
	_, ok := w.Settings(input)
	assert.False(t, ok)
	assert.Equal(t, `<div><input id="cb" type="checkbox"/></div>`, fmt.Sprint(root))

	// another widget does not own the switch
	w.Init(sweet.Options{}, input)
	sweet.New().Destroy(input)
	assert.True(t, w.Installed(input))

	w.Destroy(input)
	root.Close()
	reportDriverLeaks(t)
}

func TestDetachedInput(t *testing.T) {
	input := dom.NewElement(dom.Props{Tag: "input", Type: "checkbox"})
	w := sweet.New()

	w.Init(sweet.Options{}, input)
	wrapper := input.Parent()
	require.NotNil(t, wrapper)
	assert.Nil(t, wrapper.Parent())

	w.Destroy(input)
	assert.Nil(t, input.Parent())
	assert.Equal(t, `<input type="checkbox"/>`, fmt.Sprint(input))
	reportDriverLeaks(t)
}

func TestIndependentSwitches(t *testing.T) {
	root1, input1 := newCheckbox("one")
	root2, input2 := newCheckbox("two")

	w := sweet.New()
	w.Init(sweet.Options{Size: "small"}, input1)
	w.Init(sweet.Options{Size: "large", OnText: "YES"}, input2)

	track1, text1, _ := parts(t, input1)
	_, text2, _ := parts(t, input2)

	track1.Click()
	assert.Equal(t, "ON", text1.Value())
	assert.Equal(t, "OFF", text2.Value())
	assert.Equal(t, "off", input2.Value())

	html.SetValue(input2, "on")
	assert.Equal(t, "YES", text2.Value())

	w.Destroy(input1)
	assert.True(t, w.Installed(input2))
	assert.Equal(t, "YES", text2.Value())

	w.Destroy(input2)
	root1.Close()
	root2.Close()
	reportDriverLeaks(t)
}

func TestCheckedStream(t *testing.T) {
	root, input := newCheckbox("cb")
	checked := &streams.Bool{Stream: streams.New(), Value: false}

	w := sweet.New()
	w.Init(sweet.Options{Checked: checked}, input)
	track, _, _ := parts(t, input)

	track.Click()
	assert.True(t, checked.Latest().Value)

	track.Click()
	assert.False(t, checked.Latest().Value)

	// refresh without a change does not add anything
	latest := checked.Latest()
	w.Refresh(input)
	assert.Equal(t, latest, checked.Latest())

	html.Settle()
	w.Destroy(input)
	root.Close()
	reportDriverLeaks(t)
}

func TestLogger(t *testing.T) {
	logs := []string{}
	logger := lgr.Func(func(format string, args ...interface{}) {
		logs = append(logs, fmt.Sprintf(format, args...))
	})

	root, input := newCheckbox("cb")
	w := sweet.New(sweet.WithLogger(logger))
	w.Init(sweet.Options{}, input)
	w.Init(sweet.Options{}, input)
	w.Destroy(input)
	w.Destroy(input)

	assert.Equal(t, []string{
		"[DEBUG] switch installed 60x22, checked=false",
		"[DEBUG] switch already installed, skipping",
		"[DEBUG] switch destroyed",
		"[DEBUG] no switch installed, nothing to destroy",
	}, logs)

	root.Close()
	reportDriverLeaks(t)
}
