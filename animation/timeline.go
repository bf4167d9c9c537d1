// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package animation

import "time"

// DefaultDuration matches the jQuery animate default
const DefaultDuration = 400 * time.Millisecond

// Key identifies a running transition
type Key struct {
	Target   interface{}
	Property string
}

type transition struct {
	tween    Tween
	curve    Curve
	start    time.Duration
	duration time.Duration
	apply    func(string)
}

// Timeline runs transitions against its own clock. The clock only
// moves via Advance (or Settle), which makes a timeline fully
// deterministic.
type Timeline struct {
	now     time.Duration
	running map[Key]*transition
}

// NewTimeline creates an empty timeline
func NewTimeline() *Timeline {
	return &Timeline{running: map[Key]*transition{}}
}

// Start begins a transition for key, replacing any running one. A
// nil curve uses Swing and a non-positive duration (or a tween that
// cannot interpolate) applies the end value right away.
func (t *Timeline) Start(key Key, tw Tween, d time.Duration, c Curve, apply func(string)) {
	delete(t.running, key)

	if _, ok := tw.(jump); ok || d <= 0 {
		apply(tw.At(1))
		return
	}

	if c == nil {
		c = Swing
	}
	t.running[key] = &transition{tw, c, t.now, d, apply}
}

// Advance moves the clock forward and applies the current value of
// every running transition. Finished transitions are dropped.
func (t *Timeline) Advance(d time.Duration) {
	t.now += d
	for key, tr := range t.running {
		elapsed := t.now - tr.start
		if elapsed >= tr.duration {
			delete(t.running, key)
			tr.apply(tr.tween.At(1))
			continue
		}
		p := float64(elapsed) / float64(tr.duration)
		tr.apply(tr.tween.At(tr.curve(p)))
	}
}

// Settle finishes every running transition
func (t *Timeline) Settle() {
	var longest time.Duration
	for _, tr := range t.running {
		if left := tr.start + tr.duration - t.now; left > longest {
			longest = left
		}
	}
	t.Advance(longest)
}

// Stop drops the transitions of target without applying anything
// further
func (t *Timeline) Stop(target interface{}) {
	for key := range t.running {
		if key.Target == target {
			delete(t.running, key)
		}
	}
}

// Running lists the keys of the running transitions
func (t *Timeline) Running() []Key {
	result := make([]Key, 0, len(t.running))
	for key := range t.running {
		result = append(result, key)
	}
	return result
}
