package crank

import (
	"time"
)

// Time tracks the progression of wall-clock time across ticks.
//
// The progression can be scaled by setting the Scale field. This scales
// Delta and DeltaSecs starting at the next update.
type Time struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	Scale float64

	last time.Time
}

// NewTime returns a Time resource with Scale 1.
func NewTime() Time {
	return Time{Scale: 1}
}

// UpdateTime advances the world's Time resource from the wall clock.
// Register it as a ticker ahead of the systems that read Delta:
//
//	world.WithResource(crank.NewTime()).WithTicker(crank.UpdateTime)
//
// A world without a Time resource ticks through unchanged.
func UpdateTime[E any](w *World[E]) {
	res, ok := ResourceMut[Time](w)
	if !ok {
		return
	}
	defer res.Close()

	t := res.Value()

	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		return
	}

	delta := time.Duration(float64(now.Sub(t.last)) * t.Scale)
	t.last = now

	t.Delta = delta
	t.DeltaSecs = delta.Seconds()
	t.Elapsed += delta
}
