// Package tracking turns an asynchronous head-position signal into the
// conditioned 2D offset that steers the parallax camera. Detection sources
// run on their own goroutine and publish into a Slot; the render loop reads
// the most recent sample once per frame. Intermediate samples are dropped,
// never queued: the camera only needs the current pose.
package tracking

import (
	"sync/atomic"

	"github.com/chewxy/math32"
)

// Offset is a head displacement from screen center, each axis nominally in
// [-1, 1] (the raw sensor may exceed this transiently). +X is right,
// +Y is up.
type Offset struct {
	X, Y float32
}

// Valid reports whether both components are finite.
func (o Offset) Valid() bool {
	return !math32.IsNaN(o.X) && !math32.IsInf(o.X, 0) &&
		!math32.IsNaN(o.Y) && !math32.IsInf(o.Y, 0)
}

// Slot is a single-value cell shared between a detection goroutine and the
// render loop. Writes replace the whole record and reads return the whole
// record, so the reader never observes one axis from an old sample and one
// from a new sample. Last write wins; there is no queue.
type Slot struct {
	v atomic.Pointer[Offset]
}

// Store publishes a new sample.
func (s *Slot) Store(o Offset) {
	s.v.Store(&o)
}

// Load returns the most recent sample, or ok=false if no sample has ever
// been published.
func (s *Slot) Load() (Offset, bool) {
	p := s.v.Load()
	if p == nil {
		return Offset{}, false
	}
	return *p, true
}
