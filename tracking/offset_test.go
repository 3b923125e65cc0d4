package tracking

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSlotEmptyThenLastWriteWins(t *testing.T) {
	var slot Slot

	if _, ok := slot.Load(); ok {
		t.Error("empty slot: expected ok=false")
	}

	slot.Store(Offset{X: 0.1, Y: 0.2})
	slot.Store(Offset{X: 0.3, Y: 0.4})

	got, ok := slot.Load()
	if !ok {
		t.Fatal("expected a value after Store")
	}
	if got != (Offset{X: 0.3, Y: 0.4}) {
		t.Errorf("expected the last written sample, got %v", got)
	}
}

// The slot must always hand back a whole record, never one axis from an
// old sample and one from a new one. Writers only publish pairs where
// X == Y, so any torn read shows up as a mismatch.
func TestSlotReadsAreNotTorn(t *testing.T) {
	var slot Slot
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v := float32(0)
		for {
			select {
			case <-done:
				return
			default:
				slot.Store(Offset{X: v, Y: v})
				v += 0.001
			}
		}
	}()

	deadline := time.Now().Add(50 * time.Millisecond)
	for time.Now().Before(deadline) {
		if o, ok := slot.Load(); ok && o.X != o.Y {
			t.Fatalf("torn read: %v", o)
		}
	}
	close(done)
	wg.Wait()
}

type stubSource struct {
	samples []Offset
	oks     []bool
	i       int
	closed  bool
}

func (s *stubSource) Sample() (Offset, bool) {
	if s.i >= len(s.samples) {
		return Offset{}, false
	}
	o, ok := s.samples[s.i], s.oks[s.i]
	s.i++
	return o, ok
}

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

func TestRunnerPublishesOnlyValidSamples(t *testing.T) {
	src := &stubSource{
		samples: []Offset{{X: 0.2, Y: 0.1}, {}, {X: 0.4, Y: 0.3}},
		oks:     []bool{true, false, true},
	}
	var slot Slot
	r := NewRunner(src, &slot, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	doneCh := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(doneCh)
	}()

	// Wait until the last valid sample lands.
	deadline := time.Now().Add(time.Second)
	for {
		if o, ok := slot.Load(); ok && o == (Offset{X: 0.4, Y: 0.3}) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the runner to publish")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	<-doneCh
	if !src.closed {
		t.Error("runner exit: expected the source to be closed")
	}
}
