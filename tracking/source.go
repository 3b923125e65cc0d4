package tracking

import (
	"context"
	"time"

	"diorama-viewer/internal/log"
)

// Source produces raw head offsets at its own cadence. Sample returns
// ok=false when no measurement is available this tick (face lost, pointer
// unavailable); the runner then leaves the slot untouched so the render
// loop keeps seeing the last good sample.
type Source interface {
	Sample() (Offset, bool)
	Close() error
}

// Runner polls a Source on a ticker and publishes into a Slot. It is the
// only writer of the slot; the render loop is the only reader.
type Runner struct {
	source   Source
	slot     *Slot
	interval time.Duration
}

// NewRunner creates a runner that samples source every interval.
// A detection cadence slower than the render rate is fine: the controller
// reuses the latest sample until a fresh one lands.
func NewRunner(source Source, slot *Slot, interval time.Duration) *Runner {
	return &Runner{source: source, slot: slot, interval: interval}
}

// Run samples until ctx is cancelled. It closes the source on exit.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer r.source.Close()

	log.Info("tracking started", "interval", r.interval)

	misses := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("tracking stopped")
			return
		case <-ticker.C:
			o, ok := r.source.Sample()
			if !ok {
				misses++
				if misses == 5 {
					log.Debug("tracking signal lost", "consecutiveMisses", misses)
				}
				continue
			}
			misses = 0
			r.slot.Store(o)
		}
	}
}
