package parallax

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestComputeDimensions(t *testing.T) {
	d := ComputeDimensions(1.6, 10, 10)
	if d.Width != 16 || d.Height != 10 || d.Depth != 10 {
		t.Errorf("aspect 1.6: expected {16 10 10}, got %v", d)
	}

	d = ComputeDimensions(1.0, 10, 10)
	if d.Width != 10 || d.Height != 10 || d.Depth != 10 {
		t.Errorf("aspect 1.0: expected {10 10 10}, got %v", d)
	}
}

func TestBoxResizePreservesAspect(t *testing.T) {
	box, err := NewBox(10, 10)
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}

	if !box.Resize(1920, 1080) {
		t.Error("expected resize to report a change")
	}

	d := box.Dims()
	wantAspect := float32(1920.0 / 1080.0)
	gotAspect := d.Width / d.Height
	if math32.Abs(gotAspect-wantAspect) > 0.0001 {
		t.Errorf("aspect: expected %v, got %v", wantAspect, gotAspect)
	}
	if d.Height != 10 || d.Depth != 10 {
		t.Errorf("fixed extents changed: got %v", d)
	}
}

func TestBoxResizeSameAspectReportsNoChange(t *testing.T) {
	box, err := NewBox(10, 10)
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}
	if !box.Resize(1280, 720) {
		t.Error("first resize: expected a change report")
	}
	before := box.Dims()

	// Doubling the pixel count at the same aspect ratio leaves the
	// world-space box untouched. Callers must not infer viewport validity
	// from this report: the GL viewport still has to track the new
	// framebuffer size.
	if box.Resize(2560, 1440) {
		t.Error("same-aspect resize: expected no change reported")
	}
	if box.Dims() != before {
		t.Errorf("same-aspect resize changed dims: before %v, after %v", before, box.Dims())
	}
	if !box.Resize(2560, 1080) {
		t.Error("aspect change: expected a change report")
	}
}

func TestBoxResizeDegenerateRetainsPrevious(t *testing.T) {
	box, err := NewBox(10, 10)
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}
	box.Resize(1600, 1000)
	before := box.Dims()

	// A minimized window reports zero extents; the previous dimensions
	// must survive rather than propagating a division by zero.
	if box.Resize(0, 720) {
		t.Error("zero width: expected no change reported")
	}
	if box.Resize(1280, 0) {
		t.Error("zero height: expected no change reported")
	}
	if box.Dims() != before {
		t.Errorf("degenerate resize changed dims: before %v, after %v", before, box.Dims())
	}
}

func TestNewBoxRejectsNonPositiveExtents(t *testing.T) {
	if _, err := NewBox(0, 10); err == nil {
		t.Error("expected error for zero height")
	}
	if _, err := NewBox(10, -1); err == nil {
		t.Error("expected error for negative depth")
	}
}
