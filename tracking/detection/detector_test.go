package detection

import "testing"

func TestSelectBestEmpty(t *testing.T) {
	if got := SelectBest(nil); got != nil {
		t.Errorf("expected nil for no detections, got %v", got)
	}
}

func TestSelectBestSingle(t *testing.T) {
	dets := []Detection{{X: 0.1, Y: 0.1, W: 0.2, H: 0.2, Confidence: 0.6}}
	got := SelectBest(dets)
	if got == nil || *got != dets[0] {
		t.Errorf("expected the only detection, got %v", got)
	}
}

func TestSelectBestPrefersConfidence(t *testing.T) {
	// Same size, different confidence: confidence dominates.
	dets := []Detection{
		{X: 0.0, Y: 0.0, W: 0.2, H: 0.2, Confidence: 0.5},
		{X: 0.5, Y: 0.5, W: 0.2, H: 0.2, Confidence: 0.9},
	}
	got := SelectBest(dets)
	if got == nil || got.Confidence != 0.9 {
		t.Errorf("expected the 0.9-confidence face, got %v", got)
	}
}

func TestSelectBestAreaBreaksNearTies(t *testing.T) {
	// Confidence difference 0.05 scores 0.035; area ratio difference
	// (1.0 vs 0.25) scores 0.225, so the big face wins.
	dets := []Detection{
		{X: 0.0, Y: 0.0, W: 0.1, H: 0.1, Confidence: 0.90},
		{X: 0.5, Y: 0.5, W: 0.2, H: 0.2, Confidence: 0.85},
	}
	got := SelectBest(dets)
	if got == nil || got.W != 0.2 {
		t.Errorf("expected the larger face, got %v", got)
	}
}

func TestDetectionCenterAndArea(t *testing.T) {
	d := Detection{X: 0.2, Y: 0.4, W: 0.2, H: 0.1}
	cx, cy := d.Center()
	if cx != 0.3 {
		t.Errorf("center x: expected 0.3, got %v", cx)
	}
	if cy != 0.45 {
		t.Errorf("center y: expected 0.45, got %v", cy)
	}
	if a := d.Area(); a != 0.2*0.1 {
		t.Errorf("area: expected 0.02, got %v", a)
	}
}
