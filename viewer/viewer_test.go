package viewer

import "testing"

func TestDefaultOptionsAreValid(t *testing.T) {
	opts := DefaultOptions()

	if err := opts.Parallax.Validate(); err != nil {
		t.Errorf("default parallax config invalid: %v", err)
	}
	if err := opts.Sensitivity.Validate(); err != nil {
		t.Errorf("default sensitivity invalid: %v", err)
	}
	if opts.BoxHeight <= 0 || opts.BoxDepth <= 0 {
		t.Errorf("default box dimensions must be positive: %v x %v", opts.BoxHeight, opts.BoxDepth)
	}
	if opts.RoomDivisions < 1 {
		t.Errorf("default room divisions must be at least 1, got %d", opts.RoomDivisions)
	}
}
