package parallax

import (
	"testing"

	"github.com/chewxy/math32"

	"diorama-viewer/tracking"
)

const tol = 0.0001

func testConfig() Config {
	return Config{RangeX: 15, RangeY: 15, EyeDistance: 15, Near: 0.1, Far: 1000}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero rangeX", func(c *Config) { c.RangeX = 0 }, true},
		{"negative rangeY", func(c *Config) { c.RangeY = -1 }, true},
		{"zero eye distance", func(c *Config) { c.EyeDistance = 0 }, true},
		{"zero near", func(c *Config) { c.Near = 0 }, true},
		{"near >= far", func(c *Config) { c.Near = 1000; c.Far = 0.1 }, true},
	}

	for _, tc := range cases {
		cfg := testConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestCenteredOffsetGivesSymmetricFrustum(t *testing.T) {
	c, err := NewController(testConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	box := Dimensions{Width: 16, Height: 10, Depth: 10}

	pose := c.ComputeFrame(tracking.Offset{}, box)

	if pose.Eye.X != 0 || pose.Eye.Y != 0 || pose.Eye.Z != 15 {
		t.Errorf("eye: expected (0,0,15), got %v", pose.Eye)
	}
	if math32.Abs(pose.Left+pose.Right) > tol {
		t.Errorf("expected left == -right, got left=%v right=%v", pose.Left, pose.Right)
	}
	if math32.Abs(pose.Top+pose.Bottom) > tol {
		t.Errorf("expected top == -bottom, got top=%v bottom=%v", pose.Top, pose.Bottom)
	}
}

func TestLeanRightMovesEyeLeft(t *testing.T) {
	c, _ := NewController(testConfig())
	box := Dimensions{Width: 16, Height: 10, Depth: 10}

	pose := c.ComputeFrame(tracking.Offset{X: 0.5}, box)

	if pose.Eye.X >= 0 {
		t.Errorf("look-around convention: positive offset.X must give eye.X < 0, got %v", pose.Eye.X)
	}
}

// The window-plane edges must stay fixed in world space for every eye
// position: bounds scaled back from the near plane by ez/near always land
// on ∓halfW, and the frustum width at the window plane equals the box
// width for any lean.
func TestWindowPlaneEdgesInvariantUnderEyeOffset(t *testing.T) {
	cfg := testConfig()
	c, _ := NewController(cfg)
	box := Dimensions{Width: 16, Height: 10, Depth: 10}
	halfW := box.Width / 2
	halfH := box.Height / 2

	offsets := []tracking.Offset{
		{X: 0, Y: 0},
		{X: 0.3, Y: -0.075},
		{X: -1, Y: 1},
		{X: 0.7, Y: 0.2},
	}

	for _, o := range offsets {
		pose := c.ComputeFrame(o, box)
		toWindow := pose.Eye.Z / pose.Near

		if math32.Abs(pose.Left*toWindow+pose.Eye.X+halfW) > tol {
			t.Errorf("offset %v: window-plane left edge %v, want %v",
				o, pose.Left*toWindow+pose.Eye.X, -halfW)
		}
		if math32.Abs(pose.Right*toWindow+pose.Eye.X-halfW) > tol {
			t.Errorf("offset %v: window-plane right edge %v, want %v",
				o, pose.Right*toWindow+pose.Eye.X, halfW)
		}
		if math32.Abs(pose.Top*toWindow+pose.Eye.Y-halfH) > tol {
			t.Errorf("offset %v: window-plane top edge %v, want %v",
				o, pose.Top*toWindow+pose.Eye.Y, halfH)
		}

		width := (pose.Right - pose.Left) * toWindow
		if math32.Abs(width-box.Width) > 0.001 {
			t.Errorf("offset %v: window-plane frustum width %v, want %v", o, width, box.Width)
		}
	}
}

func TestDegenerateBoxRetainsPreviousPose(t *testing.T) {
	c, _ := NewController(testConfig())
	box := Dimensions{Width: 16, Height: 10, Depth: 10}

	valid := c.ComputeFrame(tracking.Offset{X: 0.2, Y: 0.1}, box)

	held := c.ComputeFrame(tracking.Offset{X: 0.9}, Dimensions{Width: 0, Height: 10})
	if held != valid {
		t.Errorf("zero width box: expected held pose %+v, got %+v", valid, held)
	}

	held = c.ComputeFrame(tracking.Offset{X: 0.9}, Dimensions{Width: 16, Height: -1})
	if held != valid {
		t.Errorf("negative height box: expected held pose %+v, got %+v", valid, held)
	}

	nan := math32.NaN()
	held = c.ComputeFrame(tracking.Offset{X: nan, Y: 0}, box)
	if held != valid {
		t.Errorf("NaN offset: expected held pose %+v, got %+v", valid, held)
	}
}

func TestEndToEndFrame(t *testing.T) {
	// 1920x1080 viewport, raw offset {0.1, -0.05}, reference tuning.
	sens := tracking.DefaultSensitivity()
	cond, err := tracking.NewConditioner(sens)
	if err != nil {
		t.Fatalf("NewConditioner: %v", err)
	}

	box, _ := NewBox(10, 10)
	box.Resize(1920, 1080)

	c, _ := NewController(testConfig())

	raw := tracking.Offset{X: 0.1, Y: -0.05}
	conditioned := cond.Condition(&raw)
	if math32.Abs(conditioned.X-0.3) > tol || math32.Abs(conditioned.Y+0.075) > tol {
		t.Fatalf("conditioned: expected {0.3 -0.075}, got %v", conditioned)
	}

	pose := c.ComputeFrame(conditioned, box.Dims())

	if math32.Abs(pose.Eye.X+4.5) > tol {
		t.Errorf("eye.X: expected -4.5, got %v", pose.Eye.X)
	}
	if math32.Abs(pose.Eye.Y+1.125) > tol {
		t.Errorf("eye.Y: expected -1.125, got %v", pose.Eye.Y)
	}
	if pose.Eye.Z != 15 {
		t.Errorf("eye.Z: expected 15, got %v", pose.Eye.Z)
	}

	wantWidth := box.Dims().Width // 10 * 1920/1080 = 17.7778
	width := (pose.Right - pose.Left) * pose.Eye.Z / pose.Near
	if math32.Abs(width-wantWidth) > 0.001 {
		t.Errorf("window-plane frustum width: expected %v, got %v", wantWidth, width)
	}
}

func TestProjectionUsesAsymmetricBounds(t *testing.T) {
	c, _ := NewController(testConfig())
	box := Dimensions{Width: 16, Height: 10, Depth: 10}

	pose := c.ComputeFrame(tracking.Offset{X: 0.4, Y: 0.1}, box)
	proj := pose.Projection()

	// An off-center frustum has non-zero skew terms in the third column.
	if math32.Abs(proj[2][0]) < tol && math32.Abs(proj[2][1]) < tol {
		t.Error("expected asymmetric projection skew terms, got a symmetric matrix")
	}

	// The view matrix must be a pure translation: no rotation ever.
	view := pose.View()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if view[i][j] != expected {
				t.Errorf("view rotation block [%d][%d]: expected %v, got %v", i, j, expected, view[i][j])
			}
		}
	}
}
