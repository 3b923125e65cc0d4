package parallax

import (
	"fmt"

	"diorama-viewer/math"
	"diorama-viewer/tracking"
)

// Config holds the controller tunables. All values are parameters rather
// than literals inside the math so tests can run at different scales.
type Config struct {
	// RangeX/RangeY convert a conditioned offset into world-space eye
	// travel: a fully-leaned offset of 1.0 moves the eye RangeX units.
	RangeX float32
	RangeY float32

	// EyeDistance is the fixed distance from the eye rest position to the
	// box front face (the window plane at z=0); the eye stays on z=EyeDistance.
	EyeDistance float32

	// Near/Far clip planes; chosen to comfortably contain the box depth.
	Near float32
	Far  float32
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		RangeX:      15,
		RangeY:      15,
		EyeDistance: 15,
		Near:        0.1,
		Far:         1000,
	}
}

// Validate rejects configurations that would produce a degenerate or
// inverted frustum. These are construction-time programmer errors and are
// surfaced eagerly instead of rendering silently wrong perspective.
func (c Config) Validate() error {
	if c.RangeX <= 0 || c.RangeY <= 0 {
		return fmt.Errorf("eye ranges must be positive, got (%v, %v)", c.RangeX, c.RangeY)
	}
	if c.EyeDistance <= 0 {
		return fmt.Errorf("eye distance must be positive, got %v", c.EyeDistance)
	}
	if c.Near <= 0 {
		return fmt.Errorf("near plane must be positive, got %v", c.Near)
	}
	if c.Near >= c.Far {
		return fmt.Errorf("near plane %v must be less than far plane %v", c.Near, c.Far)
	}
	return nil
}

// Pose is the camera output for one frame: a translated eye and the
// asymmetric frustum bounds at the near plane. It is recomputed every frame
// and consumed read-only by the renderer.
type Pose struct {
	Eye math.Vec3

	Left, Right float32
	Top, Bottom float32
	Near, Far   float32
}

// Projection builds the projection matrix from the four explicit bounds.
// It must never be built from a symmetric field of view: recentering a
// symmetric projection by rotating the camera produces a visually different
// (and wrong) parallax.
func (p Pose) Projection() math.Mat4 {
	return math.Mat4Frustum(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
}

// View is the inverse of the eye translation. The rotation is identity by
// construction: the camera always looks straight down -Z.
func (p Pose) View() math.Mat4 {
	return math.Mat4Translation(p.Eye.Negate())
}

// Controller maps conditioned offsets and box dimensions to camera poses.
// It is stateless per frame apart from holding the previous valid pose,
// which it returns unchanged when fed degenerate geometry.
type Controller struct {
	cfg  Config
	pose Pose
}

// NewController validates cfg and seeds the held pose with the centered
// view through a unit window, so callers always get a usable pose even
// before the first frame.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parallax config: %w", err)
	}
	c := &Controller{cfg: cfg}
	c.pose = c.computePose(tracking.Offset{}, Dimensions{Width: 1, Height: 1})
	return c, nil
}

// ComputeFrame produces the pose for one frame from the conditioned offset
// and the current box dimensions. Leaning right (offset.X > 0) moves the
// eye left in world space, which reveals more of the right interior wall.
// If the box is degenerate the previous valid pose is retained.
//
// Frustum bounds follow exact pinhole geometry for a window of half extents
// (halfW, halfH) at z=0 seen from the eye at (ex, ey, ez):
//
//	left  = (-halfW - ex) · near/ez     right = (halfW - ex) · near/ez
//	top   = ( halfH - ey) · near/ez    bottom = (-halfH - ey) · near/ez
//
// At the window plane the bounds stay at ∓halfW / ∓halfH for every eye
// position, which is what keeps the window edges fixed in space.
func (c *Controller) ComputeFrame(offset tracking.Offset, box Dimensions) Pose {
	if box.Width <= 0 || box.Height <= 0 || !offset.Valid() {
		return c.pose
	}
	c.pose = c.computePose(offset, box)
	return c.pose
}

// Pose returns the most recently computed pose.
func (c *Controller) Pose() Pose {
	return c.pose
}

func (c *Controller) computePose(offset tracking.Offset, box Dimensions) Pose {
	ex := -offset.X * c.cfg.RangeX
	ey := offset.Y * c.cfg.RangeY
	ez := c.cfg.EyeDistance

	halfW := box.Width / 2
	halfH := box.Height / 2
	scale := c.cfg.Near / ez

	return Pose{
		Eye:    math.Vec3{X: ex, Y: ey, Z: ez},
		Left:   (-halfW - ex) * scale,
		Right:  (halfW - ex) * scale,
		Top:    (halfH - ey) * scale,
		Bottom: (-halfH - ey) * scale,
		Near:   c.cfg.Near,
		Far:    c.cfg.Far,
	}
}
