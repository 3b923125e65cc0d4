package scene

import (
	dvMath "diorama-viewer/math"
	"diorama-viewer/parallax"
)

// Camera is the viewing camera for the diorama. It never rotates: the view
// matrix is a pure translation and the projection is an off-axis frustum
// whose four near-plane bounds come from the parallax controller.
type Camera struct {
	Position dvMath.Vec3
	Left     float32
	Right    float32
	Top      float32
	Bottom   float32
	Near     float32
	Far      float32

	// Cached matrices
	viewMatrix       dvMath.Mat4
	projectionMatrix dvMath.Mat4
	viewProjMatrix   dvMath.Mat4
	dirty            bool
}

// NewCamera returns a camera at the origin with a unit symmetric frustum.
// Callers apply a real pose via ApplyPose before the first frame.
func NewCamera(near, far float32) *Camera {
	return &Camera{
		Position: dvMath.Vec3{Z: 1},
		Left:     -0.5 * near,
		Right:    0.5 * near,
		Top:      0.5 * near,
		Bottom:   -0.5 * near,
		Near:     near,
		Far:      far,
		dirty:    true,
	}
}

// ApplyPose copies the eye position and frustum bounds from a controller
// pose. Matrices are rebuilt lazily on the next getter call.
func (c *Camera) ApplyPose(p parallax.Pose) {
	c.Position = p.Eye
	c.Left = p.Left
	c.Right = p.Right
	c.Top = p.Top
	c.Bottom = p.Bottom
	c.Near = p.Near
	c.Far = p.Far
	c.dirty = true
}

func (c *Camera) SetPosition(pos dvMath.Vec3) {
	c.Position = pos
	c.dirty = true
}

func (c *Camera) GetViewMatrix() dvMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) GetProjectionMatrix() dvMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) GetViewProjectionMatrix() dvMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewProjMatrix
}

func (c *Camera) updateMatrices() {
	// View is a bare translation. The eye slides in front of the window
	// plane but always looks straight down -Z; rotating it would break
	// the through-a-window illusion.
	c.viewMatrix = dvMath.Mat4Translation(c.Position.Negate())
	c.projectionMatrix = dvMath.Mat4Frustum(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
	// Row-vector convention: points multiply on the left, so view comes first.
	c.viewProjMatrix = c.viewMatrix.Mul(c.projectionMatrix)
	c.dirty = false
}
