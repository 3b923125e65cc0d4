// Package parallax implements head-coupled perspective: a translating,
// never-rotating eye combined with an off-axis (asymmetric-frustum)
// projection derived from a fixed reference box. This is the standard
// "fish tank VR" construction; it is the only projection that keeps the
// box's front face spatially fixed while the eye moves. Rotating the
// camera toward the box instead would shear the interior incorrectly and
// break the window illusion.
package parallax

import "fmt"

// Dimensions is the world-space size of the reference box. Height and depth
// are fixed for the session; width follows the viewport aspect ratio so the
// front face of the box always matches the render surface exactly.
type Dimensions struct {
	Width  float32
	Height float32
	Depth  float32
}

// ComputeDimensions derives box dimensions from the viewport aspect ratio.
// Invariant: Width/Height == viewportAspect.
func ComputeDimensions(viewportAspect, fixedHeight, fixedDepth float32) Dimensions {
	return Dimensions{
		Width:  fixedHeight * viewportAspect,
		Height: fixedHeight,
		Depth:  fixedDepth,
	}
}

// Box owns the current reference-box dimensions. It is the single source of
// geometric truth: both the room meshes and the camera controller read the
// same Dimensions, so the box the model is fit into can never drift from
// the box the camera projects against.
type Box struct {
	fixedHeight float32
	fixedDepth  float32
	dims        Dimensions
}

// NewBox validates the fixed extents and starts with a square front face
// (aspect 1) until the first Resize.
func NewBox(fixedHeight, fixedDepth float32) (*Box, error) {
	if fixedHeight <= 0 {
		return nil, fmt.Errorf("box height must be positive, got %v", fixedHeight)
	}
	if fixedDepth <= 0 {
		return nil, fmt.Errorf("box depth must be positive, got %v", fixedDepth)
	}
	return &Box{
		fixedHeight: fixedHeight,
		fixedDepth:  fixedDepth,
		dims:        ComputeDimensions(1, fixedHeight, fixedDepth),
	}, nil
}

// Resize recomputes the width from the viewport size in pixels. A zero
// dimension (minimized window, hidden surface) keeps the previous
// non-degenerate dimensions instead of producing a degenerate frustum.
// Reports whether the dimensions changed.
func (b *Box) Resize(viewportWidth, viewportHeight int) bool {
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return false
	}
	aspect := float32(viewportWidth) / float32(viewportHeight)
	next := ComputeDimensions(aspect, b.fixedHeight, b.fixedDepth)
	if next == b.dims {
		return false
	}
	b.dims = next
	return true
}

// Dims returns the current dimensions.
func (b *Box) Dims() Dimensions {
	return b.dims
}
