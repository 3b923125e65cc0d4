package scene

import (
	"testing"

	dvMath "diorama-viewer/math"
	"diorama-viewer/parallax"
)

func TestFitTransformScalesToTwoThirds(t *testing.T) {
	// A 3-unit cube centered at the origin inside a 16x10x10 box.
	aabb := AABB{
		Min: dvMath.Vec3{X: -1.5, Y: -1.5, Z: -1.5},
		Max: dvMath.Vec3{X: 1.5, Y: 1.5, Z: 1.5},
	}
	dims := parallax.Dimensions{Width: 16, Height: 10, Depth: 10}

	scale, pos := FitTransform(aabb, dims)

	// Smallest box dimension is 10; largest extent is 3. The fitted extent
	// should be 10 * 2/3.
	const tol = 0.0001
	wantScale := float32(10.0) * 2.0 / 3.0 / 3.0
	if abs(scale-wantScale) > tol {
		t.Errorf("scale = %v, want %v", scale, wantScale)
	}

	// Centered model stays centered laterally, sits halfway into the box.
	if abs(pos.X) > tol || abs(pos.Y) > tol {
		t.Errorf("expected centered X/Y, got (%v, %v)", pos.X, pos.Y)
	}
	if abs(pos.Z+5) > tol {
		t.Errorf("pos.Z = %v, want -5", pos.Z)
	}
}

func TestFitTransformRecentersOffsetModel(t *testing.T) {
	// Model AABB centered at (10, 4, 2), extent 2 on each axis.
	aabb := AABB{
		Min: dvMath.Vec3{X: 9, Y: 3, Z: 1},
		Max: dvMath.Vec3{X: 11, Y: 5, Z: 3},
	}
	dims := parallax.Dimensions{Width: 12, Height: 12, Depth: 12}

	scale, pos := FitTransform(aabb, dims)

	// Scaled center plus position must land on the room center (0, 0, -6).
	center := dvMath.Vec3{X: 10, Y: 4, Z: 2}
	landed := center.Mul(scale).Add(pos)

	const tol = 0.0001
	if abs(landed.X) > tol || abs(landed.Y) > tol || abs(landed.Z+6) > tol {
		t.Errorf("fitted center = %v, want (0, 0, -6)", landed)
	}
}

func TestFitTransformDegenerateExtent(t *testing.T) {
	// Zero-extent AABB (single point) must not produce a zero or Inf scale.
	aabb := AABB{
		Min: dvMath.Vec3{X: 1, Y: 1, Z: 1},
		Max: dvMath.Vec3{X: 1, Y: 1, Z: 1},
	}
	dims := parallax.Dimensions{Width: 10, Height: 10, Depth: 10}

	scale, _ := FitTransform(aabb, dims)
	if scale != 1 {
		t.Errorf("degenerate extent scale = %v, want 1", scale)
	}
}

func TestFitToBoxDoesNotCompound(t *testing.T) {
	pivot := NewNode("pivot")
	child := NewNode("model")
	child.Mesh = CreateCube(3)
	pivot.AddChild(child)

	dims := parallax.Dimensions{Width: 16, Height: 10, Depth: 10}

	FitToBox(pivot, dims)
	first := pivot.Transform.Scale
	FitToBox(pivot, dims)
	second := pivot.Transform.Scale

	const tol = 0.0001
	if abs(first.X-second.X) > tol {
		t.Errorf("repeated fit changed scale: %v then %v", first.X, second.X)
	}

	// Fitted cube extent: 10 * 2/3.
	wantScale := float32(10.0) * 2.0 / 3.0 / 3.0
	if abs(first.X-wantScale) > tol {
		t.Errorf("fit scale = %v, want %v", first.X, wantScale)
	}
	if abs(pivot.Transform.Position.Z+5) > tol {
		t.Errorf("fit position Z = %v, want -5", pivot.Transform.Position.Z)
	}
}

func TestSubtreeAABBIgnoresPivotTransform(t *testing.T) {
	pivot := NewNode("pivot")
	child := NewNode("model")
	child.Mesh = CreateCube(2)
	pivot.AddChild(child)

	a, ok := SubtreeAABB(pivot)
	if !ok {
		t.Fatal("expected an AABB")
	}

	pivot.SetScale(dvMath.Vec3{X: 5, Y: 5, Z: 5})
	pivot.SetPosition(dvMath.Vec3{X: 100, Y: 0, Z: 0})

	b, ok := SubtreeAABB(pivot)
	if !ok {
		t.Fatal("expected an AABB after transform")
	}

	const tol = 0.0001
	if abs(a.Min.X-b.Min.X) > tol || abs(a.Max.Z-b.Max.Z) > tol {
		t.Errorf("pivot transform leaked into subtree AABB: %v vs %v", a, b)
	}
}
