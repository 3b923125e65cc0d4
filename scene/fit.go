package scene

import (
	dvMath "diorama-viewer/math"
	"diorama-viewer/parallax"
)

// fitFraction is how much of the smallest box dimension the model's largest
// extent should occupy after fitting.
const fitFraction = 2.0 / 3.0

// SubtreeAABB computes the combined AABB of every mesh under pivot,
// expressed in pivot-local space (the pivot's own transform is ignored, so
// the result is stable across refits).
func SubtreeAABB(pivot *Node) (AABB, bool) {
	var out AABB
	found := false

	var walk func(n *Node, parent dvMath.Mat4)
	walk = func(n *Node, parent dvMath.Mat4) {
		local := n.Transform.GetMatrix().Mul(parent)
		if n.Mesh != nil && n.Mesh.HasLocalAABB {
			box := transformAABB(n.Mesh.LocalAABB, local)
			if !found {
				out = box
				found = true
			} else {
				out.Min = out.Min.Min(box.Min)
				out.Max = out.Max.Max(box.Max)
			}
		}
		for _, child := range n.Children {
			walk(child, local)
		}
	}

	identity := dvMath.Mat4Identity()
	for _, child := range pivot.Children {
		walk(child, identity)
	}
	return out, found
}

// FitTransform returns the uniform scale and pivot position that place a
// model with the given local AABB at the center of the room, its largest
// extent covering two thirds of the smallest box dimension. The room center
// sits halfway into the box at (0, 0, -Depth/2).
func FitTransform(aabb AABB, dims parallax.Dimensions) (float32, dvMath.Vec3) {
	maxExtent := aabb.Max.Sub(aabb.Min).MaxComponent()
	minDim := dvMath.Vec3{X: dims.Width, Y: dims.Height, Z: dims.Depth}.MinComponent()

	scale := float32(1)
	if maxExtent > 0 {
		scale = minDim * fitFraction / maxExtent
	}

	center := aabb.Min.Add(aabb.Max).Mul(0.5)
	target := dvMath.Vec3{X: 0, Y: 0, Z: -dims.Depth / 2}
	pos := target.Sub(center.Mul(scale))

	return scale, pos
}

// FitToBox rescales and repositions the pivot node so the model under it is
// centered in the room. Call again after a resize with the new dimensions;
// the fit is computed from the pivot-local AABB so repeated calls do not
// compound.
func FitToBox(pivot *Node, dims parallax.Dimensions) {
	aabb, ok := SubtreeAABB(pivot)
	if !ok {
		return
	}
	scale, pos := FitTransform(aabb, dims)
	pivot.SetScale(dvMath.Vec3{X: scale, Y: scale, Z: scale})
	pivot.SetPosition(pos)
}
