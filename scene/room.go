package scene

import (
	"diorama-viewer/core"
	"diorama-viewer/math"
	"diorama-viewer/parallax"
)

// CreateRoomGrid builds the diorama room interior as a GL_LINES mesh.
//
// The room is the reference box seen through the window plane at z = 0:
// x in [-Width/2, Width/2], y in [-Height/2, Height/2], z in [-Depth, 0].
// Grid lines are drawn on the back wall, floor, ceiling, and both side
// walls; the window face stays open. divisions sets the number of grid
// cells along the box height; the other axes use the same cell size so
// cells stay square.
func CreateRoomGrid(dims parallax.Dimensions, divisions int) *Mesh {
	if divisions < 1 {
		divisions = 1
	}

	halfW := dims.Width / 2
	halfH := dims.Height / 2
	depth := dims.Depth
	cell := dims.Height / float32(divisions)

	gray := core.Color{R: 0.3, G: 0.3, B: 0.35, A: 1}

	var vertices []core.Vertex
	var indices []uint32

	addLine := func(a, b math.Vec3) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: math.Vec3Up, Color: gray},
			core.Vertex{Position: b, Normal: math.Vec3Up, Color: gray},
		)
		indices = append(indices, base, base+1)
	}

	// steps returns grid coordinates from lo to hi at the shared cell size,
	// always including both ends so wall grids meet at the box edges.
	steps := func(lo, hi float32) []float32 {
		var out []float32
		for v := lo; v < hi-cell/2; v += cell {
			out = append(out, v)
		}
		out = append(out, hi)
		return out
	}

	xs := steps(-halfW, halfW)
	ys := steps(-halfH, halfH)
	zs := steps(-depth, 0)

	// Back wall (z = -depth)
	for _, x := range xs {
		addLine(math.Vec3{X: x, Y: -halfH, Z: -depth}, math.Vec3{X: x, Y: halfH, Z: -depth})
	}
	for _, y := range ys {
		addLine(math.Vec3{X: -halfW, Y: y, Z: -depth}, math.Vec3{X: halfW, Y: y, Z: -depth})
	}

	// Floor (y = -halfH) and ceiling (y = +halfH)
	for _, x := range xs {
		addLine(math.Vec3{X: x, Y: -halfH, Z: -depth}, math.Vec3{X: x, Y: -halfH, Z: 0})
		addLine(math.Vec3{X: x, Y: halfH, Z: -depth}, math.Vec3{X: x, Y: halfH, Z: 0})
	}
	for _, z := range zs {
		addLine(math.Vec3{X: -halfW, Y: -halfH, Z: z}, math.Vec3{X: halfW, Y: -halfH, Z: z})
		addLine(math.Vec3{X: -halfW, Y: halfH, Z: z}, math.Vec3{X: halfW, Y: halfH, Z: z})
	}

	// Side walls (x = ±halfW)
	for _, y := range ys {
		addLine(math.Vec3{X: -halfW, Y: y, Z: -depth}, math.Vec3{X: -halfW, Y: y, Z: 0})
		addLine(math.Vec3{X: halfW, Y: y, Z: -depth}, math.Vec3{X: halfW, Y: y, Z: 0})
	}
	for _, z := range zs {
		addLine(math.Vec3{X: -halfW, Y: -halfH, Z: z}, math.Vec3{X: -halfW, Y: halfH, Z: z})
		addLine(math.Vec3{X: halfW, Y: -halfH, Z: z}, math.Vec3{X: halfW, Y: halfH, Z: z})
	}

	m := CreateMeshFromData("RoomGrid", vertices, indices)
	m.DrawMode = DrawLines

	mat := DefaultMaterial()
	mat.Name = "RoomGridMaterial"
	mat.Unlit = true
	m.Material = mat

	return m
}

// CreateRoomOutline builds the twelve box edges of the room as a bright
// GL_LINES mesh, drawn over the grid so the box silhouette reads clearly.
func CreateRoomOutline(dims parallax.Dimensions) *Mesh {
	halfW := dims.Width / 2
	halfH := dims.Height / 2
	depth := dims.Depth

	white := core.Color{R: 0.85, G: 0.85, B: 0.9, A: 1}

	var vertices []core.Vertex
	var indices []uint32

	addLine := func(a, b math.Vec3) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: math.Vec3Up, Color: white},
			core.Vertex{Position: b, Normal: math.Vec3Up, Color: white},
		)
		indices = append(indices, base, base+1)
	}

	// Window face (z = 0)
	addLine(math.Vec3{X: -halfW, Y: -halfH, Z: 0}, math.Vec3{X: halfW, Y: -halfH, Z: 0})
	addLine(math.Vec3{X: halfW, Y: -halfH, Z: 0}, math.Vec3{X: halfW, Y: halfH, Z: 0})
	addLine(math.Vec3{X: halfW, Y: halfH, Z: 0}, math.Vec3{X: -halfW, Y: halfH, Z: 0})
	addLine(math.Vec3{X: -halfW, Y: halfH, Z: 0}, math.Vec3{X: -halfW, Y: -halfH, Z: 0})
	// Back face (z = -depth)
	addLine(math.Vec3{X: -halfW, Y: -halfH, Z: -depth}, math.Vec3{X: halfW, Y: -halfH, Z: -depth})
	addLine(math.Vec3{X: halfW, Y: -halfH, Z: -depth}, math.Vec3{X: halfW, Y: halfH, Z: -depth})
	addLine(math.Vec3{X: halfW, Y: halfH, Z: -depth}, math.Vec3{X: -halfW, Y: halfH, Z: -depth})
	addLine(math.Vec3{X: -halfW, Y: halfH, Z: -depth}, math.Vec3{X: -halfW, Y: -halfH, Z: -depth})
	// Depth edges
	addLine(math.Vec3{X: -halfW, Y: -halfH, Z: 0}, math.Vec3{X: -halfW, Y: -halfH, Z: -depth})
	addLine(math.Vec3{X: halfW, Y: -halfH, Z: 0}, math.Vec3{X: halfW, Y: -halfH, Z: -depth})
	addLine(math.Vec3{X: halfW, Y: halfH, Z: 0}, math.Vec3{X: halfW, Y: halfH, Z: -depth})
	addLine(math.Vec3{X: -halfW, Y: halfH, Z: 0}, math.Vec3{X: -halfW, Y: halfH, Z: -depth})

	m := CreateMeshFromData("RoomOutline", vertices, indices)
	m.DrawMode = DrawLines

	mat := DefaultMaterial()
	mat.Name = "RoomOutlineMaterial"
	mat.Unlit = true
	m.Material = mat

	return m
}
