package scene

import (
	"testing"

	"diorama-viewer/parallax"
)

func TestRoomGridBounds(t *testing.T) {
	dims := parallax.Dimensions{Width: 16, Height: 10, Depth: 10}
	m := CreateRoomGrid(dims, 10)

	if m.DrawMode != DrawLines {
		t.Errorf("expected DrawLines mode, got %v", m.DrawMode)
	}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		t.Fatal("room grid has no geometry")
	}
	if len(m.Indices)%2 != 0 {
		t.Errorf("line mesh index count must be even, got %d", len(m.Indices))
	}

	// Every vertex must lie inside the box volume.
	const tol = 0.0001
	for i, v := range m.Vertices {
		p := v.Position
		if p.X < -8-tol || p.X > 8+tol {
			t.Fatalf("vertex %d X out of box: %v", i, p.X)
		}
		if p.Y < -5-tol || p.Y > 5+tol {
			t.Fatalf("vertex %d Y out of box: %v", i, p.Y)
		}
		if p.Z < -10-tol || p.Z > tol {
			t.Fatalf("vertex %d Z out of box: %v", i, p.Z)
		}
	}

	// The cached AABB must match the box interior exactly: grids cover all
	// four walls plus the back, so extremes are reached on every axis.
	if !m.HasLocalAABB {
		t.Fatal("room grid has no cached AABB")
	}
	aabb := m.LocalAABB
	if abs(aabb.Min.X+8) > tol || abs(aabb.Max.X-8) > tol {
		t.Errorf("AABB X span = [%v, %v], want [-8, 8]", aabb.Min.X, aabb.Max.X)
	}
	if abs(aabb.Min.Y+5) > tol || abs(aabb.Max.Y-5) > tol {
		t.Errorf("AABB Y span = [%v, %v], want [-5, 5]", aabb.Min.Y, aabb.Max.Y)
	}
	if abs(aabb.Min.Z+10) > tol || abs(aabb.Max.Z) > tol {
		t.Errorf("AABB Z span = [%v, %v], want [-10, 0]", aabb.Min.Z, aabb.Max.Z)
	}

	if !m.Material.Unlit {
		t.Error("room grid material should be unlit")
	}
}

func TestRoomOutlineEdgeCount(t *testing.T) {
	dims := parallax.Dimensions{Width: 10, Height: 10, Depth: 10}
	m := CreateRoomOutline(dims)

	// 12 box edges, 2 vertices and 2 indices each.
	if len(m.Vertices) != 24 {
		t.Errorf("expected 24 vertices, got %d", len(m.Vertices))
	}
	if len(m.Indices) != 24 {
		t.Errorf("expected 24 indices, got %d", len(m.Indices))
	}
	if m.DrawMode != DrawLines {
		t.Errorf("expected DrawLines mode, got %v", m.DrawMode)
	}
}

func TestRoomGridFollowsAspect(t *testing.T) {
	wide := CreateRoomGrid(parallax.ComputeDimensions(1.6, 10, 10), 10)
	square := CreateRoomGrid(parallax.ComputeDimensions(1.0, 10, 10), 10)

	const tol = 0.0001
	if abs(wide.LocalAABB.Max.X-8) > tol {
		t.Errorf("wide grid half-width = %v, want 8", wide.LocalAABB.Max.X)
	}
	if abs(square.LocalAABB.Max.X-5) > tol {
		t.Errorf("square grid half-width = %v, want 5", square.LocalAABB.Max.X)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
