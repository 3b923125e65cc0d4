package scene

import (
	"testing"

	dvMath "diorama-viewer/math"
	"diorama-viewer/parallax"
)

func TestCameraViewIsPureTranslation(t *testing.T) {
	cam := NewCamera(0.1, 1000)
	cam.ApplyPose(parallax.Pose{
		Eye:  dvMath.Vec3{X: -4.5, Y: -1.125, Z: 15},
		Left: -0.1, Right: 0.1, Top: 0.1, Bottom: -0.1,
		Near: 0.1, Far: 1000,
	})

	view := cam.GetViewMatrix()

	// Upper-left 3x3 must stay identity: the eye never rotates.
	const tol = 0.0001
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if abs(view[i][j]-want) > tol {
				t.Fatalf("view[%d][%d] = %v, want %v", i, j, view[i][j], want)
			}
		}
	}

	// The eye position must map to the view-space origin.
	origin := view.MulVec3(dvMath.Vec3{X: -4.5, Y: -1.125, Z: 15})
	if abs(origin.X) > tol || abs(origin.Y) > tol || abs(origin.Z) > tol {
		t.Errorf("eye did not map to origin: %v", origin)
	}
}

func TestCameraMatrixCaching(t *testing.T) {
	cam := NewCamera(0.1, 1000)
	pose := parallax.Pose{
		Eye:  dvMath.Vec3{X: 1, Y: 2, Z: 15},
		Left: -0.12, Right: 0.08, Top: 0.05, Bottom: -0.15,
		Near: 0.1, Far: 1000,
	}
	cam.ApplyPose(pose)

	a := cam.GetViewProjectionMatrix()
	b := cam.GetViewProjectionMatrix()
	if a != b {
		t.Error("cached view-projection changed without a pose update")
	}

	pose.Eye.X = -1
	cam.ApplyPose(pose)
	c := cam.GetViewProjectionMatrix()
	if a == c {
		t.Error("view-projection did not change after pose update")
	}
}

func TestCameraFrustumCullingWithOffAxisPose(t *testing.T) {
	cam := NewCamera(0.1, 1000)
	// Symmetric pose over a 16x10 window at eye distance 15.
	cam.ApplyPose(parallax.Pose{
		Eye:  dvMath.Vec3{Z: 15},
		Left: -8.0 / 150, Right: 8.0 / 150,
		Top: 5.0 / 150, Bottom: -5.0 / 150,
		Near: 0.1, Far: 1000,
	})

	f := FrustumFromVP(cam.GetViewProjectionMatrix())

	inside := AABB{
		Min: dvMath.Vec3{X: -1, Y: -1, Z: -6},
		Max: dvMath.Vec3{X: 1, Y: 1, Z: -4},
	}
	if !inside.IntersectsFrustum(&f) {
		t.Error("box at the room center was culled")
	}

	behind := AABB{
		Min: dvMath.Vec3{X: -1, Y: -1, Z: 30},
		Max: dvMath.Vec3{X: 1, Y: 1, Z: 32},
	}
	if behind.IntersectsFrustum(&f) {
		t.Error("box behind the eye was not culled")
	}

	farLeft := AABB{
		Min: dvMath.Vec3{X: -500, Y: -1, Z: -6},
		Max: dvMath.Vec3{X: -490, Y: 1, Z: -4},
	}
	if farLeft.IntersectsFrustum(&f) {
		t.Error("box far outside the window was not culled")
	}
}
