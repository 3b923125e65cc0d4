package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Right x Up = Front in a right-handed system
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Components(t *testing.T) {
	v := NewVec3(3, -1, 2)
	if v.MinComponent() != -1 {
		t.Errorf("MinComponent: expected -1, got %v", v.MinComponent())
	}
	if v.MaxComponent() != 3 {
		t.Errorf("MaxComponent: expected 3, got %v", v.MaxComponent())
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if math32.Abs(length-1) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	point := NewVec4(0, 0, 0, 1)
	result := point.MulMat(m)

	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4Frustum_SymmetricMatchesPerspective(t *testing.T) {
	fovY := float32(math32.Pi / 3)
	aspect := float32(16.0 / 9.0)
	near := float32(0.1)
	far := float32(1000.0)

	halfH := near * math32.Tan(fovY/2)
	halfW := halfH * aspect

	persp := Mat4Perspective(fovY, aspect, near, far)
	frust := Mat4Frustum(-halfW, halfW, -halfH, halfH, near, far)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math32.Abs(persp[i][j]-frust[i][j]) > 0.0001 {
				t.Errorf("symmetric frustum: [%d][%d] perspective=%v frustum=%v",
					i, j, persp[i][j], frust[i][j])
			}
		}
	}
}

func TestMat4Frustum_CornersMapToClipEdges(t *testing.T) {
	left, right := float32(-0.2), float32(0.6)
	bottom, top := float32(-0.5), float32(0.1)
	near, far := float32(0.1), float32(100.0)

	m := Mat4Frustum(left, right, bottom, top, near, far)

	cases := []struct {
		point    Vec4
		ndcX     float32
		ndcY     float32
	}{
		{NewVec4(left, bottom, -near, 1), -1, -1},
		{NewVec4(right, top, -near, 1), 1, 1},
		{NewVec4((left+right)/2, (bottom+top)/2, -near, 1), 0, 0},
	}

	for _, c := range cases {
		clip := c.point.MulMat(m)
		if clip.W == 0 {
			t.Fatalf("corner %v: clip W is zero", c.point)
		}
		ndcX := clip.X / clip.W
		ndcY := clip.Y / clip.W
		if math32.Abs(ndcX-c.ndcX) > 0.0001 || math32.Abs(ndcY-c.ndcY) > 0.0001 {
			t.Errorf("corner %v: expected ndc (%v,%v), got (%v,%v)",
				c.point, c.ndcX, c.ndcY, ndcX, ndcY)
		}
	}
}

func TestMat4Frustum_NearFarDepthRange(t *testing.T) {
	m := Mat4Frustum(-1, 1, -1, 1, 0.1, 1000)

	nearPt := NewVec4(0, 0, -0.1, 1).MulMat(m)
	farPt := NewVec4(0, 0, -1000, 1).MulMat(m)

	if math32.Abs(nearPt.Z/nearPt.W+1) > 0.0001 {
		t.Errorf("near plane: expected ndc z=-1, got %v", nearPt.Z/nearPt.W)
	}
	if math32.Abs(farPt.Z/farPt.W-1) > 0.001 {
		t.Errorf("far plane: expected ndc z=1, got %v", farPt.Z/farPt.W)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	target := NewVec3(0, 0, 0)
	up := Vec3Up

	m := Mat4LookAt(eye, target, up)

	// The view matrix should transform the eye position to origin
	point := eye.ToVec4(1)
	result := m.MulVec(point)

	tolerance := float32(0.001)
	if math32.Abs(result.X) > tolerance ||
		math32.Abs(result.Y) > tolerance ||
		math32.Abs(result.Z) > tolerance {
		t.Errorf("LookAt: expected eye to transform to origin, got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func TestQuaternionRotation(t *testing.T) {
	// 90 degree rotation around Y axis
	q := QuaternionFromAxisAngle(Vec3Up, math32.Pi/2)

	result := q.RotateVector(Vec3Right)

	tolerance := float32(0.001)
	if math32.Abs(result.X) > tolerance ||
		math32.Abs(result.Y) > tolerance ||
		math32.Abs(result.Z+1) > tolerance {
		t.Errorf("Quaternion rotation: expected approximately (0,0,-1), got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func BenchmarkMat4Frustum(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Mat4Frustum(-0.2, 0.6, -0.5, 0.1, 0.1, 1000)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
