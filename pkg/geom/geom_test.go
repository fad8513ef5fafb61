package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRayPointAt(t *testing.T) {
	r := NewRay(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 2, 0})
	got := r.PointAt(3)
	want := mgl32.Vec3{1, 3, 0}
	if got != want {
		t.Errorf("PointAt(3) = %v, want %v", got, want)
	}
}

func TestTriangleIntersectRayHit(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{-1, -1, 0},
		mgl32.Vec3{1, -1, 0},
		mgl32.Vec3{0, 1, 0},
	)
	r := NewRay(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1})

	dist, bary, ok := tri.IntersectRay(r)
	if !ok {
		t.Fatal("expected intersection")
	}
	if dist < 4.999 || dist > 5.001 {
		t.Errorf("dist = %v, want ~5", dist)
	}
	sum := bary.X() + bary.Y() + bary.Z()
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("barycentric weights sum to %v, want ~1", sum)
	}
}

func TestTriangleIntersectRayMiss(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{-1, -1, 0},
		mgl32.Vec3{1, -1, 0},
		mgl32.Vec3{0, 1, 0},
	)

	// Ray pointing away from the triangle.
	r := NewRay(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, -1})
	if _, _, ok := tri.IntersectRay(r); ok {
		t.Error("expected no intersection behind the origin")
	}

	// Ray passing beside the triangle.
	r = NewRay(mgl32.Vec3{5, 5, -5}, mgl32.Vec3{0, 0, 1})
	if _, _, ok := tri.IntersectRay(r); ok {
		t.Error("expected no intersection beside the triangle")
	}
}

func TestTriangleIntersectRayBackface(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{-1, -1, 0},
		mgl32.Vec3{1, -1, 0},
		mgl32.Vec3{0, 1, 0},
	)
	r := NewRay(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1})
	if _, _, ok := tri.IntersectRay(r); !ok {
		t.Error("expected backface intersection")
	}
}

func TestTriangleClosestPoint(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{2, 0, 0},
		mgl32.Vec3{0, 2, 0},
	)

	// Above the interior: projects onto the plane.
	got := tri.ClosestPoint(mgl32.Vec3{0.5, 0.5, 3})
	want := mgl32.Vec3{0.5, 0.5, 0}
	if got.Sub(want).Len() > 1e-5 {
		t.Errorf("ClosestPoint interior = %v, want %v", got, want)
	}

	// Beyond vertex A.
	got = tri.ClosestPoint(mgl32.Vec3{-1, -1, 0})
	if got != tri.A {
		t.Errorf("ClosestPoint vertex = %v, want %v", got, tri.A)
	}
}

func TestTriangleIntersectsSphere(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{-1, 0, 0},
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	if !tri.IntersectsSphere(Sphere{Center: mgl32.Vec3{0, 0.5, 0.2}, Radius: 0.5}) {
		t.Error("expected sphere overlapping the triangle to intersect")
	}
	if tri.IntersectsSphere(Sphere{Center: mgl32.Vec3{0, 0, 5}, Radius: 1}) {
		t.Error("expected distant sphere not to intersect")
	}
}

func TestCubeContainsTriangle(t *testing.T) {
	box := NewCube(mgl32.Vec3{0, 0, 0}, 2)
	inside := NewTriangle(
		mgl32.Vec3{-0.5, -0.5, 0},
		mgl32.Vec3{0.5, -0.5, 0},
		mgl32.Vec3{0, 0.5, 0},
	)
	if !box.ContainsTriangle(inside) {
		t.Error("expected triangle inside the cube to be contained")
	}
	straddling := NewTriangle(
		mgl32.Vec3{-0.5, -0.5, 0},
		mgl32.Vec3{5, -0.5, 0},
		mgl32.Vec3{0, 0.5, 0},
	)
	if box.ContainsTriangle(straddling) {
		t.Error("expected straddling triangle not to be contained")
	}
}

func TestAABBIntersectsRay(t *testing.T) {
	box := NewCube(mgl32.Vec3{0, 0, 0}, 2)

	if !box.IntersectsRay(NewRay(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1})) {
		t.Error("expected ray through the box to intersect")
	}
	if !box.IntersectsRay(NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})) {
		t.Error("expected ray starting inside the box to intersect")
	}
	if box.IntersectsRay(NewRay(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, -1})) {
		t.Error("expected ray pointing away not to intersect")
	}
	if box.IntersectsRay(NewRay(mgl32.Vec3{5, 5, -5}, mgl32.Vec3{0, 0, 1})) {
		t.Error("expected offset ray not to intersect")
	}
}

func TestAABBIntersectsSphere(t *testing.T) {
	box := NewCube(mgl32.Vec3{0, 0, 0}, 2)

	if !box.IntersectsSphere(Sphere{Center: mgl32.Vec3{1.4, 0, 0}, Radius: 0.5}) {
		t.Error("expected sphere touching the box face to intersect")
	}
	if box.IntersectsSphere(Sphere{Center: mgl32.Vec3{3, 0, 0}, Radius: 0.5}) {
		t.Error("expected distant sphere not to intersect")
	}
}
