package geom

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewCube creates the axis-aligned cube with the given center and edge width.
func NewCube(center mgl32.Vec3, width float32) AABB {
	h := width * 0.5
	return AABB{
		Min: center.Sub(mgl32.Vec3{h, h, h}),
		Max: center.Add(mgl32.Vec3{h, h, h}),
	}
}

// ContainsPoint reports whether p lies inside or on the box.
func (b AABB) ContainsPoint(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// ContainsTriangle reports whether the triangle lies entirely inside the box.
func (b AABB) ContainsTriangle(t Triangle) bool {
	return b.ContainsPoint(t.A) && b.ContainsPoint(t.B) && b.ContainsPoint(t.C)
}

// IntersectsRay tests the ray against the box using the slab method.
// Rays starting inside the box intersect it.
func (b AABB) IntersectsRay(r Ray) bool {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] != 0 {
			t1 := (b.Min[axis] - r.Origin[axis]) / r.Direction[axis]
			t2 := (b.Max[axis] - r.Origin[axis]) / r.Direction[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if r.Origin[axis] < b.Min[axis] || r.Origin[axis] > b.Max[axis] {
			return false
		}
	}
	return tmax >= tmin && tmax >= 0
}

// IntersectsSphere reports whether the sphere overlaps the box.
func (b AABB) IntersectsSphere(s Sphere) bool {
	var closest mgl32.Vec3
	for axis := 0; axis < 3; axis++ {
		closest[axis] = mgl32.Clamp(s.Center[axis], b.Min[axis], b.Max[axis])
	}
	return s.ContainsPoint(closest)
}
