package geom

import "github.com/go-gl/mathgl/mgl32"

const rayEpsilon = 1e-7

// Triangle is three vertices in counter-clockwise order.
type Triangle struct {
	A, B, C mgl32.Vec3
}

// NewTriangle creates a triangle from three vertices.
func NewTriangle(a, b, c mgl32.Vec3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Normal returns the unit normal of the triangle's plane.
func (t Triangle) Normal() mgl32.Vec3 {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// Center returns the centroid.
func (t Triangle) Center() mgl32.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// IntersectRay tests the ray against the triangle (Moller-Trumbore, both
// faces). On a hit it returns the distance along the ray and the barycentric
// weights (wA, wB, wC) of the hit point.
func (t Triangle) IntersectRay(r Ray) (dist float32, bary mgl32.Vec3, ok bool) {
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)

	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, mgl32.Vec3{}, false // parallel to the plane
	}
	inv := 1.0 / det

	s := r.Origin.Sub(t.A)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, mgl32.Vec3{}, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, mgl32.Vec3{}, false
	}

	dist = e2.Dot(q) * inv
	if dist <= rayEpsilon {
		return 0, mgl32.Vec3{}, false // behind or at the origin
	}
	return dist, mgl32.Vec3{1 - u - v, u, v}, true
}

// ClosestPoint returns the point on the triangle closest to p.
func (t Triangle) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	ap := p.Sub(t.A)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return t.A
	}

	bp := p.Sub(t.B)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return t.B
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return t.A.Add(ab.Mul(v))
	}

	cp := p.Sub(t.C)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return t.C
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return t.A.Add(ac.Mul(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return t.B.Add(t.C.Sub(t.B).Mul(w))
	}

	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return t.A.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// IntersectsSphere reports whether any point of the triangle lies within s.
func (t Triangle) IntersectsSphere(s Sphere) bool {
	return s.ContainsPoint(t.ClosestPoint(s.Center))
}
