// Package geom provides the geometric primitives used by the mesh core:
// rays, spheres, triangles and axis-aligned boxes, together with the
// intersection predicates the spatial index relies on.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay creates a ray from origin towards direction. The direction is
// normalized; a zero direction is kept as-is and intersects nothing.
func NewRay(origin, direction mgl32.Vec3) Ray {
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction}
}

// PointAt returns the point at distance t along the ray.
func (r Ray) PointAt(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
