package geom

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a center and radius.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// ContainsPoint reports whether p lies inside or on the sphere.
func (s Sphere) ContainsPoint(p mgl32.Vec3) bool {
	d := p.Sub(s.Center)
	return d.Dot(d) <= s.Radius*s.Radius
}

// IntersectRay returns the nearest positive distance at which the ray hits
// the sphere surface. Rays starting inside hit the far side.
func (s Sphere) IntersectRay(r Ray) (float32, bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(gomath.Sqrt(float64(disc)))
	t := -b - sq
	if t <= 0 {
		t = -b + sq
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}
