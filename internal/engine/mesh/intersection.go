package mesh

import "github.com/go-gl/mathgl/mgl32"

// FaceIntersection accumulates the closest ray hit against mesh faces.
// A zero value means no intersection yet; Update keeps the nearer hit, so
// one FaceIntersection can collect the winner across several meshes.
type FaceIntersection struct {
	mesh     *Mesh
	face     *Face
	distance float32
	position mgl32.Vec3
	bary     mgl32.Vec3
	valid    bool
}

// Update records a hit if it is closer than the current one.
func (i *FaceIntersection) Update(distance float32, position, bary mgl32.Vec3, m *Mesh, f *Face) {
	if i.valid && distance >= i.distance {
		return
	}
	i.mesh = m
	i.face = f
	i.distance = distance
	i.position = position
	i.bary = bary
	i.valid = true
}

// IsIntersection reports whether a hit has been recorded.
func (i *FaceIntersection) IsIntersection() bool { return i.valid }

// Mesh returns the hit mesh.
func (i *FaceIntersection) Mesh() *Mesh { return i.mesh }

// Face returns the hit face.
func (i *FaceIntersection) Face() *Face { return i.face }

// Distance returns the distance along the ray to the hit point.
func (i *FaceIntersection) Distance() float32 { return i.distance }

// Position returns the hit point.
func (i *FaceIntersection) Position() mgl32.Vec3 { return i.position }

// Barycentric returns the barycentric weights of the hit point with respect
// to the face's loop-ordered vertices.
func (i *FaceIntersection) Barycentric() mgl32.Vec3 { return i.bary }

// Reset clears the intersection for reuse.
func (i *FaceIntersection) Reset() { *i = FaceIntersection{} }
