package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Vertex is a winged vertex: a stable index into the external buffer plus
// one incident edge used as the entry point for walking its neighbourhood.
type Vertex struct {
	Index uint32
	Edge  *Edge
}

// Position resolves the vertex position through the mesh buffer.
func (v *Vertex) Position(m *Mesh) mgl32.Vec3 {
	return m.VertexPosition(v.Index)
}

// SetPosition writes a new position into the mesh buffer.
func (v *Vertex) SetPosition(m *Mesh, pos mgl32.Vec3) {
	m.SetVertex(v.Index, pos)
}

// forEachAdjacentFace visits every face around the vertex once, walking the
// winged links. The walk stops at an open boundary.
func (v *Vertex) forEachAdjacentFace(m *Mesh, fn func(*Face)) {
	start := v.Edge
	if start == nil {
		return
	}
	e := start
	for {
		var faceID uuid.UUID
		var next *Edge
		if e.Vertex1 == v {
			faceID = e.LeftFace
			next = e.LeftPredecessor
		} else {
			faceID = e.RightFace
			next = e.RightPredecessor
		}
		if faceID != uuid.Nil {
			if f := m.FaceByID(faceID); f != nil {
				fn(f)
			}
		}
		if next == nil || next == start {
			return
		}
		e = next
	}
}

// InterpolatedNormal averages the normals of the faces around the vertex.
func (v *Vertex) InterpolatedNormal(m *Mesh) mgl32.Vec3 {
	var sum mgl32.Vec3
	v.forEachAdjacentFace(m, func(f *Face) {
		sum = sum.Add(f.Triangle(m).Normal())
	})
	if sum.Len() == 0 {
		return mgl32.Vec3{}
	}
	return sum.Normalize()
}

// WriteNormal recomputes the vertex normal and emits it into the buffer.
func (v *Vertex) WriteNormal(m *Mesh) {
	m.SetNormal(v.Index, v.InterpolatedNormal(m))
}
