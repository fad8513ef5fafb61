package mesh

import (
	"github.com/google/uuid"

	"github.com/chisel3d/chisel/pkg/geom"
)

// Face is one triangle of the mesh. It is stored in the octree node whose
// region contains its geometry and owns three consecutive slots of the
// packed index buffer, starting at its first index number.
type Face struct {
	ID   uuid.UUID
	Edge *Edge

	firstIndexNumber uint32
	node             *octreeNode
}

// NewFace creates a face template around the given boundary edge. A nil id
// assigns a fresh identity.
func NewFace(edge *Edge, id uuid.UUID) Face {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Face{ID: id, Edge: edge}
}

// FirstIndexNumber is the offset of the face's 3 slots in the index buffer.
// It is always a multiple of 3 and owned by exactly one live face.
func (f *Face) FirstIndexNumber() uint32 { return f.firstIndexNumber }

// Vertices returns the three corner vertices in boundary-loop order.
func (f *Face) Vertices() [3]*Vertex {
	e0 := f.Edge
	e1 := e0.Successor(f.ID)
	e2 := e1.Successor(f.ID)
	return [3]*Vertex{
		e0.FirstVertex(f.ID),
		e1.FirstVertex(f.ID),
		e2.FirstVertex(f.ID),
	}
}

// Triangle resolves the face geometry through the mesh buffer.
func (f *Face) Triangle(m *Mesh) geom.Triangle {
	vs := f.Vertices()
	return geom.NewTriangle(vs[0].Position(m), vs[1].Position(m), vs[2].Position(m))
}

// WriteIndices emits the face's three vertex indices into the buffer at the
// face's existing slot range.
func (f *Face) WriteIndices(m *Mesh) {
	vs := f.Vertices()
	for i, v := range vs {
		m.buffer.SetIndex(f.firstIndexNumber+uint32(i), v.Index)
	}
}

// writeIndicesAt renumbers the face to a new slot range and emits there.
// Used by the full index rewrite.
func (f *Face) writeIndicesAt(m *Mesh, firstIndexNumber uint32) {
	f.firstIndexNumber = firstIndexNumber
	f.WriteIndices(m)
}
