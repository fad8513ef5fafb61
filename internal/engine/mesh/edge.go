package mesh

import (
	"container/list"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Edge is a winged edge. It references its two endpoint vertices, the faces
// on its left and right side (by identity), the neighbouring edges along
// both face loops, and a circular sibling chain of edges sharing a vertex.
// A boundary edge leaves one face side unset.
type Edge struct {
	ID uuid.UUID

	Vertex1 *Vertex
	Vertex2 *Vertex

	LeftFace  uuid.UUID
	RightFace uuid.UUID

	LeftPredecessor  *Edge
	LeftSuccessor    *Edge
	RightPredecessor *Edge
	RightSuccessor   *Edge

	PreviousSibling *Edge
	NextSibling     *Edge

	// Opaque payload consumed by the sculpting tools.
	TEdge          bool
	FaceGradient   float32
	VertexGradient mgl32.Vec3

	elem *list.Element // slot in the owning mesh's edge list
}

// IsVertex1 reports whether v is the edge's first endpoint.
func (e *Edge) IsVertex1(v *Vertex) bool { return e.Vertex1 == v }

// OtherVertex returns the endpoint opposite to v.
func (e *Edge) OtherVertex(v *Vertex) *Vertex {
	if e.Vertex1 == v {
		return e.Vertex2
	}
	return e.Vertex1
}

// IsLeftFace reports whether the face id is on the edge's left side.
func (e *Edge) IsLeftFace(faceID uuid.UUID) bool { return e.LeftFace == faceID }

// FirstVertex returns the endpoint the given face's loop passes first.
func (e *Edge) FirstVertex(faceID uuid.UUID) *Vertex {
	if e.IsLeftFace(faceID) {
		return e.Vertex1
	}
	return e.Vertex2
}

// SecondVertex returns the endpoint the given face's loop passes second.
func (e *Edge) SecondVertex(faceID uuid.UUID) *Vertex {
	if e.IsLeftFace(faceID) {
		return e.Vertex2
	}
	return e.Vertex1
}

// Successor returns the next edge along the given face's boundary loop.
func (e *Edge) Successor(faceID uuid.UUID) *Edge {
	if e.IsLeftFace(faceID) {
		return e.LeftSuccessor
	}
	return e.RightSuccessor
}

// Predecessor returns the previous edge along the given face's boundary loop.
func (e *Edge) Predecessor(faceID uuid.UUID) *Edge {
	if e.IsLeftFace(faceID) {
		return e.LeftPredecessor
	}
	return e.RightPredecessor
}

// LinkSiblings threads the edge into the circular sibling chain directly
// after other. With a nil chain the edge links to itself.
func (e *Edge) LinkSiblings(other *Edge) {
	if other == nil {
		e.PreviousSibling = e
		e.NextSibling = e
		return
	}
	e.NextSibling = other.NextSibling
	e.PreviousSibling = other
	other.NextSibling.PreviousSibling = e
	other.NextSibling = e
}

// UnlinkSiblings removes the edge from its sibling chain. Callers must
// unlink before deleting the edge from the mesh.
func (e *Edge) UnlinkSiblings() {
	if e.NextSibling != nil && e.NextSibling != e {
		e.NextSibling.PreviousSibling = e.PreviousSibling
	}
	if e.PreviousSibling != nil && e.PreviousSibling != e {
		e.PreviousSibling.NextSibling = e.NextSibling
	}
	e.NextSibling = nil
	e.PreviousSibling = nil
}
