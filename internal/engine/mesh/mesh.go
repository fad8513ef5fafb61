package mesh

import (
	"container/list"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/chisel3d/chisel/pkg/geom"
)

// Mesh is the facade over the topology store (vertices and winged edges),
// the octree spatial index (faces) and the external GPU buffer. All
// operations are synchronous and single-threaded; precondition violations
// panic, failed lookups return nil.
type Mesh struct {
	id       uuid.UUID
	buffer   Buffer
	vertices []*Vertex
	edges    *list.List
	octree   *Octree
	alloc    *indexAllocator
}

// New creates an empty mesh writing into the given buffer.
func New(buffer Buffer) *Mesh {
	return NewWithID(uuid.New(), buffer)
}

// NewWithID creates an empty mesh with a caller-chosen identity.
func NewWithID(id uuid.UUID, buffer Buffer) *Mesh {
	return &Mesh{
		id:     id,
		buffer: buffer,
		edges:  list.New(),
		octree: newOctree(),
		alloc:  newIndexAllocator(buffer),
	}
}

// ID returns the mesh identity.
func (m *Mesh) ID() uuid.UUID { return m.id }

// Octree exposes the spatial index, mainly for debug visualization.
func (m *Mesh) Octree() *Octree { return m.octree }

// VertexPosition reads a vertex position from the buffer.
func (m *Mesh) VertexPosition(index uint32) mgl32.Vec3 { return m.buffer.Vertex(index) }

// BufferIndex reads the vertex index stored at an index-buffer slot.
func (m *Mesh) BufferIndex(slot uint32) uint32 { return m.buffer.Index(slot) }

// Normal reads a vertex normal from the buffer.
func (m *Mesh) Normal(index uint32) mgl32.Vec3 { return m.buffer.Normal(index) }

// AddVertex appends a vertex with a freshly allocated buffer index.
func (m *Mesh) AddVertex(pos mgl32.Vec3) *Vertex {
	index := m.buffer.AddVertex(pos)
	v := &Vertex{Index: index}
	m.vertices = append(m.vertices, v)
	return v
}

// AddEdge deep-copies the template edge into the mesh and returns the
// stored edge. All adjacency fields are taken as-is; threading the sibling
// chains is the caller's responsibility.
func (m *Mesh) AddEdge(template Edge) *Edge {
	e := template
	e.elem = m.edges.PushBack(&e)
	return &e
}

// AddFace obtains an index range from the allocator and inserts the face
// into the spatial index.
func (m *Mesh) AddFace(template Face, geometry geom.Triangle) *Face {
	template.firstIndexNumber = m.alloc.allocate()
	return m.octree.InsertFace(template, geometry)
}

// DeleteEdge removes the edge from the mesh. The edge's loop and sibling
// links must already be unthreaded.
func (m *Mesh) DeleteEdge(e *Edge) {
	m.edges.Remove(e.elem)
	e.elem = nil
}

// DeleteFace releases the face's index range and removes it from the
// spatial index.
func (m *Mesh) DeleteFace(f *Face) {
	m.alloc.release(f.firstIndexNumber)
	m.octree.DeleteFace(f)
}

// PopVertex removes the most recently added vertex. It must be unreferenced
// by any remaining edge.
func (m *Mesh) PopVertex() {
	if len(m.vertices) == 0 {
		panic("mesh: pop on empty vertex collection")
	}
	m.buffer.PopVertex()
	m.vertices = m.vertices[:len(m.vertices)-1]
}

// SetVertex writes a vertex position.
func (m *Mesh) SetVertex(index uint32, pos mgl32.Vec3) { m.buffer.SetVertex(index, pos) }

// SetNormal writes a vertex normal.
func (m *Mesh) SetNormal(index uint32, normal mgl32.Vec3) { m.buffer.SetNormal(index, normal) }

// RealignFace re-evaluates which octree node the face belongs in after its
// geometry changed. Identity and index range are preserved; sameNode
// reports whether the node was unchanged.
func (m *Mesh) RealignFace(f *Face, geometry geom.Triangle) (face *Face, sameNode bool) {
	return m.octree.RealignFace(f, geometry)
}

// VertexByIndex finds a vertex by buffer index with a linear scan; nil when
// no vertex matches.
func (m *Mesh) VertexByIndex(index uint32) *Vertex {
	for _, v := range m.vertices {
		if v.Index == index {
			return v
		}
	}
	return nil
}

// EdgeByID finds an edge by identity with a linear scan; nil when no edge
// matches.
func (m *Mesh) EdgeByID(id uuid.UUID) *Edge {
	for el := m.edges.Front(); el != nil; el = el.Next() {
		if e := el.Value.(*Edge); e.ID == id {
			return e
		}
	}
	return nil
}

// FaceByID finds a face by identity; nil when no face matches.
func (m *Mesh) FaceByID(id uuid.UUID) *Face { return m.octree.FaceByID(id) }

// LastVertex returns the most recently added vertex.
func (m *Mesh) LastVertex() *Vertex {
	if len(m.vertices) == 0 {
		panic("mesh: last vertex on empty vertex collection")
	}
	return m.vertices[len(m.vertices)-1]
}

// NumVertices returns the vertex count. The buffer and the topology store
// must agree at all times.
func (m *Mesh) NumVertices() int {
	if m.buffer.NumVertices() != len(m.vertices) {
		panic(fmt.Sprintf("mesh: buffer has %d vertices, topology has %d",
			m.buffer.NumVertices(), len(m.vertices)))
	}
	return len(m.vertices)
}

// NumEdges returns the edge count.
func (m *Mesh) NumEdges() int { return m.edges.Len() }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return m.octree.NumFaces() }

// NumIndices returns the index-buffer length, always a multiple of 3.
func (m *Mesh) NumIndices() int { return m.buffer.NumIndices() }

// IsEmpty reports whether the mesh holds no vertices, faces or indices.
func (m *Mesh) IsEmpty() bool {
	return m.NumVertices() == 0 && m.NumFaces() == 0 && m.NumIndices() == 0
}

// WriteIndices synchronizes the index buffer. With holes outstanding it
// performs the full rewrite: the buffer is resized to 3*numFaces and every
// face is renumbered sequentially in traversal order. Without holes every
// face emits at its existing range.
func (m *Mesh) WriteIndices() {
	if m.alloc.needsFullRewrite() {
		m.buffer.ResizeIndices(m.NumFaces() * 3)
		fin := uint32(0)
		m.octree.ForEachFace(func(f *Face) {
			f.writeIndicesAt(m, fin)
			fin += 3
		})
		m.alloc.clear()
	} else {
		m.octree.ForEachFace(func(f *Face) {
			f.WriteIndices(m)
		})
	}
}

// WriteNormals recomputes and emits every vertex normal.
func (m *Mesh) WriteNormals() {
	for _, v := range m.vertices {
		v.WriteNormal(m)
	}
}

// Write emits indices, then normals.
func (m *Mesh) Write() {
	m.WriteIndices()
	m.WriteNormals()
}

// BufferUpload hands the written buffer to the GPU. No index holes may be
// outstanding.
func (m *Mesh) BufferUpload() {
	if m.alloc.needsFullRewrite() {
		panic("mesh: upload with outstanding index holes")
	}
	m.buffer.Upload()
}

// WriteAndUpload writes and uploads in one step.
func (m *Mesh) WriteAndUpload() {
	m.Write()
	m.BufferUpload()
}

// Render issues the buffer's draw call.
func (m *Mesh) Render() { m.buffer.Render() }

// ToggleRenderMode switches the buffer between solid and wireframe.
func (m *Mesh) ToggleRenderMode() { m.buffer.ToggleRenderMode() }

// InitOctreeRoot fixes the spatial index root region. Callable exactly
// once, only while the mesh is empty.
func (m *Mesh) InitOctreeRoot(center mgl32.Vec3, width float32) {
	if !m.IsEmpty() {
		panic("mesh: octree root initialization on non-empty mesh")
	}
	m.octree.InitRoot(center, width)
}

// Reset clears the buffer, the topology and the spatial index back to
// empty. The mesh is reusable afterwards.
func (m *Mesh) Reset() {
	m.buffer.Reset()
	m.vertices = nil
	m.edges.Init()
	m.octree.Reset()
	m.alloc.clear()
}

// IntersectRay delegates to the spatial index; out accumulates the closest
// hit and may already carry one from another mesh.
func (m *Mesh) IntersectRay(ray geom.Ray, out *FaceIntersection) bool {
	return m.octree.IntersectRay(m, ray, out)
}

// IntersectSphereFaces collects ids of faces intersecting the sphere.
func (m *Mesh) IntersectSphereFaces(sphere geom.Sphere, out map[uuid.UUID]struct{}) bool {
	return m.octree.IntersectSphereFaces(m, sphere, out)
}

// IntersectSphereVertices collects distinct vertices inside the sphere.
func (m *Mesh) IntersectSphereVertices(sphere geom.Sphere, out map[*Vertex]struct{}) bool {
	return m.octree.IntersectSphereVertices(m, sphere, out)
}

// numFreeIndexRanges exposes the allocator hole count to tests.
func (m *Mesh) numFreeIndexRanges() int { return m.alloc.numFree() }
