// Package mesh implements a mutable winged-edge triangle mesh with an
// octree spatial index. The mesh keeps full topological adjacency under
// structural edits and writes a packed triangle-index/vertex/normal buffer
// for rendering.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Buffer is the GPU-facing vertex/index/normal store the mesh writes into.
// A Mesh owns exactly one Buffer. Apart from the accessors below the mesh
// only ever queries lengths; it never reads uploaded data back.
type Buffer interface {
	NumVertices() int
	AddVertex(pos mgl32.Vec3) uint32
	SetVertex(index uint32, pos mgl32.Vec3)
	Vertex(index uint32) mgl32.Vec3
	PopVertex()

	NumIndices() int
	AddIndex(value uint32) uint32
	SetIndex(slot uint32, value uint32)
	Index(slot uint32) uint32
	ResizeIndices(n int)
	GrowIndices(by int)
	ShrinkIndices(by int)

	SetNormal(index uint32, normal mgl32.Vec3)
	Normal(index uint32) mgl32.Vec3

	Upload()
	Render()
	ToggleRenderMode()
	Reset()
}
