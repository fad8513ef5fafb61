// Package render implements the GPU buffer collaborator the mesh writes
// into: a CPU-side array buffer and an OpenGL-backed version of it.
package render

import "github.com/go-gl/mathgl/mgl32"

// ArrayBuffer keeps packed vertex, normal and triangle-index arrays in
// memory. It satisfies the mesh buffer contract without touching the GPU,
// which also makes it the buffer tests run against.
type ArrayBuffer struct {
	positions []float32
	normals   []float32
	indices   []uint32
}

// NewArrayBuffer creates an empty buffer.
func NewArrayBuffer() *ArrayBuffer {
	return &ArrayBuffer{}
}

// NumVertices returns the vertex count.
func (b *ArrayBuffer) NumVertices() int { return len(b.positions) / 3 }

// AddVertex appends a vertex and a zero normal, returning the new index.
func (b *ArrayBuffer) AddVertex(pos mgl32.Vec3) uint32 {
	index := uint32(len(b.positions) / 3)
	b.positions = append(b.positions, pos.X(), pos.Y(), pos.Z())
	b.normals = append(b.normals, 0, 0, 0)
	return index
}

// SetVertex overwrites the position at index.
func (b *ArrayBuffer) SetVertex(index uint32, pos mgl32.Vec3) {
	b.positions[index*3] = pos.X()
	b.positions[index*3+1] = pos.Y()
	b.positions[index*3+2] = pos.Z()
}

// Vertex reads the position at index.
func (b *ArrayBuffer) Vertex(index uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		b.positions[index*3],
		b.positions[index*3+1],
		b.positions[index*3+2],
	}
}

// PopVertex removes the last vertex and its normal.
func (b *ArrayBuffer) PopVertex() {
	b.positions = b.positions[:len(b.positions)-3]
	b.normals = b.normals[:len(b.normals)-3]
}

// NumIndices returns the index-buffer length.
func (b *ArrayBuffer) NumIndices() int { return len(b.indices) }

// AddIndex appends an index value and returns its slot.
func (b *ArrayBuffer) AddIndex(value uint32) uint32 {
	b.indices = append(b.indices, value)
	return uint32(len(b.indices) - 1)
}

// SetIndex overwrites the value at slot.
func (b *ArrayBuffer) SetIndex(slot uint32, value uint32) { b.indices[slot] = value }

// Index reads the value at slot.
func (b *ArrayBuffer) Index(slot uint32) uint32 { return b.indices[slot] }

// ResizeIndices sets the index-buffer length, keeping the common prefix.
func (b *ArrayBuffer) ResizeIndices(n int) {
	for len(b.indices) < n {
		b.indices = append(b.indices, 0)
	}
	b.indices = b.indices[:n]
}

// GrowIndices appends zeroed slots.
func (b *ArrayBuffer) GrowIndices(by int) { b.ResizeIndices(len(b.indices) + by) }

// ShrinkIndices drops slots from the tail.
func (b *ArrayBuffer) ShrinkIndices(by int) { b.indices = b.indices[:len(b.indices)-by] }

// SetNormal overwrites the normal at index.
func (b *ArrayBuffer) SetNormal(index uint32, normal mgl32.Vec3) {
	b.normals[index*3] = normal.X()
	b.normals[index*3+1] = normal.Y()
	b.normals[index*3+2] = normal.Z()
}

// Normal reads the normal at index.
func (b *ArrayBuffer) Normal(index uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		b.normals[index*3],
		b.normals[index*3+1],
		b.normals[index*3+2],
	}
}

// Upload is a no-op for the CPU-only buffer.
func (b *ArrayBuffer) Upload() {}

// Render is a no-op for the CPU-only buffer.
func (b *ArrayBuffer) Render() {}

// ToggleRenderMode is a no-op for the CPU-only buffer.
func (b *ArrayBuffer) ToggleRenderMode() {}

// Reset clears all arrays.
func (b *ArrayBuffer) Reset() {
	b.positions = b.positions[:0]
	b.normals = b.normals[:0]
	b.indices = b.indices[:0]
}
