// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chisel3d/chisel/internal/engine/mesh"
)

// CubeWireframeVertices creates line vertices for a wireframe cube with the
// given center and edge width. Returns 24 vertices (12 edges x 2
// endpoints), 3 floats per vertex.
func CubeWireframeVertices(center mgl32.Vec3, width float32) []float32 {
	h := width * 0.5
	minX, minY, minZ := center.X()-h, center.Y()-h, center.Z()-h
	maxX, maxY, maxZ := center.X()+h, center.Y()+h, center.Z()+h

	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// OctreeWireframeVertices creates line vertices outlining every allocated
// node region of the spatial index.
func OctreeWireframeVertices(o *mesh.Octree) []float32 {
	var vertices []float32
	o.ForEachNode(func(center mgl32.Vec3, width float32) {
		vertices = append(vertices, CubeWireframeVertices(center, width)...)
	})
	return vertices
}
