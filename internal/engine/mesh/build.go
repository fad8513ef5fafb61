package mesh

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/chisel3d/chisel/pkg/geom"
)

// FromTriangles populates the mesh with full winged topology from an
// indexed triangle list. Triangles must be counter-clockwise when viewed
// from outside and may share each undirected edge at most twice, in
// opposite directions. The octree root must already be initialized and
// contain every triangle.
func FromTriangles(m *Mesh, positions []mgl32.Vec3, tris [][3]int) error {
	verts := make([]*Vertex, len(positions))
	for i, p := range positions {
		verts[i] = m.AddVertex(p)
	}

	type edgeKey struct{ a, b int }
	key := func(u, v int) edgeKey {
		if u < v {
			return edgeKey{u, v}
		}
		return edgeKey{v, u}
	}
	edgeOf := make(map[edgeKey]*Edge, len(tris)*3/2)
	chainOf := make(map[*Vertex]*Edge, len(positions))

	for ti, tri := range tris {
		for _, i := range tri {
			if i < 0 || i >= len(positions) {
				return fmt.Errorf("triangle %d: vertex index %d out of range", ti, i)
			}
		}
		faceID := uuid.New()
		corners := [3][2]int{
			{tri[0], tri[1]},
			{tri[1], tri[2]},
			{tri[2], tri[0]},
		}

		var loop [3]*Edge
		for i, c := range corners {
			u, v := verts[c[0]], verts[c[1]]
			k := key(c[0], c[1])
			if e, ok := edgeOf[k]; ok {
				if e.RightFace != uuid.Nil {
					return fmt.Errorf("triangle %d: edge %d-%d borders more than two faces", ti, c[0], c[1])
				}
				if e.Vertex1 == u {
					return fmt.Errorf("triangle %d: inconsistent winding on edge %d-%d", ti, c[0], c[1])
				}
				e.RightFace = faceID
				loop[i] = e
				continue
			}
			e := m.AddEdge(Edge{
				ID:       uuid.New(),
				Vertex1:  u,
				Vertex2:  v,
				LeftFace: faceID,
			})
			e.LinkSiblings(chainOf[u])
			chainOf[u] = e
			edgeOf[k] = e
			if u.Edge == nil {
				u.Edge = e
			}
			if v.Edge == nil {
				v.Edge = e
			}
			loop[i] = e
		}

		for i, e := range loop {
			succ := loop[(i+1)%3]
			pred := loop[(i+2)%3]
			if e.IsLeftFace(faceID) {
				e.LeftSuccessor = succ
				e.LeftPredecessor = pred
			} else {
				e.RightSuccessor = succ
				e.RightPredecessor = pred
			}
		}

		geometry := geom.NewTriangle(
			positions[tri[0]], positions[tri[1]], positions[tri[2]])
		m.AddFace(NewFace(loop[0], faceID), geometry)
	}
	return nil
}

// Tetrahedron builds a regular tetrahedron centered at center whose
// vertices lie at distance radius.
func Tetrahedron(m *Mesh, center mgl32.Vec3, radius float32) error {
	s := radius / float32(gomath.Sqrt(3))
	positions := []mgl32.Vec3{
		center.Add(mgl32.Vec3{s, s, s}),
		center.Add(mgl32.Vec3{s, -s, -s}),
		center.Add(mgl32.Vec3{-s, s, -s}),
		center.Add(mgl32.Vec3{-s, -s, s}),
	}
	tris := [][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	return FromTriangles(m, positions, tris)
}

// Icosphere builds a sphere by subdividing an icosahedron the given number
// of times. Subdivision 0 is the raw icosahedron.
func Icosphere(m *Mesh, center mgl32.Vec3, radius float32, subdivisions int) error {
	t := float32((1 + gomath.Sqrt(5)) / 2)
	positions := []mgl32.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	tris := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	type midKey struct{ a, b int }
	for s := 0; s < subdivisions; s++ {
		midpoints := make(map[midKey]int)
		midpoint := func(a, b int) int {
			k := midKey{a, b}
			if a > b {
				k = midKey{b, a}
			}
			if i, ok := midpoints[k]; ok {
				return i
			}
			positions = append(positions, positions[a].Add(positions[b]).Mul(0.5))
			midpoints[k] = len(positions) - 1
			return len(positions) - 1
		}
		next := make([][3]int, 0, len(tris)*4)
		for _, tri := range tris {
			ab := midpoint(tri[0], tri[1])
			bc := midpoint(tri[1], tri[2])
			ca := midpoint(tri[2], tri[0])
			next = append(next,
				[3]int{tri[0], ab, ca},
				[3]int{tri[1], bc, ab},
				[3]int{tri[2], ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		tris = next
	}

	for i, p := range positions {
		positions[i] = center.Add(p.Normalize().Mul(radius))
	}
	return FromTriangles(m, positions, tris)
}
