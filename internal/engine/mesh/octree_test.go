package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/chisel3d/chisel/pkg/geom"
)

func TestInsertDescendsToDeepestContainingNode(t *testing.T) {
	m := newTestMesh(t, 16)

	// A small triangle well inside the (+,+,+) octant.
	f := addTriangle(t, m,
		mgl32.Vec3{4, 4, 4},
		mgl32.Vec3{4.5, 4, 4},
		mgl32.Vec3{4, 4.5, 4},
	)
	tri := f.Triangle(m)

	if !f.node.region.ContainsTriangle(tri) {
		t.Fatal("owning node region does not contain the face geometry")
	}
	// No child octant of the owning node may fully contain the geometry.
	for i := 0; i < 8; i++ {
		child := geom.NewCube(f.node.childCenter(i), f.node.width*0.5)
		if child.ContainsTriangle(tri) {
			t.Errorf("child octant %d still contains the geometry; node not deepest", i)
		}
	}
	if f.node.width >= 16 {
		t.Errorf("node width = %v, want a descent below the root", f.node.width)
	}
}

func TestFaceStraddlingOctantsStaysAtRoot(t *testing.T) {
	m := newTestMesh(t, 16)

	// Spans the center: no octant contains it.
	f := addTriangle(t, m,
		mgl32.Vec3{-1, -1, 0},
		mgl32.Vec3{1, -1, 0},
		mgl32.Vec3{0, 1, 0},
	)
	if f.node.width != 16 {
		t.Errorf("node width = %v, want root width 16", f.node.width)
	}
}

func TestRealignFaceSameNode(t *testing.T) {
	m := newTestMesh(t, 16)
	f := addTriangle(t, m,
		mgl32.Vec3{4, 4, 4},
		mgl32.Vec3{4.5, 4, 4},
		mgl32.Vec3{4, 4.5, 4},
	)

	face, sameNode := m.RealignFace(f, f.Triangle(m))
	if !sameNode {
		t.Error("expected unchanged geometry to stay in its node")
	}
	if face != f {
		t.Error("realign must preserve the face identity")
	}
	if m.NumFaces() != 1 {
		t.Errorf("NumFaces() = %d, want 1", m.NumFaces())
	}
}

func TestRealignFaceMovesToNewNode(t *testing.T) {
	m := newTestMesh(t, 16)
	f := addTriangle(t, m,
		mgl32.Vec3{4, 4, 4},
		mgl32.Vec3{4.5, 4, 4},
		mgl32.Vec3{4, 4.5, 4},
	)
	id := f.ID
	fin := f.FirstIndexNumber()

	// Move the geometry into the opposite octant.
	vs := f.Vertices()
	for _, v := range vs {
		v.SetPosition(m, v.Position(m).Mul(-1))
	}
	face, sameNode := m.RealignFace(f, f.Triangle(m))

	if sameNode {
		t.Error("expected the node to change")
	}
	if face.ID != id || face != f {
		t.Error("realign must preserve identity")
	}
	if face.FirstIndexNumber() != fin {
		t.Errorf("FirstIndexNumber() = %d, want preserved %d", face.FirstIndexNumber(), fin)
	}
	if m.NumFaces() != 1 {
		t.Errorf("NumFaces() = %d, want 1 after realign", m.NumFaces())
	}
	if m.FaceByID(id) != f {
		t.Error("FaceByID must resolve to the same face after realign")
	}
	if !f.node.region.ContainsTriangle(f.Triangle(m)) {
		t.Error("new node region does not contain the moved geometry")
	}
}

func TestForEachFaceVisitsEveryFaceOnce(t *testing.T) {
	m := newTestMesh(t, 32)
	want := make(map[uuid.UUID]int)
	for i := 0; i < 5; i++ {
		off := float32(i) * 4
		f := addTriangle(t, m,
			mgl32.Vec3{off - 8, 0, 0},
			mgl32.Vec3{off - 7, 0, 0},
			mgl32.Vec3{off - 8, 1, 0},
		)
		want[f.ID] = 0
	}

	m.Octree().ForEachFace(func(f *Face) { want[f.ID]++ })

	for id, n := range want {
		if n != 1 {
			t.Errorf("face %v visited %d times, want 1", id, n)
		}
	}
}

func TestRayReturnsGloballyClosestHit(t *testing.T) {
	m := newTestMesh(t, 16)

	near := addTriangle(t, m,
		mgl32.Vec3{-1, -1, 2},
		mgl32.Vec3{1, -1, 2},
		mgl32.Vec3{0, 1, 2},
	)
	addTriangle(t, m,
		mgl32.Vec3{-1, -1, 5},
		mgl32.Vec3{1, -1, 5},
		mgl32.Vec3{0, 1, 5},
	)

	var hit FaceIntersection
	ray := geom.NewRay(mgl32.Vec3{0, 0, -3}, mgl32.Vec3{0, 0, 1})
	if !m.IntersectRay(ray, &hit) {
		t.Fatal("expected an intersection")
	}
	if hit.Face() != near {
		t.Error("expected the closer face to win")
	}
	if hit.Distance() < 4.999 || hit.Distance() > 5.001 {
		t.Errorf("Distance() = %v, want ~5", hit.Distance())
	}
	if hit.Mesh() != m {
		t.Error("hit mesh mismatch")
	}
}

func TestRayMissReturnsNoIntersection(t *testing.T) {
	m := newTestMesh(t, 16)
	addTriangle(t, m,
		mgl32.Vec3{-1, -1, 2},
		mgl32.Vec3{1, -1, 2},
		mgl32.Vec3{0, 1, 2},
	)

	var hit FaceIntersection
	ray := geom.NewRay(mgl32.Vec3{0, 7, -3}, mgl32.Vec3{0, 0, 1})
	if m.IntersectRay(ray, &hit) {
		t.Error("expected no intersection")
	}
	if hit.IsIntersection() {
		t.Error("result must stay empty on a miss")
	}
}

func TestSphereQueryCollectsDistinctFaces(t *testing.T) {
	m := newTestMesh(t, 16)
	a := addTriangle(t, m,
		mgl32.Vec3{-1, -1, 0},
		mgl32.Vec3{1, -1, 0},
		mgl32.Vec3{0, 1, 0},
	)
	addTriangle(t, m,
		mgl32.Vec3{5, 5, 5},
		mgl32.Vec3{6, 5, 5},
		mgl32.Vec3{5, 6, 5},
	)

	ids := make(map[uuid.UUID]struct{})
	sphere := geom.Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 2}
	if !m.IntersectSphereFaces(sphere, ids) {
		t.Fatal("expected collected faces")
	}
	if len(ids) != 1 {
		t.Fatalf("collected %d faces, want 1", len(ids))
	}
	if _, ok := ids[a.ID]; !ok {
		t.Error("collected the wrong face")
	}
}

func TestInsertOutsideRootPanics(t *testing.T) {
	m := newTestMesh(t, 2)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for geometry outside the root region")
		}
	}()
	addTriangle(t, m,
		mgl32.Vec3{10, 10, 10},
		mgl32.Vec3{11, 10, 10},
		mgl32.Vec3{10, 11, 10},
	)
}

func TestNumFacesMaintainedIncrementally(t *testing.T) {
	m := newTestMesh(t, 32)
	var faces []*Face
	for i := 0; i < 4; i++ {
		off := float32(i) * 4
		faces = append(faces, addTriangle(t, m,
			mgl32.Vec3{off - 6, 0, 0},
			mgl32.Vec3{off - 5, 0, 0},
			mgl32.Vec3{off - 6, 1, 0},
		))
	}
	if m.NumFaces() != 4 {
		t.Fatalf("NumFaces() = %d, want 4", m.NumFaces())
	}
	m.DeleteFace(faces[1])
	m.DeleteFace(faces[3])
	if m.NumFaces() != 2 {
		t.Errorf("NumFaces() = %d, want 2 after deletions", m.NumFaces())
	}

	// The incremental count matches an actual traversal.
	n := 0
	m.Octree().ForEachFace(func(*Face) { n++ })
	if n != m.NumFaces() {
		t.Errorf("traversal found %d faces, counter says %d", n, m.NumFaces())
	}
}
