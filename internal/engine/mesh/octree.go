package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/chisel3d/chisel/pkg/geom"
)

// Octree is the spatial index over the mesh's faces. It owns the face
// records: every live face is stored in exactly one node, the deepest node
// whose region fully contains the face's geometry. Child regions are fixed
// axis-aligned eighths of their parent, so insertion and deletion are
// O(depth) and never rebalance; moving geometry is handled by RealignFace.
type Octree struct {
	root  *octreeNode
	faces map[uuid.UUID]*Face
	count int
}

type octreeNode struct {
	center   mgl32.Vec3
	width    float32
	region   geom.AABB
	children [8]*octreeNode
	faces    []*Face
}

func newOctree() *Octree {
	return &Octree{faces: make(map[uuid.UUID]*Face)}
}

func newOctreeNode(center mgl32.Vec3, width float32) *octreeNode {
	return &octreeNode{
		center: center,
		width:  width,
		region: geom.NewCube(center, width),
	}
}

// InitRoot fixes the root region. It must be called exactly once, before
// any insertion.
func (o *Octree) InitRoot(center mgl32.Vec3, width float32) {
	if o.root != nil {
		panic("octree: root already initialized")
	}
	o.root = newOctreeNode(center, width)
}

// childCenter returns the center of child octant i; bit 0/1/2 of i selects
// the X/Y/Z half.
func (n *octreeNode) childCenter(i int) mgl32.Vec3 {
	q := n.width * 0.25
	offset := mgl32.Vec3{-q, -q, -q}
	if i&1 != 0 {
		offset[0] = q
	}
	if i&2 != 0 {
		offset[1] = q
	}
	if i&4 != 0 {
		offset[2] = q
	}
	return n.center.Add(offset)
}

// minNodeWidth bounds the descent so degenerate (near point-sized)
// geometry cannot recurse without end.
const minNodeWidth = 1e-4

// descend walks to the deepest node whose region fully contains the
// triangle, creating children on the way down as needed.
func (n *octreeNode) descend(tri geom.Triangle) *octreeNode {
	if n.width*0.5 < minNodeWidth {
		return n
	}
	for i := 0; i < 8; i++ {
		center := n.childCenter(i)
		if geom.NewCube(center, n.width*0.5).ContainsTriangle(tri) {
			if n.children[i] == nil {
				n.children[i] = newOctreeNode(center, n.width*0.5)
			}
			return n.children[i].descend(tri)
		}
	}
	return n
}

// InsertFace stores a copy of the face template at the node for the given
// geometry and returns the stored face. The root region must contain the
// geometry.
func (o *Octree) InsertFace(f Face, geometry geom.Triangle) *Face {
	if o.root == nil {
		panic("octree: insert before root initialization")
	}
	if !o.root.region.ContainsTriangle(geometry) {
		panic("octree: geometry outside root region")
	}
	node := o.root.descend(geometry)
	stored := &Face{
		ID:               f.ID,
		Edge:             f.Edge,
		firstIndexNumber: f.firstIndexNumber,
		node:             node,
	}
	node.faces = append(node.faces, stored)
	o.faces[stored.ID] = stored
	o.count++
	return stored
}

// DeleteFace removes the face from its owning node. The tree itself is not
// restructured.
func (o *Octree) DeleteFace(f *Face) {
	f.node.remove(f)
	f.node = nil
	delete(o.faces, f.ID)
	o.count--
}

// RealignFace moves the face to the node its new geometry belongs in,
// preserving identity and index range. It reports whether the node was
// unchanged.
func (o *Octree) RealignFace(f *Face, geometry geom.Triangle) (face *Face, sameNode bool) {
	if o.root == nil {
		panic("octree: realign before root initialization")
	}
	if !o.root.region.ContainsTriangle(geometry) {
		panic("octree: geometry outside root region")
	}
	target := o.root.descend(geometry)
	if target == f.node {
		return f, true
	}
	f.node.remove(f)
	target.faces = append(target.faces, f)
	f.node = target
	return f, false
}

func (n *octreeNode) remove(f *Face) {
	for i, stored := range n.faces {
		if stored == f {
			n.faces = append(n.faces[:i], n.faces[i+1:]...)
			return
		}
	}
	panic("octree: face not stored in its node")
}

// FaceByID looks up a face by identity; nil when no face matches.
func (o *Octree) FaceByID(id uuid.UUID) *Face { return o.faces[id] }

// NumFaces returns the total face count across all nodes. The count is
// maintained incrementally, never recomputed by traversal.
func (o *Octree) NumFaces() int { return o.count }

// ForEachFace visits every stored face exactly once, in depth-first node
// order and per-node insertion order.
func (o *Octree) ForEachFace(fn func(*Face)) {
	if o.root != nil {
		o.root.forEachFace(fn)
	}
}

func (n *octreeNode) forEachFace(fn func(*Face)) {
	for _, f := range n.faces {
		fn(f)
	}
	for _, c := range n.children {
		if c != nil {
			c.forEachFace(fn)
		}
	}
}

// ForEachNode visits every allocated node's region, root first. Used by the
// debug visualization.
func (o *Octree) ForEachNode(fn func(center mgl32.Vec3, width float32)) {
	if o.root != nil {
		o.root.forEachNode(fn)
	}
}

func (n *octreeNode) forEachNode(fn func(center mgl32.Vec3, width float32)) {
	fn(n.center, n.width)
	for _, c := range n.children {
		if c != nil {
			c.forEachNode(fn)
		}
	}
}

// IntersectRay finds the globally closest hit of the ray against all stored
// faces, descending only into child regions the ray crosses.
func (o *Octree) IntersectRay(m *Mesh, ray geom.Ray, out *FaceIntersection) bool {
	if o.root != nil {
		o.root.intersectRay(m, ray, out)
	}
	return out.IsIntersection()
}

func (n *octreeNode) intersectRay(m *Mesh, ray geom.Ray, out *FaceIntersection) {
	if !n.region.IntersectsRay(ray) {
		return
	}
	for _, f := range n.faces {
		if dist, bary, ok := f.Triangle(m).IntersectRay(ray); ok {
			out.Update(dist, ray.PointAt(dist), bary, m, f)
		}
	}
	for _, c := range n.children {
		if c != nil {
			c.intersectRay(m, ray, out)
		}
	}
}

// IntersectSphereFaces collects the ids of all faces whose geometry
// intersects the sphere. It reports whether anything was collected.
func (o *Octree) IntersectSphereFaces(m *Mesh, sphere geom.Sphere, out map[uuid.UUID]struct{}) bool {
	found := false
	if o.root != nil {
		o.root.intersectSphere(m, sphere, func(f *Face, tri geom.Triangle) {
			out[f.ID] = struct{}{}
			found = true
		})
	}
	return found
}

// IntersectSphereVertices collects all distinct vertices of intersected
// faces that lie inside the sphere. Vertices shared between faces in
// different nodes are deduplicated by the set.
func (o *Octree) IntersectSphereVertices(m *Mesh, sphere geom.Sphere, out map[*Vertex]struct{}) bool {
	found := false
	if o.root != nil {
		o.root.intersectSphere(m, sphere, func(f *Face, tri geom.Triangle) {
			for _, v := range f.Vertices() {
				if sphere.ContainsPoint(v.Position(m)) {
					out[v] = struct{}{}
					found = true
				}
			}
		})
	}
	return found
}

func (n *octreeNode) intersectSphere(m *Mesh, sphere geom.Sphere, fn func(*Face, geom.Triangle)) {
	if !n.region.IntersectsSphere(sphere) {
		return
	}
	for _, f := range n.faces {
		if tri := f.Triangle(m); tri.IntersectsSphere(sphere) {
			fn(f, tri)
		}
	}
	for _, c := range n.children {
		if c != nil {
			c.intersectSphere(m, sphere, fn)
		}
	}
}

// Reset clears all faces and drops the root; InitRoot may be called again.
func (o *Octree) Reset() {
	o.root = nil
	o.faces = make(map[uuid.UUID]*Face)
	o.count = 0
}
