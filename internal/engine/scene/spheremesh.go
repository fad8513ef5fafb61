package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/chisel3d/chisel/pkg/geom"
)

// SphereRenderer draws sphere nodes; the viewer supplies one. A nil
// renderer makes Render a no-op.
type SphereRenderer interface {
	DrawSphere(center mgl32.Vec3, radius float32)
}

// SphereNode is one node of a sphere mesh: a sphere with an optional
// parent, forming a skeleton tree.
type SphereNode struct {
	ID     uuid.UUID
	Parent *SphereNode
	Center mgl32.Vec3
	Radius float32
}

// Sphere returns the node geometry.
func (n *SphereNode) Sphere() geom.Sphere {
	return geom.Sphere{Center: n.Center, Radius: n.Radius}
}

// SphereMesh is the scene's second mesh kind: a tree of sphere nodes
// sharing the render/intersect contract with winged meshes.
type SphereMesh struct {
	id       uuid.UUID
	nodes    []*SphereNode
	renderer SphereRenderer
}

// NewSphereMesh creates an empty sphere mesh.
func NewSphereMesh() *SphereMesh {
	return NewSphereMeshWithID(uuid.New())
}

// NewSphereMeshWithID creates an empty sphere mesh with a caller-chosen
// identity.
func NewSphereMeshWithID(id uuid.UUID) *SphereMesh {
	return &SphereMesh{id: id}
}

// ID returns the mesh identity.
func (sm *SphereMesh) ID() uuid.UUID { return sm.id }

// SetRenderer attaches the drawing backend.
func (sm *SphereMesh) SetRenderer(r SphereRenderer) { sm.renderer = r }

// AddNode appends a node under the given parent (nil for a root node).
func (sm *SphereMesh) AddNode(parent *SphereNode, center mgl32.Vec3, radius float32) *SphereNode {
	n := &SphereNode{
		ID:     uuid.New(),
		Parent: parent,
		Center: center,
		Radius: radius,
	}
	sm.nodes = append(sm.nodes, n)
	return n
}

// DeleteNode removes the node. Children keep their parent reference;
// re-parenting is the caller's concern.
func (sm *SphereMesh) DeleteNode(n *SphereNode) {
	for i, stored := range sm.nodes {
		if stored == n {
			sm.nodes = append(sm.nodes[:i], sm.nodes[i+1:]...)
			return
		}
	}
}

// NodeByID finds a node by identity with a linear scan; nil when no node
// matches.
func (sm *SphereMesh) NodeByID(id uuid.UUID) *SphereNode {
	for _, n := range sm.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// NumNodes returns the node count.
func (sm *SphereMesh) NumNodes() int { return len(sm.nodes) }

// Render draws every node through the attached renderer.
func (sm *SphereMesh) Render() {
	if sm.renderer == nil {
		return
	}
	for _, n := range sm.nodes {
		sm.renderer.DrawSphere(n.Center, n.Radius)
	}
}

// IntersectRay accumulates the closest node hit into out.
func (sm *SphereMesh) IntersectRay(ray geom.Ray, out *SphereNodeIntersection) bool {
	for _, n := range sm.nodes {
		if dist, ok := n.Sphere().IntersectRay(ray); ok {
			out.Update(dist, ray.PointAt(dist), sm, n)
		}
	}
	return out.IsIntersection()
}

// SphereNodeIntersection accumulates the closest ray hit against sphere
// nodes, across meshes.
type SphereNodeIntersection struct {
	mesh     *SphereMesh
	node     *SphereNode
	distance float32
	position mgl32.Vec3
	valid    bool
}

// Update records a hit if it is closer than the current one.
func (i *SphereNodeIntersection) Update(distance float32, position mgl32.Vec3, sm *SphereMesh, n *SphereNode) {
	if i.valid && distance >= i.distance {
		return
	}
	i.mesh = sm
	i.node = n
	i.distance = distance
	i.position = position
	i.valid = true
}

// IsIntersection reports whether a hit has been recorded.
func (i *SphereNodeIntersection) IsIntersection() bool { return i.valid }

// Mesh returns the hit mesh.
func (i *SphereNodeIntersection) Mesh() *SphereMesh { return i.mesh }

// Node returns the hit node.
func (i *SphereNodeIntersection) Node() *SphereNode { return i.node }

// Distance returns the distance along the ray to the hit point.
func (i *SphereNodeIntersection) Distance() float32 { return i.distance }

// Position returns the hit point.
func (i *SphereNodeIntersection) Position() mgl32.Vec3 { return i.position }
