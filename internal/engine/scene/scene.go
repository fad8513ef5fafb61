// Package scene composes meshes into a scene: identity-keyed collections
// of freeform (winged) and sphere-node meshes, render dispatch by kind,
// and ray picking that feeds a major/minor selection.
package scene

import (
	"github.com/google/uuid"

	"github.com/chisel3d/chisel/internal/engine/mesh"
	"github.com/chisel3d/chisel/pkg/geom"
)

// Kind distinguishes the two mesh kinds the scene composes.
type Kind int

const (
	KindFreeform Kind = iota
	KindSphere
)

// Scene owns the meshes and the selection state.
type Scene struct {
	wingedMeshes map[uuid.UUID]*mesh.Mesh
	wingedOrder  []uuid.UUID
	sphereMeshes map[uuid.UUID]*SphereMesh
	sphereOrder  []uuid.UUID

	selection Selection
	mode      SelectionMode
}

// New creates an empty scene in freeform selection mode.
func New() *Scene {
	return &Scene{
		wingedMeshes: make(map[uuid.UUID]*mesh.Mesh),
		sphereMeshes: make(map[uuid.UUID]*SphereMesh),
		selection:    newSelection(),
		mode:         SelectFreeform,
	}
}

// NewWingedMesh registers an empty winged mesh over the given buffer.
func (s *Scene) NewWingedMesh(buffer mesh.Buffer) *mesh.Mesh {
	return s.NewWingedMeshWithID(uuid.New(), buffer)
}

// NewWingedMeshWithID registers a winged mesh with a caller-chosen identity.
func (s *Scene) NewWingedMeshWithID(id uuid.UUID, buffer mesh.Buffer) *mesh.Mesh {
	m := mesh.NewWithID(id, buffer)
	s.wingedMeshes[id] = m
	s.wingedOrder = append(s.wingedOrder, id)
	return m
}

// DeleteWingedMesh removes the mesh. The id must be registered.
func (s *Scene) DeleteWingedMesh(id uuid.UUID) {
	if _, ok := s.wingedMeshes[id]; !ok {
		panic("scene: delete of unknown winged mesh")
	}
	delete(s.wingedMeshes, id)
	s.wingedOrder = removeID(s.wingedOrder, id)
}

// WingedMesh looks up a winged mesh by identity; nil when absent.
func (s *Scene) WingedMesh(id uuid.UUID) *mesh.Mesh { return s.wingedMeshes[id] }

// NewSphereMesh registers an empty sphere mesh.
func (s *Scene) NewSphereMesh() *SphereMesh {
	return s.NewSphereMeshWithID(uuid.New())
}

// NewSphereMeshWithID registers a sphere mesh with a caller-chosen identity.
func (s *Scene) NewSphereMeshWithID(id uuid.UUID) *SphereMesh {
	sm := NewSphereMeshWithID(id)
	s.sphereMeshes[id] = sm
	s.sphereOrder = append(s.sphereOrder, id)
	return sm
}

// DeleteSphereMesh removes the mesh. The id must be registered.
func (s *Scene) DeleteSphereMesh(id uuid.UUID) {
	if _, ok := s.sphereMeshes[id]; !ok {
		panic("scene: delete of unknown sphere mesh")
	}
	delete(s.sphereMeshes, id)
	s.sphereOrder = removeID(s.sphereOrder, id)
}

// SphereMesh looks up a sphere mesh by identity; nil when absent.
func (s *Scene) SphereMesh(id uuid.UUID) *SphereMesh { return s.sphereMeshes[id] }

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, stored := range ids {
		if stored == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Render draws every mesh of the given kind, in registration order.
func (s *Scene) Render(kind Kind) {
	switch kind {
	case KindFreeform:
		for _, id := range s.wingedOrder {
			s.wingedMeshes[id].Render()
		}
	case KindSphere:
		for _, id := range s.sphereOrder {
			s.sphereMeshes[id].Render()
		}
	}
}

// IntersectRayFaces accumulates the closest face hit across all winged
// meshes into out.
func (s *Scene) IntersectRayFaces(ray geom.Ray, out *mesh.FaceIntersection) bool {
	for _, id := range s.wingedOrder {
		s.wingedMeshes[id].IntersectRay(ray, out)
	}
	return out.IsIntersection()
}

// IntersectRaySphereNodes accumulates the closest node hit across all
// sphere meshes into out.
func (s *Scene) IntersectRaySphereNodes(ray geom.Ray, out *SphereNodeIntersection) bool {
	for _, id := range s.sphereOrder {
		s.sphereMeshes[id].IntersectRay(ray, out)
	}
	return out.IsIntersection()
}

// IntersectRay dispatches by the active selection mode and returns the
// winning (mesh, element) identity pair, or two nil ids on a miss.
func (s *Scene) IntersectRay(ray geom.Ray) (meshID, elementID uuid.UUID) {
	switch s.mode {
	case SelectFreeform:
		var hit mesh.FaceIntersection
		if s.IntersectRayFaces(ray, &hit) {
			return hit.Mesh().ID(), hit.Face().ID
		}
	case SelectSphereNode:
		var hit SphereNodeIntersection
		if s.IntersectRaySphereNodes(ray, &hit) {
			return hit.Mesh().ID(), hit.Node().ID
		}
	}
	return uuid.Nil, uuid.Nil
}

// SelectIntersection converts a ray hit into a selection toggle: major for
// whole-mesh modes, minor otherwise. It reports whether anything was hit.
func (s *Scene) SelectIntersection(ray geom.Ray) bool {
	meshID, elementID := s.IntersectRay(ray)
	if meshID == uuid.Nil {
		return false
	}
	if s.mode.IsMajor() {
		s.selection.ToggleMajor(meshID)
	} else {
		s.selection.ToggleMinor(meshID, elementID)
	}
	return true
}

// SelectionMode returns the active mode.
func (s *Scene) SelectionMode() SelectionMode { return s.mode }

// ChangeSelectionMode clears the selection and switches mode.
func (s *Scene) ChangeSelectionMode(mode SelectionMode) {
	s.UnselectAll()
	s.mode = mode
}

// UnselectAll clears both selection sets.
func (s *Scene) UnselectAll() { s.selection.Reset() }

// Selection exposes the selection state.
func (s *Scene) Selection() *Selection { return &s.selection }

// NumSelections returns the selection size for the active mode.
func (s *Scene) NumSelections() int {
	if s.mode.IsMajor() {
		return s.selection.NumMajors()
	}
	return s.selection.NumMinors()
}
