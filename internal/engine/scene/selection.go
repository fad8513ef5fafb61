package scene

import "github.com/google/uuid"

// SelectionMode decides which mesh kind ray picking targets and whether a
// hit toggles a whole-mesh or a sub-element selection.
type SelectionMode int

const (
	// SelectFreeform picks winged meshes as a whole (major selection).
	SelectFreeform SelectionMode = iota
	// SelectSphereNode picks individual sphere nodes (minor selection).
	SelectSphereNode
)

// IsMajor reports whether the mode selects whole meshes.
func (m SelectionMode) IsMajor() bool { return m == SelectFreeform }

// Selection tracks either whole-mesh (major) or per-element (minor)
// selections. The active mode uses exactly one of the two sets.
type Selection struct {
	majors map[uuid.UUID]struct{}
	minors map[uuid.UUID]map[uuid.UUID]struct{}
}

func newSelection() Selection {
	return Selection{
		majors: make(map[uuid.UUID]struct{}),
		minors: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

// ToggleMajor adds the mesh to the major selection, or removes it if
// already selected.
func (s *Selection) ToggleMajor(meshID uuid.UUID) {
	if _, ok := s.majors[meshID]; ok {
		delete(s.majors, meshID)
		return
	}
	s.majors[meshID] = struct{}{}
}

// HasMajor reports whether the mesh is major-selected.
func (s *Selection) HasMajor(meshID uuid.UUID) bool {
	_, ok := s.majors[meshID]
	return ok
}

// NumMajors returns the major selection size.
func (s *Selection) NumMajors() int { return len(s.majors) }

// ToggleMinor adds the element of the given mesh to the minor selection,
// or removes it if already selected.
func (s *Selection) ToggleMinor(meshID, elementID uuid.UUID) {
	elems, ok := s.minors[meshID]
	if !ok {
		elems = make(map[uuid.UUID]struct{})
		s.minors[meshID] = elems
	}
	if _, ok := elems[elementID]; ok {
		delete(elems, elementID)
		if len(elems) == 0 {
			delete(s.minors, meshID)
		}
		return
	}
	elems[elementID] = struct{}{}
}

// HasMinor reports whether the element is minor-selected.
func (s *Selection) HasMinor(meshID, elementID uuid.UUID) bool {
	_, ok := s.minors[meshID][elementID]
	return ok
}

// NumMinors returns the total minor selection size across all meshes.
func (s *Selection) NumMinors() int {
	n := 0
	for _, elems := range s.minors {
		n += len(elems)
	}
	return n
}

// Reset clears both selection sets.
func (s *Selection) Reset() {
	s.majors = make(map[uuid.UUID]struct{})
	s.minors = make(map[uuid.UUID]map[uuid.UUID]struct{})
}
