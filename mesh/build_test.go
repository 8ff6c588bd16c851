package mesh_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// Shared fixtures, as polygon soups.
var (
	// One triangle; three boundary edges, one loop.
	soupTriangle = [][]int{{0, 1, 2}}

	// Unit square split along the diagonal 0-2.
	soupSquare = [][]int{{0, 1, 2}, {0, 2, 3}}

	// Closed tetrahedron, outward CCW winding.
	soupTetrahedron = [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}}

	// Hexagonal fan: interior vertex 0 ringed by 1..6.
	soupHexFan = [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 6}, {0, 6, 1}}
)

//----------------------------------------------------------------------------//
// NewMesh error handling
//----------------------------------------------------------------------------//

// TestNewMesh_Errors verifies that malformed soups are rejected with the
// matching sentinel and no partial mesh.
func TestNewMesh_Errors(t *testing.T) {
	cases := []struct {
		name     string
		polygons [][]int
		err      error
	}{
		{"EmptySoup", [][]int{}, mesh.ErrEmptySoup},
		{"DegenerateFace", [][]int{{0, 1}}, mesh.ErrDegenerateFace},
		{"NegativeIndex", [][]int{{0, -1, 2}}, mesh.ErrVertexIndexOutOfRange},
		{"RepeatedVertex", [][]int{{0, 1, 0}}, mesh.ErrRepeatedVertexInFace},
		{"IsolatedVertex", [][]int{{0, 1, 3}}, mesh.ErrIsolatedVertex},
		{"ThreeFacesPerEdge", [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}, mesh.ErrNonManifoldEdge},
		{"InconsistentWinding", [][]int{{0, 1, 2}, {0, 1, 3}}, mesh.ErrInconsistentWinding},
		{"BowtieVertex", [][]int{{0, 1, 2}, {0, 3, 4}}, mesh.ErrNonManifoldVertex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mesh.NewMesh(tc.polygons)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewMesh(%v) error = %v; want %v", tc.polygons, err, tc.err)
			}
			if m != nil {
				t.Errorf("NewMesh(%v) returned a mesh alongside the error", tc.polygons)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// NewMesh element counts and invariants
//----------------------------------------------------------------------------//

// TestNewMesh_Counts checks element counts, boundary inference and Euler
// characteristic for the shared fixtures.
func TestNewMesh_Counts(t *testing.T) {
	cases := []struct {
		name                   string
		polygons               [][]int
		nV, nE, nF, nHe, nInt  int
		nLoops, euler, genus   int
	}{
		{"Triangle", soupTriangle, 3, 3, 1, 6, 3, 1, 1, 0},
		{"Square", soupSquare, 4, 5, 2, 10, 6, 1, 1, 0},
		{"Tetrahedron", soupTetrahedron, 4, 6, 4, 12, 12, 0, 2, 0},
		{"HexFan", soupHexFan, 7, 12, 6, 24, 18, 1, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mesh.NewMesh(tc.polygons, mesh.WithValidation())
			if err != nil {
				t.Fatalf("NewMesh error: %v", err)
			}
			if got := m.NVertices(); got != tc.nV {
				t.Errorf("NVertices = %d; want %d", got, tc.nV)
			}
			if got := m.NEdges(); got != tc.nE {
				t.Errorf("NEdges = %d; want %d", got, tc.nE)
			}
			if got := m.NFaces(); got != tc.nF {
				t.Errorf("NFaces = %d; want %d", got, tc.nF)
			}
			if got := m.NHalfedges(); got != tc.nHe {
				t.Errorf("NHalfedges = %d; want %d", got, tc.nHe)
			}
			if got := m.NInteriorHalfedges(); got != tc.nInt {
				t.Errorf("NInteriorHalfedges = %d; want %d", got, tc.nInt)
			}
			if got := m.NExteriorHalfedges(); got != tc.nHe-tc.nInt {
				t.Errorf("NExteriorHalfedges = %d; want %d", got, tc.nHe-tc.nInt)
			}
			if got := m.NBoundaryLoops(); got != tc.nLoops {
				t.Errorf("NBoundaryLoops = %d; want %d", got, tc.nLoops)
			}
			if got := m.EulerCharacteristic(); got != tc.euler {
				t.Errorf("EulerCharacteristic = %d; want %d", got, tc.euler)
			}
			if got := m.Genus(); got != tc.genus {
				t.Errorf("Genus = %d; want %d", got, tc.genus)
			}
			if !m.IsCompressed() || !m.IsCanonical() {
				t.Error("fresh mesh must be compressed and canonical")
			}
		})
	}
}

// TestNewMesh_TwinArithmetic spot-checks the implicit relations on a
// fresh mesh: twins pair within edges and the canonical halfedge of edge
// e sits at slot 2e.
func TestNewMesh_TwinArithmetic(t *testing.T) {
	m, err := mesh.NewMesh(soupSquare)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	for he := range m.Halfedges() {
		if he.Twin().Twin() != he {
			t.Fatalf("twin is not an involution at halfedge %d", he.Index())
		}
		if he.Edge() != he.Twin().Edge() {
			t.Fatalf("halfedge %d and twin disagree on their edge", he.Index())
		}
	}
	for e := range m.Edges() {
		if e.Halfedge().Index() != 2*e.Index() {
			t.Fatalf("edge %d canonical halfedge at slot %d", e.Index(), e.Halfedge().Index())
		}
	}
}

// TestNewMesh_BoundaryLoop walks the single loop of the square and checks
// it covers exactly the four outer sides.
func TestNewMesh_BoundaryLoop(t *testing.T) {
	m, err := mesh.NewMesh(soupSquare)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	loop := m.BoundaryLoop(0)
	if got := loop.Degree(); got != 4 {
		t.Fatalf("boundary loop degree = %d; want 4", got)
	}
	for he := range loop.AdjacentHalfedges() {
		if he.IsInterior() {
			t.Fatalf("interior halfedge %d on a boundary loop", he.Index())
		}
		if !he.Twin().IsInterior() {
			t.Fatalf("exterior halfedge %d has an exterior twin", he.Index())
		}
	}

	// Every vertex of the square touches the boundary; the fan center of
	// the hexagon does not.
	for v := range m.Vertices() {
		if !v.IsBoundary() {
			t.Fatalf("square vertex %d reported interior", v.Index())
		}
	}

	fan, err := mesh.NewMesh(soupHexFan)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	if got := fan.NInteriorVertices(); got != 1 {
		t.Fatalf("hex fan interior vertices = %d; want 1", got)
	}
}
