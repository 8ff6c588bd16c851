package mesh_test

import (
	"testing"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// TestFaceVertexList_RoundTrip rebuilds each fixture from its own soup
// and expects identical counts and a clean validation.
func TestFaceVertexList_RoundTrip(t *testing.T) {
	for _, soup := range [][][]int{soupTriangle, soupSquare, soupTetrahedron, soupHexFan} {
		m, err := mesh.NewMesh(soup)
		if err != nil {
			t.Fatalf("NewMesh error: %v", err)
		}
		rebuilt, err := mesh.NewMesh(m.FaceVertexList(), mesh.WithValidation())
		if err != nil {
			t.Fatalf("rebuild error: %v", err)
		}
		if rebuilt.NVertices() != m.NVertices() || rebuilt.NEdges() != m.NEdges() ||
			rebuilt.NFaces() != m.NFaces() || rebuilt.NBoundaryLoops() != m.NBoundaryLoops() {
			t.Fatalf("round-trip changed counts: %v", soup)
		}
	}
}

// TestNConnectedComponents distinguishes one patch from two disjoint ones.
func TestNConnectedComponents(t *testing.T) {
	one, err := mesh.NewMesh(soupSquare)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	if got := one.NConnectedComponents(); got != 1 {
		t.Errorf("square components = %d; want 1", got)
	}

	two, err := mesh.NewMesh([][]int{{0, 1, 2}, {3, 4, 5}})
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	if got := two.NConnectedComponents(); got != 2 {
		t.Errorf("two triangles components = %d; want 2", got)
	}
}

// TestCopy_Independent mutates a copy and expects the original untouched.
func TestCopy_Independent(t *testing.T) {
	m, err := mesh.NewMesh(soupSquare)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	c := m.Copy()
	// Edge 2 is the diagonal 0-2 of the square fixture.
	if !c.Flip(c.Edge(2)) {
		t.Fatal("expected the diagonal flip on the copy to succeed")
	}
	if err := m.ValidateConnectivity(); err != nil {
		t.Fatalf("original invalidated by mutating the copy: %v", err)
	}
	if m.IsCanonical() == c.IsCanonical() {
		t.Error("flip on the copy should have cleared only the copy's canonical flag")
	}
}

// TestIterators_AgreeWithCounts checks that every range yields exactly
// the advertised number of elements.
func TestIterators_AgreeWithCounts(t *testing.T) {
	m, err := mesh.NewMesh(soupHexFan)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}

	nV := 0
	for range m.Vertices() {
		nV++
	}
	nHe := 0
	for range m.Halfedges() {
		nHe++
	}
	nInt := 0
	for range m.InteriorHalfedges() {
		nInt++
	}
	nExt := 0
	for range m.ExteriorHalfedges() {
		nExt++
	}
	nC := 0
	for range m.Corners() {
		nC++
	}
	nE := 0
	for range m.Edges() {
		nE++
	}
	nF := 0
	for range m.Faces() {
		nF++
	}
	nB := 0
	for range m.BoundaryLoops() {
		nB++
	}

	if nV != m.NVertices() || nHe != m.NHalfedges() || nInt != m.NInteriorHalfedges() ||
		nExt != m.NExteriorHalfedges() || nC != m.NCorners() || nE != m.NEdges() ||
		nF != m.NFaces() || nB != m.NBoundaryLoops() {
		t.Fatalf("iterator totals (%d %d %d %d %d %d %d %d) disagree with counts",
			nV, nHe, nInt, nExt, nC, nE, nF, nB)
	}
}

// TestVertexOrbit covers degree and adjacency of the hexagon fan center.
func TestVertexOrbit(t *testing.T) {
	m, err := mesh.NewMesh(soupHexFan)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	center := m.Vertex(0)
	if got := center.Degree(); got != 6 {
		t.Errorf("center degree = %d; want 6", got)
	}
	if got := center.FaceDegree(); got != 6 {
		t.Errorf("center face degree = %d; want 6", got)
	}
	seen := map[int]bool{}
	for w := range center.AdjacentVertices() {
		seen[w.Index()] = true
	}
	if len(seen) != 6 || seen[0] {
		t.Errorf("center neighbors = %v", seen)
	}

	rim := m.Vertex(1)
	if got := rim.Degree(); got != 3 {
		t.Errorf("rim degree = %d; want 3", got)
	}
	if got := rim.FaceDegree(); got != 2 {
		t.Errorf("rim face degree = %d; want 2", got)
	}
}

// TestIndexContainers checks dense index assignment, including the
// InvalidIndex convention for boundary vertices.
func TestIndexContainers(t *testing.T) {
	m, err := mesh.NewMesh(soupHexFan)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}

	idx := m.VertexIndices()
	seen := map[int]bool{}
	for v := range m.Vertices() {
		seen[idx.Get(v)] = true
	}
	for i := 0; i < m.NVertices(); i++ {
		if !seen[i] {
			t.Fatalf("vertex index %d unassigned", i)
		}
	}

	interior := m.InteriorVertexIndices()
	for v := range m.Vertices() {
		got := interior.Get(v)
		if v.IsBoundary() && got != mesh.InvalidIndex {
			t.Errorf("boundary vertex %d indexed %d", v.Index(), got)
		}
		if !v.IsBoundary() && got == mesh.InvalidIndex {
			t.Errorf("interior vertex %d unindexed", v.Index())
		}
	}
}

// TestElementAccessors_Panic pins the contract-violation behavior.
func TestElementAccessors_Panic(t *testing.T) {
	m, err := mesh.NewMesh(soupTriangle)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("out-of-range Vertex accessor did not panic")
		}
	}()
	m.Vertex(99)
}
