package geom_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/geom"
	"github.com/katalvlaran/lvlmesh/mesh"
	"github.com/katalvlaran/lvlmesh/vec"
)

const eps = 1e-12

// flatSquare is the unit square in the z=0 plane, split along the 0-2
// diagonal into two right triangles, wound CCW as seen from +z.
func flatSquare(t *testing.T) (*mesh.Mesh, *geom.Geometry) {
	t.Helper()
	m, err := mesh.NewMesh([][]int{{0, 1, 2}, {0, 2, 3}})
	require.NoError(t, err)
	g := geom.NewGeometryFromPositions(m, []vec.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	})

	return m, g
}

// equilateral is a single unit-side triangle in the z=0 plane.
func equilateral(t *testing.T) (*mesh.Mesh, *geom.Geometry) {
	t.Helper()
	m, err := mesh.NewMesh([][]int{{0, 1, 2}})
	require.NoError(t, err)
	g := geom.NewGeometryFromPositions(m, []vec.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: math.Sqrt(3) / 2, Z: 0},
	})

	return m, g
}

func TestEdgeLengths(t *testing.T) {
	m, g := flatSquare(t)
	release := g.RequireEdgeLengths()
	defer release()

	for e := range m.Edges() {
		want := 1.0
		if !e.IsBoundary() {
			want = math.Sqrt2 // the diagonal
		}
		require.InDelta(t, want, g.EdgeLengths.Get(e), eps)
	}
}

func TestFaceAreasAndNormals(t *testing.T) {
	m, g := flatSquare(t)
	relA := g.RequireFaceAreas()
	relN := g.RequireFaceNormals()
	defer relA()
	defer relN()

	up := vec.New(0, 0, 1)
	for f := range m.Faces() {
		require.InDelta(t, 0.5, g.FaceAreas.Get(f), eps)
		n := g.FaceNormals.Get(f)
		require.InDelta(t, 0, n.Sub(up).Norm(), eps, "CCW faces point up")
	}
}

func TestCornerAnglesAndSums(t *testing.T) {
	m, g := equilateral(t)
	release := g.RequireVertexAngleSums()
	defer release()

	for c := range m.Corners() {
		require.InDelta(t, math.Pi/3, g.CornerAngles.Get(c), eps)
	}
	for v := range m.Vertices() {
		require.InDelta(t, math.Pi/3, g.VertexAngleSums.Get(v), eps)
	}
}

func TestVertexDualAreas(t *testing.T) {
	m, g := flatSquare(t)
	release := g.RequireVertexDualAreas()
	defer release()

	total := 0.0
	for v := range m.Vertices() {
		total += g.VertexDualAreas.Get(v)
	}
	require.InDelta(t, 1.0, total, eps, "dual areas partition the surface area")
}

func TestVertexNormals(t *testing.T) {
	m, g := flatSquare(t)
	release := g.RequireVertexNormals()
	defer release()

	up := vec.New(0, 0, 1)
	for v := range m.Vertices() {
		n := g.VertexNormals.Get(v)
		require.InDelta(t, 0, n.Sub(up).Norm(), eps)
		require.InDelta(t, 1.0, n.Norm(), eps)
	}
}

func TestEdgeDihedralAngles(t *testing.T) {
	// Flat configuration: zero dihedral everywhere.
	m, g := flatSquare(t)
	release := g.RequireEdgeDihedralAngles()
	for e := range m.Edges() {
		require.InDelta(t, 0, g.EdgeDihedralAngles.Get(e), eps)
	}
	release()

	// Fold vertex 3 out of the plane: the diagonal picks up a bend, the
	// boundary edges stay at the zero convention.
	g.VertexPositions.Set(m.Vertex(3), vec.New(0, 1, 0.5))
	release = g.RequireEdgeDihedralAngles()
	defer release()
	for e := range m.Edges() {
		angle := g.EdgeDihedralAngles.Get(e)
		if e.IsBoundary() {
			require.Zero(t, angle)
		} else {
			require.Greater(t, math.Abs(angle), 0.1)
		}
	}
}

func TestCotanWeights(t *testing.T) {
	m, g := flatSquare(t)
	release := g.RequireEdgeCotanWeights()
	defer release()

	for e := range m.Edges() {
		want := 0.5 // boundary edges: one 45° corner opposite, cot = 1
		if !e.IsBoundary() {
			want = 0.0 // diagonal: two right angles opposite, cot = 0
		}
		require.InDelta(t, want, g.EdgeCotanWeights.Get(e), eps)
	}
}

func TestTangentBases(t *testing.T) {
	m, g := flatSquare(t)
	relF := g.RequireFaceTangentBasis()
	relV := g.RequireVertexTangentBasis()
	defer relF()
	defer relV()

	for f := range m.Faces() {
		b := g.FaceTangentBasis.Get(f)
		require.InDelta(t, 1, b.X.Norm(), eps)
		require.InDelta(t, 1, b.Y.Norm(), eps)
		require.InDelta(t, 0, b.X.Dot(b.Y), eps)
		require.InDelta(t, 0, b.X.Z, eps, "tangent to the z=0 plane")
	}
	for v := range m.Vertices() {
		b := g.VertexTangentBasis.Get(v)
		require.InDelta(t, 0, b.X.Dot(b.Y), eps)
		require.InDelta(t, 1, b.X.Cross(b.Y).Norm(), eps)
	}
}

func TestHalfedgeVectorsInFace(t *testing.T) {
	m, g := flatSquare(t)
	relV := g.RequireHalfedgeVectorsInFace()
	relL := g.RequireEdgeLengths()
	defer relV()
	defer relL()

	for f := range m.Faces() {
		sum := complex(0, 0)
		for he := range f.AdjacentHalfedges() {
			z := g.HalfedgeVectorsInFace.Get(he)
			require.InDelta(t, g.EdgeLengths.Get(he.Edge()), cmplx.Abs(z), eps)
			sum += z
		}
		require.InDelta(t, 0, cmplx.Abs(sum), eps, "face cycle closes in the plane")
	}
}

func TestHalfedgeVectorsInVertex(t *testing.T) {
	m, g := flatSquare(t)
	relV := g.RequireHalfedgeVectorsInVertex()
	relL := g.RequireEdgeLengths()
	defer relV()
	defer relL()

	for v := range m.Vertices() {
		first := true
		for he := range v.OutgoingHalfedges() {
			z := g.HalfedgeVectorsInVertex.Get(he)
			require.InDelta(t, g.EdgeLengths.Get(he.Edge()), cmplx.Abs(z), eps)
			if first {
				require.InDelta(t, 0, imag(z), eps, "reference halfedge at angle zero")
				require.Greater(t, real(z), 0.0)
				first = false
			}
		}
	}
}

// TestRequireRelease pins the require-count lifecycle: release to zero
// clears values, a fresh require recomputes them.
func TestRequireRelease(t *testing.T) {
	m, g := flatSquare(t)
	f := m.Face(0)

	release := g.RequireFaceAreas()
	require.InDelta(t, 0.5, g.FaceAreas.Get(f), eps)

	second := g.RequireFaceAreas()
	release()
	require.InDelta(t, 0.5, g.FaceAreas.Get(f), eps, "still held by the second require")

	second()
	require.Zero(t, g.FaceAreas.Get(f), "released to zero clears storage")
	second() // double release is a no-op

	release = g.RequireFaceAreas()
	defer release()
	require.InDelta(t, 0.5, g.FaceAreas.Get(f), eps, "recomputed on demand")
}

// TestDependenciesEvaluated: requiring a downstream quantity fills its
// upstream containers too.
func TestDependenciesEvaluated(t *testing.T) {
	m, g := flatSquare(t)
	release := g.RequireVertexNormals()
	defer release()

	for f := range m.Faces() {
		require.InDelta(t, 1, g.FaceNormals.Get(f).Norm(), eps, "dependency populated")
	}
}

// TestStaleCache documents the deliberate sharp edge: position writes do
// not invalidate, RefreshQuantities does.
func TestStaleCache(t *testing.T) {
	m, g := flatSquare(t)
	release := g.RequireFaceNormals()
	defer release()

	up := vec.New(0, 0, 1)
	f := m.Face(1) // triangle {0, 2, 3}
	require.InDelta(t, 0, g.FaceNormals.Get(f).Sub(up).Norm(), eps)

	// Tilt the face; the cached normal must NOT move.
	g.VertexPositions.Set(m.Vertex(3), vec.New(0, 1, 1))
	require.InDelta(t, 0, g.FaceNormals.Get(f).Sub(up).Norm(), eps, "stale by design")

	// An explicit refresh recomputes it.
	g.RefreshQuantities()
	require.Greater(t, g.FaceNormals.Get(f).Sub(up).Norm(), 0.1)
	require.InDelta(t, 1, g.FaceNormals.Get(f).Norm(), eps)
}

// TestSplitPreservesTotalArea subdivides the diagonal, positions the new
// vertex at its midpoint and expects the refreshed total area unchanged.
func TestSplitPreservesTotalArea(t *testing.T) {
	m, g := flatSquare(t)
	release := g.RequireFaceAreas()
	defer release()

	v := m.SplitEdge(m.Edge(2))
	g.VertexPositions.Set(v, vec.New(0.5, 0.5, 0))
	g.RefreshQuantities()

	require.Equal(t, 4, m.NFaces())
	total := 0.0
	for f := range m.Faces() {
		total += g.FaceAreas.Get(f)
	}
	require.InDelta(t, 1.0, total, eps)
}

func TestNormalize(t *testing.T) {
	m, g := flatSquare(t)
	g.Normalize()

	center := vec.Zero
	maxR := 0.0
	for v := range m.Vertices() {
		p := g.VertexPositions.Get(v)
		center = center.Add(p)
		if r := p.Norm(); r > maxR {
			maxR = r
		}
	}
	require.InDelta(t, 0, center.Norm(), eps, "center of mass at the origin")
	require.InDelta(t, 1, maxR, eps, "scaled to the unit ball")
}
