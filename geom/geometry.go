package geom

import (
	"github.com/katalvlaran/lvlmesh/mesh"
	"github.com/katalvlaran/lvlmesh/vec"
)

// TangentBasis is an orthonormal frame spanning a tangent plane; X and Y
// are unit vectors with X × Y giving the plane normal.
type TangentBasis struct {
	X, Y vec.Vector3
}

// Geometry binds a mesh and its vertex positions to a set of lazily
// derived quantities. The exported containers are the backing storage;
// read them only between a RequireX call and its release, anything else
// sees zeroed or stale values.
type Geometry struct {
	// VertexPositions is the input quantity. Writes through it are not
	// tracked; see the package documentation and RefreshQuantities.
	VertexPositions *mesh.VertexData[vec.Vector3]

	EdgeLengths             *mesh.EdgeData[float64]
	FaceAreas               *mesh.FaceData[float64]
	VertexDualAreas         *mesh.VertexData[float64]
	CornerAngles            *mesh.CornerData[float64]
	VertexAngleSums         *mesh.VertexData[float64]
	FaceNormals             *mesh.FaceData[vec.Vector3]
	VertexNormals           *mesh.VertexData[vec.Vector3]
	EdgeDihedralAngles      *mesh.EdgeData[float64]
	FaceTangentBasis        *mesh.FaceData[TangentBasis]
	VertexTangentBasis      *mesh.VertexData[TangentBasis]
	HalfedgeVectorsInFace   *mesh.HalfedgeData[complex128]
	HalfedgeVectorsInVertex *mesh.HalfedgeData[complex128]
	HalfedgeCotanWeights    *mesh.HalfedgeData[float64]
	EdgeCotanWeights        *mesh.EdgeData[float64]

	mesh       *mesh.Mesh
	quantities []*quantity

	qEdgeLengths             *quantity
	qFaceAreas               *quantity
	qVertexDualAreas         *quantity
	qCornerAngles            *quantity
	qVertexAngleSums         *quantity
	qFaceNormals             *quantity
	qVertexNormals           *quantity
	qEdgeDihedralAngles      *quantity
	qFaceTangentBasis        *quantity
	qVertexTangentBasis      *quantity
	qHalfedgeVectorsInFace   *quantity
	qHalfedgeVectorsInVertex *quantity
	qHalfedgeCotanWeights    *quantity
	qEdgeCotanWeights        *quantity
}

// NewGeometry binds m and its vertex positions. The position container
// must belong to m. No quantity is computed until required.
func NewGeometry(m *mesh.Mesh, positions *mesh.VertexData[vec.Vector3]) *Geometry {
	if positions.Mesh() != m {
		panic("geom: position container belongs to a different mesh")
	}

	g := &Geometry{
		VertexPositions: positions,
		mesh:            m,

		EdgeLengths:             mesh.NewEdgeData[float64](m),
		FaceAreas:               mesh.NewFaceData[float64](m),
		VertexDualAreas:         mesh.NewVertexData[float64](m),
		CornerAngles:            mesh.NewCornerData[float64](m),
		VertexAngleSums:         mesh.NewVertexData[float64](m),
		FaceNormals:             mesh.NewFaceData[vec.Vector3](m),
		VertexNormals:           mesh.NewVertexData[vec.Vector3](m),
		EdgeDihedralAngles:      mesh.NewEdgeData[float64](m),
		FaceTangentBasis:        mesh.NewFaceData[TangentBasis](m),
		VertexTangentBasis:      mesh.NewVertexData[TangentBasis](m),
		HalfedgeVectorsInFace:   mesh.NewHalfedgeData[complex128](m),
		HalfedgeVectorsInVertex: mesh.NewHalfedgeData[complex128](m),
		HalfedgeCotanWeights:    mesh.NewHalfedgeData[float64](m),
		EdgeCotanWeights:        mesh.NewEdgeData[float64](m),
	}

	// Registration order is the topological order of the graph:
	// dependencies first.
	g.qEdgeLengths = g.register("edge lengths", nil,
		g.computeEdgeLengths, func() { g.EdgeLengths.Fill(0) })
	g.qFaceAreas = g.register("face areas", nil,
		g.computeFaceAreas, func() { g.FaceAreas.Fill(0) })
	g.qCornerAngles = g.register("corner angles", nil,
		g.computeCornerAngles, func() { g.CornerAngles.Fill(0) })
	g.qFaceNormals = g.register("face normals", nil,
		g.computeFaceNormals, func() { g.FaceNormals.Fill(vec.Zero) })
	g.qHalfedgeCotanWeights = g.register("halfedge cotan weights", nil,
		g.computeHalfedgeCotanWeights, func() { g.HalfedgeCotanWeights.Fill(0) })

	g.qVertexDualAreas = g.register("vertex dual areas",
		[]*quantity{g.qFaceAreas},
		g.computeVertexDualAreas, func() { g.VertexDualAreas.Fill(0) })
	g.qVertexAngleSums = g.register("vertex angle sums",
		[]*quantity{g.qCornerAngles},
		g.computeVertexAngleSums, func() { g.VertexAngleSums.Fill(0) })
	g.qVertexNormals = g.register("vertex normals",
		[]*quantity{g.qCornerAngles, g.qFaceNormals},
		g.computeVertexNormals, func() { g.VertexNormals.Fill(vec.Zero) })
	g.qEdgeDihedralAngles = g.register("edge dihedral angles",
		[]*quantity{g.qFaceNormals},
		g.computeEdgeDihedralAngles, func() { g.EdgeDihedralAngles.Fill(0) })
	g.qFaceTangentBasis = g.register("face tangent basis",
		[]*quantity{g.qFaceNormals},
		g.computeFaceTangentBasis, func() { g.FaceTangentBasis.Fill(TangentBasis{}) })
	g.qEdgeCotanWeights = g.register("edge cotan weights",
		[]*quantity{g.qHalfedgeCotanWeights},
		g.computeEdgeCotanWeights, func() { g.EdgeCotanWeights.Fill(0) })

	g.qVertexTangentBasis = g.register("vertex tangent basis",
		[]*quantity{g.qVertexNormals},
		g.computeVertexTangentBasis, func() { g.VertexTangentBasis.Fill(TangentBasis{}) })
	g.qHalfedgeVectorsInFace = g.register("halfedge vectors in face",
		[]*quantity{g.qFaceTangentBasis},
		g.computeHalfedgeVectorsInFace, func() { g.HalfedgeVectorsInFace.Fill(0) })
	g.qHalfedgeVectorsInVertex = g.register("halfedge vectors in vertex",
		[]*quantity{g.qEdgeLengths, g.qCornerAngles, g.qVertexAngleSums},
		g.computeHalfedgeVectorsInVertex, func() { g.HalfedgeVectorsInVertex.Fill(0) })

	return g
}

// NewGeometryFromPositions is NewGeometry with positions given as a
// dense vector in vertex enumeration order.
func NewGeometryFromPositions(m *mesh.Mesh, positions []vec.Vector3) *Geometry {
	return NewGeometry(m, mesh.NewVertexDataFromVector(m, positions, m.VertexIndices()))
}

// Mesh returns the bound mesh.
func (g *Geometry) Mesh() *mesh.Mesh { return g.mesh }

// == Per-quantity acquisition. Each RequireX evaluates the quantity and
// its dependencies if needed and returns the balancing release function.

// RequireEdgeLengths populates EdgeLengths.
func (g *Geometry) RequireEdgeLengths() func() { return g.require(g.qEdgeLengths) }

// RequireFaceAreas populates FaceAreas.
func (g *Geometry) RequireFaceAreas() func() { return g.require(g.qFaceAreas) }

// RequireVertexDualAreas populates VertexDualAreas.
func (g *Geometry) RequireVertexDualAreas() func() { return g.require(g.qVertexDualAreas) }

// RequireCornerAngles populates CornerAngles.
func (g *Geometry) RequireCornerAngles() func() { return g.require(g.qCornerAngles) }

// RequireVertexAngleSums populates VertexAngleSums.
func (g *Geometry) RequireVertexAngleSums() func() { return g.require(g.qVertexAngleSums) }

// RequireFaceNormals populates FaceNormals.
func (g *Geometry) RequireFaceNormals() func() { return g.require(g.qFaceNormals) }

// RequireVertexNormals populates VertexNormals.
func (g *Geometry) RequireVertexNormals() func() { return g.require(g.qVertexNormals) }

// RequireEdgeDihedralAngles populates EdgeDihedralAngles.
func (g *Geometry) RequireEdgeDihedralAngles() func() { return g.require(g.qEdgeDihedralAngles) }

// RequireFaceTangentBasis populates FaceTangentBasis.
func (g *Geometry) RequireFaceTangentBasis() func() { return g.require(g.qFaceTangentBasis) }

// RequireVertexTangentBasis populates VertexTangentBasis.
func (g *Geometry) RequireVertexTangentBasis() func() { return g.require(g.qVertexTangentBasis) }

// RequireHalfedgeVectorsInFace populates HalfedgeVectorsInFace.
func (g *Geometry) RequireHalfedgeVectorsInFace() func() { return g.require(g.qHalfedgeVectorsInFace) }

// RequireHalfedgeVectorsInVertex populates HalfedgeVectorsInVertex.
func (g *Geometry) RequireHalfedgeVectorsInVertex() func() {
	return g.require(g.qHalfedgeVectorsInVertex)
}

// RequireHalfedgeCotanWeights populates HalfedgeCotanWeights.
func (g *Geometry) RequireHalfedgeCotanWeights() func() { return g.require(g.qHalfedgeCotanWeights) }

// RequireEdgeCotanWeights populates EdgeCotanWeights.
func (g *Geometry) RequireEdgeCotanWeights() func() { return g.require(g.qEdgeCotanWeights) }

// Normalize translates the vertex positions so their mean sits at the
// origin and scales them uniformly into the unit ball. Like any other
// position edit, it does not refresh evaluated quantities.
func (g *Geometry) Normalize() {
	n := 0
	center := vec.Zero
	for v := range g.mesh.Vertices() {
		center = center.Add(g.VertexPositions.Get(v))
		n++
	}
	if n == 0 {
		return
	}
	center = center.Div(float64(n))

	radius := 0.0
	for v := range g.mesh.Vertices() {
		p := g.VertexPositions.Get(v).Sub(center)
		g.VertexPositions.Set(v, p)
		if r := p.Norm(); r > radius {
			radius = r
		}
	}
	if radius == 0 {
		return
	}
	for v := range g.mesh.Vertices() {
		g.VertexPositions.Set(v, g.VertexPositions.Get(v).Div(radius))
	}
}
