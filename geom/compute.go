package geom

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlmesh/mesh"
	"github.com/katalvlaran/lvlmesh/vec"
)

// Compute thunks. Each fills its backing container for every live
// element; dependencies are guaranteed evaluated by ensureHave before a
// thunk runs.

func (g *Geometry) pos(v mesh.Vertex) vec.Vector3 { return g.VertexPositions.Get(v) }

func (g *Geometry) computeEdgeLengths() {
	for e := range g.mesh.Edges() {
		he := e.Halfedge()
		g.EdgeLengths.Set(e, g.pos(he.TipVertex()).Sub(g.pos(he.Vertex())).Norm())
	}
}

func (g *Geometry) computeFaceAreas() {
	for f := range g.mesh.Faces() {
		// Half the norm of the vector area; exact for planar faces and
		// reduces to the cross-product formula on triangles.
		root := g.pos(f.Halfedge().Vertex())
		sum := vec.Zero
		for he := range f.AdjacentHalfedges() {
			a := g.pos(he.Vertex()).Sub(root)
			b := g.pos(he.TipVertex()).Sub(root)
			sum = sum.Add(a.Cross(b))
		}
		g.FaceAreas.Set(f, 0.5*sum.Norm())
	}
}

func (g *Geometry) computeCornerAngles() {
	for c := range g.mesh.Corners() {
		he := c.Halfedge()
		root := g.pos(he.Vertex())
		a := g.pos(he.Next().Vertex()).Sub(root)
		b := g.pos(he.Next().Next().Vertex()).Sub(root)
		g.CornerAngles.Set(c, a.Angle(b))
	}
}

func (g *Geometry) computeVertexAngleSums() {
	for v := range g.mesh.Vertices() {
		sum := 0.0
		for c := range v.AdjacentCorners() {
			sum += g.CornerAngles.Get(c)
		}
		g.VertexAngleSums.Set(v, sum)
	}
}

func (g *Geometry) computeVertexDualAreas() {
	for v := range g.mesh.Vertices() {
		area := 0.0
		for f := range v.AdjacentFaces() {
			area += g.FaceAreas.Get(f)
		}
		g.VertexDualAreas.Set(v, area/3.0)
	}
}

func (g *Geometry) computeFaceNormals() {
	for f := range g.mesh.Faces() {
		// Area-weighted sum of corner cross products; robust for mildly
		// non-planar faces.
		n := vec.Zero
		for he := range f.AdjacentHalfedges() {
			pA := g.pos(he.Vertex())
			pB := g.pos(he.Next().Vertex())
			pC := g.pos(he.Next().Next().Vertex())
			n = n.Add(pB.Sub(pA).Cross(pC.Sub(pA)))
		}
		g.FaceNormals.Set(f, n.Unit())
	}
}

func (g *Geometry) computeVertexNormals() {
	for v := range g.mesh.Vertices() {
		n := vec.Zero
		for c := range v.AdjacentCorners() {
			n = n.Add(g.FaceNormals.Get(c.Face()).Scale(g.CornerAngles.Get(c)))
		}
		g.VertexNormals.Set(v, n.Unit())
	}
}

func (g *Geometry) computeEdgeDihedralAngles() {
	for e := range g.mesh.Edges() {
		if e.IsBoundary() {
			g.EdgeDihedralAngles.Set(e, 0)

			continue
		}
		he := e.Halfedge()
		n1 := g.FaceNormals.Get(he.Face())
		n2 := g.FaceNormals.Get(he.Twin().Face())
		edgeDir := g.pos(he.TipVertex()).Sub(g.pos(he.Vertex())).Unit()
		g.EdgeDihedralAngles.Set(e, math.Atan2(edgeDir.Dot(n1.Cross(n2)), n1.Dot(n2)))
	}
}

func (g *Geometry) computeHalfedgeCotanWeights() {
	for he := range g.mesh.InteriorHalfedges() {
		// Half the cotangent of the angle opposite he in its triangle.
		root := g.pos(he.Next().Next().Vertex())
		u := g.pos(he.Vertex()).Sub(root)
		w := g.pos(he.TipVertex()).Sub(root)
		g.HalfedgeCotanWeights.Set(he, 0.5*u.Dot(w)/u.Cross(w).Norm())
	}
}

func (g *Geometry) computeEdgeCotanWeights() {
	for e := range g.mesh.Edges() {
		weight := 0.0
		if he := e.Halfedge(); he.IsInterior() {
			weight += g.HalfedgeCotanWeights.Get(he)
		}
		if he := e.Halfedge().Twin(); he.IsInterior() {
			weight += g.HalfedgeCotanWeights.Get(he)
		}
		g.EdgeCotanWeights.Set(e, weight)
	}
}

func (g *Geometry) computeFaceTangentBasis() {
	for f := range g.mesh.Faces() {
		n := g.FaceNormals.Get(f)
		he := f.Halfedge()
		basisX := g.pos(he.TipVertex()).Sub(g.pos(he.Vertex())).RemoveComponent(n).Unit()
		g.FaceTangentBasis.Set(f, TangentBasis{X: basisX, Y: n.Cross(basisX)})
	}
}

func (g *Geometry) computeVertexTangentBasis() {
	for v := range g.mesh.Vertices() {
		n := g.VertexNormals.Get(v)
		he := v.Halfedge()
		basisX := g.pos(he.TipVertex()).Sub(g.pos(v)).RemoveComponent(n).Unit()
		g.VertexTangentBasis.Set(v, TangentBasis{X: basisX, Y: n.Cross(basisX)})
	}
}

func (g *Geometry) computeHalfedgeVectorsInFace() {
	for he := range g.mesh.InteriorHalfedges() {
		basis := g.FaceTangentBasis.Get(he.Face())
		d := g.pos(he.TipVertex()).Sub(g.pos(he.Vertex()))
		g.HalfedgeVectorsInFace.Set(he, complex(d.Dot(basis.X), d.Dot(basis.Y)))
	}
}

func (g *Geometry) computeHalfedgeVectorsInVertex() {
	var orbit []mesh.Halfedge
	for v := range g.mesh.Vertices() {
		// Rescale the corner angles so the fan covers 2π (interior) or π
		// (boundary), then place each outgoing halfedge at its cumulative
		// angular coordinate with its length as magnitude. The vertex's
		// reference halfedge sits at angle zero, matching the convention
		// of VertexTangentBasis.
		angleSum := g.VertexAngleSums.Get(v)
		target := 2 * math.Pi
		if v.IsBoundary() {
			target = math.Pi
		}
		scale := target / angleSum

		orbit = orbit[:0]
		for he := range v.OutgoingHalfedges() {
			orbit = append(orbit, he)
		}

		// A halfedge's corner spans the wedge to its orbit predecessor,
		// so the cumulative walk runs through the orbit in reverse.
		k := len(orbit)
		coord := 0.0
		for i := 0; i < k; i++ {
			he := orbit[(k-i)%k]
			length := g.EdgeLengths.Get(he.Edge())
			g.HalfedgeVectorsInVertex.Set(he, cmplx.Rect(length, coord))
			if he.IsInterior() {
				coord += scale * g.CornerAngles.Get(he.Corner())
			}
		}
	}
}
