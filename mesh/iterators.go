package mesh

import "iter"

// Range iteration walks the slot space and skips tombstoned slots, so a
// full walk costs O(fill count) even when many elements are dead.
// Mutating the mesh while a range is in flight is undefined behavior.

// Vertices ranges over all live vertices.
func (m *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for i := 0; i < m.nVerticesFillCount; i++ {
			if !m.vertexIsDead(i) && !yield(Vertex{m, i}) {
				return
			}
		}
	}
}

// Halfedges ranges over all live halfedges, interior and exterior.
func (m *Mesh) Halfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		for i := 0; i < m.nHalfedgesFillCount; i++ {
			if !m.halfedgeIsDead(i) && !yield(Halfedge{m, i}) {
				return
			}
		}
	}
}

// InteriorHalfedges ranges over live halfedges incident to real faces.
func (m *Mesh) InteriorHalfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		for i := 0; i < m.nHalfedgesFillCount; i++ {
			if !m.halfedgeIsDead(i) && m.heIsInterior(i) && !yield(Halfedge{m, i}) {
				return
			}
		}
	}
}

// ExteriorHalfedges ranges over live halfedges incident to boundary loops.
func (m *Mesh) ExteriorHalfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		for i := 0; i < m.nHalfedgesFillCount; i++ {
			if !m.halfedgeIsDead(i) && !m.heIsInterior(i) && !yield(Halfedge{m, i}) {
				return
			}
		}
	}
}

// Corners ranges over all corners (one per interior halfedge).
func (m *Mesh) Corners() iter.Seq[Corner] {
	return func(yield func(Corner) bool) {
		for i := 0; i < m.nHalfedgesFillCount; i++ {
			if !m.halfedgeIsDead(i) && m.heIsInterior(i) && !yield(Corner{m, i}) {
				return
			}
		}
	}
}

// Edges ranges over all live edges.
func (m *Mesh) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := 0; i < m.nHalfedgesFillCount/2; i++ {
			if !m.edgeIsDead(i) && !yield(Edge{m, i}) {
				return
			}
		}
	}
}

// Faces ranges over all live real faces.
func (m *Mesh) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for i := 0; i < m.nFacesFillCount; i++ {
			if !m.faceIsDead(i) && !yield(Face{m, i}) {
				return
			}
		}
	}
}

// BoundaryLoops ranges over all boundary loops.
func (m *Mesh) BoundaryLoops() iter.Seq[BoundaryLoop] {
	return func(yield func(BoundaryLoop) bool) {
		for b := 0; b < m.nBoundaryLoopsFillCount; b++ {
			if !m.faceIsDead(m.boundaryLoopIndToFaceInd(b)) && !yield(BoundaryLoop{m, b}) {
				return
			}
		}
	}
}

// == Vertex adjacency. All orbits cost O(degree) and include the
// boundary gap naturally, since exterior halfedges carry next pointers.

// OutgoingHalfedges ranges over halfedges whose tail is v.
func (v Vertex) OutgoingHalfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		first := v.Halfedge()
		he := first
		for {
			if !yield(he) {
				return
			}
			he = he.Twin().Next()
			if he == first {
				return
			}
		}
	}
}

// IncomingHalfedges ranges over halfedges pointing at v.
func (v Vertex) IncomingHalfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		for he := range v.OutgoingHalfedges() {
			if !yield(he.Twin()) {
				return
			}
		}
	}
}

// AdjacentVertices ranges over the vertices sharing an edge with v.
func (v Vertex) AdjacentVertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for he := range v.OutgoingHalfedges() {
			if !yield(he.TipVertex()) {
				return
			}
		}
	}
}

// AdjacentEdges ranges over the edges incident on v.
func (v Vertex) AdjacentEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for he := range v.OutgoingHalfedges() {
			if !yield(he.Edge()) {
				return
			}
		}
	}
}

// AdjacentFaces ranges over the real faces incident on v.
func (v Vertex) AdjacentFaces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for he := range v.OutgoingHalfedges() {
			if he.IsInterior() && !yield(he.Face()) {
				return
			}
		}
	}
}

// AdjacentCorners ranges over the corners at v.
func (v Vertex) AdjacentCorners() iter.Seq[Corner] {
	return func(yield func(Corner) bool) {
		for he := range v.OutgoingHalfedges() {
			if he.IsInterior() && !yield(he.Corner()) {
				return
			}
		}
	}
}

// == Face adjacency.

// AdjacentHalfedges ranges over the halfedges on the face's boundary,
// in cycle order starting from f.Halfedge().
func (f Face) AdjacentHalfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		first := f.Halfedge()
		he := first
		for {
			if !yield(he) {
				return
			}
			he = he.Next()
			if he == first {
				return
			}
		}
	}
}

// AdjacentVertices ranges over the face's vertices in cycle order.
func (f Face) AdjacentVertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for he := range f.AdjacentHalfedges() {
			if !yield(he.Vertex()) {
				return
			}
		}
	}
}

// AdjacentEdges ranges over the face's edges in cycle order.
func (f Face) AdjacentEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for he := range f.AdjacentHalfedges() {
			if !yield(he.Edge()) {
				return
			}
		}
	}
}

// AdjacentCorners ranges over the face's corners in cycle order.
func (f Face) AdjacentCorners() iter.Seq[Corner] {
	return func(yield func(Corner) bool) {
		for he := range f.AdjacentHalfedges() {
			if !yield(he.Corner()) {
				return
			}
		}
	}
}

// AdjacentFaces ranges over the real faces sharing an edge with f.
// A neighbor is yielded once per shared edge.
func (f Face) AdjacentFaces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for he := range f.AdjacentHalfedges() {
			nb := he.Twin()
			if nb.IsInterior() && !yield(nb.Face()) {
				return
			}
		}
	}
}

// == Boundary loop adjacency.

// AdjacentHalfedges ranges over the exterior halfedges of the loop.
func (b BoundaryLoop) AdjacentHalfedges() iter.Seq[Halfedge] {
	return b.AsFace().AdjacentHalfedges()
}

// AdjacentVertices ranges over the vertices on the loop.
func (b BoundaryLoop) AdjacentVertices() iter.Seq[Vertex] {
	return b.AsFace().AdjacentVertices()
}

// AdjacentEdges ranges over the edges on the loop.
func (b BoundaryLoop) AdjacentEdges() iter.Seq[Edge] {
	return b.AsFace().AdjacentEdges()
}
