package mesh

// Element handles are (mesh, slot) value pairs. The zero value of each
// handle type is the null handle, returned by operators whose
// preconditions fail; compare with == or test IsNull. Handles are only
// guaranteed valid between compactions — see the dynamic variants for
// handles that survive Compress.

// Vertex is a handle to a mesh vertex.
type Vertex struct {
	mesh *Mesh
	ind  int
}

// Halfedge is a handle to an oriented halfedge. Its vertex is the tail.
type Halfedge struct {
	mesh *Mesh
	ind  int
}

// Corner is a handle to a face corner: the angle at the tail of an
// interior halfedge, inside that halfedge's face. A corner shares its
// slot with its halfedge.
type Corner struct {
	mesh *Mesh
	ind  int
}

// Edge is a handle to an unoriented edge.
type Edge struct {
	mesh *Mesh
	ind  int
}

// Face is a handle to a face. A Face may denote a boundary-loop
// pseudo-face; test IsBoundaryLoop before treating it as a real face.
type Face struct {
	mesh *Mesh
	ind  int
}

// BoundaryLoop is a handle to a boundary loop, the pseudo-face bounding
// one hole of the surface. Loop indices count from 0 regardless of where
// the loop sits in the shared face buffer.
type BoundaryLoop struct {
	mesh *Mesh
	ind  int
}

// == Shared handle surface.

// IsNull reports whether the handle is the zero (null) handle.
func (v Vertex) IsNull() bool { return v.mesh == nil }
func (h Halfedge) IsNull() bool { return h.mesh == nil }
func (c Corner) IsNull() bool { return c.mesh == nil }
func (e Edge) IsNull() bool { return e.mesh == nil }
func (f Face) IsNull() bool { return f.mesh == nil }
func (b BoundaryLoop) IsNull() bool { return b.mesh == nil }

// Index returns the raw slot index. Raw slots are not a dense enumeration
// on an uncompressed mesh; prefer Mesh.VertexIndices (etc.) when building
// linear-algebra indices.
func (v Vertex) Index() int { return v.ind }
func (h Halfedge) Index() int { return h.ind }
func (c Corner) Index() int { return c.ind }
func (e Edge) Index() int { return e.ind }
func (f Face) Index() int { return f.ind }
func (b BoundaryLoop) Index() int { return b.ind }

// Mesh returns the mesh the handle belongs to (nil for the null handle).
func (v Vertex) Mesh() *Mesh { return v.mesh }
func (h Halfedge) Mesh() *Mesh { return h.mesh }
func (c Corner) Mesh() *Mesh { return c.mesh }
func (e Edge) Mesh() *Mesh { return e.mesh }
func (f Face) Mesh() *Mesh { return f.mesh }
func (b BoundaryLoop) Mesh() *Mesh { return b.mesh }

// == Halfedge navigation. All O(1).

// Twin returns the oppositely oriented halfedge of the same edge.
func (h Halfedge) Twin() Halfedge { return Halfedge{h.mesh, heTwin(h.ind)} }

// Next returns the next halfedge around the incident face or loop.
func (h Halfedge) Next() Halfedge { return Halfedge{h.mesh, h.mesh.heNext[h.ind]} }

// Vertex returns the vertex at the halfedge's tail.
func (h Halfedge) Vertex() Vertex { return Vertex{h.mesh, h.mesh.heVertex[h.ind]} }

// TipVertex returns the vertex the halfedge points at.
func (h Halfedge) TipVertex() Vertex { return h.Twin().Vertex() }

// Edge returns the undirected edge the halfedge belongs to.
func (h Halfedge) Edge() Edge { return Edge{h.mesh, heEdge(h.ind)} }

// Face returns the incident face, which may be a boundary-loop pseudo-face.
func (h Halfedge) Face() Face { return Face{h.mesh, h.mesh.heFace[h.ind]} }

// Corner returns the corner at the halfedge's tail inside its face.
// Only meaningful for interior halfedges.
func (h Halfedge) Corner() Corner { return Corner{h.mesh, h.ind} }

// IsInterior reports whether the halfedge borders a real face rather than
// a boundary loop.
func (h Halfedge) IsInterior() bool { return h.mesh.heIsInterior(h.ind) }

// prev walks the face cycle to the halfedge whose next is h.
// Complexity: O(degree).
func (h Halfedge) prev() Halfedge {
	cur := h
	for cur.Next() != h {
		cur = cur.Next()
	}

	return cur
}

// == Vertex navigation.

// Halfedge returns one outgoing halfedge of the vertex.
func (v Vertex) Halfedge() Halfedge { return Halfedge{v.mesh, v.mesh.vHalfedge[v.ind]} }

// Corner returns a corner incident on the vertex.
func (v Vertex) Corner() Corner {
	for he := range v.OutgoingHalfedges() {
		if he.IsInterior() {
			return he.Corner()
		}
	}
	panic("mesh: vertex has no interior halfedge")
}

// IsBoundary reports whether the vertex lies on a boundary loop.
// Complexity: O(degree).
func (v Vertex) IsBoundary() bool {
	for he := range v.OutgoingHalfedges() {
		if !he.IsInterior() {
			return true
		}
	}

	return false
}

// Degree returns the number of incident edges. Complexity: O(degree).
func (v Vertex) Degree() int {
	n := 0
	for range v.OutgoingHalfedges() {
		n++
	}

	return n
}

// FaceDegree returns the number of incident real faces. Complexity: O(degree).
func (v Vertex) FaceDegree() int {
	n := 0
	for he := range v.OutgoingHalfedges() {
		if he.IsInterior() {
			n++
		}
	}

	return n
}

// == Corner navigation.

// Halfedge returns the interior halfedge sharing the corner's slot.
func (c Corner) Halfedge() Halfedge { return Halfedge{c.mesh, c.ind} }

// Vertex returns the vertex the corner sits at.
func (c Corner) Vertex() Vertex { return c.Halfedge().Vertex() }

// Face returns the face containing the corner.
func (c Corner) Face() Face { return c.Halfedge().Face() }

// == Edge navigation.

// Halfedge returns the edge's canonical halfedge, always slot 2*edge.
func (e Edge) Halfedge() Halfedge { return Halfedge{e.mesh, eHalfedge(e.ind)} }

// IsBoundary reports whether the edge borders a boundary loop.
func (e Edge) IsBoundary() bool {
	return !e.Halfedge().IsInterior() || !e.Halfedge().Twin().IsInterior()
}

// == Face navigation.

// Halfedge returns one halfedge on the face's boundary.
func (f Face) Halfedge() Halfedge { return Halfedge{f.mesh, f.mesh.fHalfedge[f.ind]} }

// IsBoundaryLoop reports whether this face slot denotes a boundary loop.
func (f Face) IsBoundaryLoop() bool { return f.mesh.faceIsBoundaryLoop(f.ind) }

// AsBoundaryLoop reinterprets a boundary-loop pseudo-face as a BoundaryLoop.
func (f Face) AsBoundaryLoop() BoundaryLoop {
	if !f.IsBoundaryLoop() {
		panic("mesh: face is not a boundary loop")
	}

	return BoundaryLoop{f.mesh, f.mesh.faceIndToBoundaryLoopInd(f.ind)}
}

// Degree returns the number of sides. Complexity: O(degree).
func (f Face) Degree() int {
	n := 0
	for range f.AdjacentHalfedges() {
		n++
	}

	return n
}

// == Boundary loop navigation.

func (b BoundaryLoop) faceInd() int { return b.mesh.boundaryLoopIndToFaceInd(b.ind) }

// Halfedge returns one exterior halfedge of the loop.
func (b BoundaryLoop) Halfedge() Halfedge { return Halfedge{b.mesh, b.mesh.fHalfedge[b.faceInd()]} }

// AsFace reinterprets the loop as its pseudo-face handle.
func (b BoundaryLoop) AsFace() Face { return Face{b.mesh, b.faceInd()} }

// Degree returns the number of halfedges bounding the hole. Complexity: O(degree).
func (b BoundaryLoop) Degree() int { return b.AsFace().Degree() }
