package mesh

// invalidInd marks dead slots in the connectivity arrays. It is also the
// reserved "omit this element" value for container indexers.
const invalidInd = -1

// InvalidIndex is the reserved sentinel for container indexers: an indexer
// entry equal to InvalidIndex excludes the element from vector conversion.
const InvalidIndex = invalidInd

// Mesh is a halfedge connectivity structure for a single manifold,
// orientable surface with boundary.
//
// All topology is held in five parallel slot arrays. The twin, edge and
// canonical edge-halfedge relations are implicit in slot arithmetic (see
// the package documentation). The zero Mesh is not usable; construct one
// with NewMesh.
type Mesh struct {
	// Core connectivity, indexed by halfedge / vertex / face slot.
	heNext    []int // next halfedge around the incident face or loop
	heVertex  []int // vertex at the halfedge's tail
	heFace    []int // incident face (real face or boundary-loop pseudo-face)
	vHalfedge []int // one outgoing halfedge per vertex
	fHalfedge []int // one halfedge per face; loops fill from the back

	// Live element counts. Tombstoned slots are excluded.
	nHalfedgesCount         int
	nInteriorHalfedgesCount int
	nVerticesCount          int
	nFacesCount             int
	nBoundaryLoopsCount     int

	// Fill counts: the end of the used region of each buffer. Tombstones
	// keep the fill count unchanged; only Compress shrinks it.
	nVerticesFillCount      int
	nHalfedgesFillCount     int // always even
	nFacesFillCount         int // where real faces stop
	nBoundaryLoopsFillCount int // loops fill backward from the buffer end

	compressed bool
	canonical  bool
	closed     bool

	callbacks callbackRegistry
}

// == Element counts (O(1) unless noted).

// NVertices returns the number of live vertices.
func (m *Mesh) NVertices() int { return m.nVerticesCount }

// NHalfedges returns the number of live halfedges, interior and exterior.
func (m *Mesh) NHalfedges() int { return m.nHalfedgesCount }

// NInteriorHalfedges returns the number of live halfedges incident to a real face.
func (m *Mesh) NInteriorHalfedges() int { return m.nInteriorHalfedgesCount }

// NExteriorHalfedges returns the number of live halfedges incident to a boundary loop.
func (m *Mesh) NExteriorHalfedges() int { return m.nHalfedgesCount - m.nInteriorHalfedgesCount }

// NCorners returns the number of corners, which equals NInteriorHalfedges.
func (m *Mesh) NCorners() int { return m.nInteriorHalfedgesCount }

// NEdges returns the number of live edges.
func (m *Mesh) NEdges() int { return m.nHalfedgesCount / 2 }

// NFaces returns the number of live real faces.
func (m *Mesh) NFaces() int { return m.nFacesCount }

// NBoundaryLoops returns the number of boundary loops.
func (m *Mesh) NBoundaryLoops() int { return m.nBoundaryLoopsCount }

// NInteriorVertices returns the number of vertices not on any boundary loop.
// Complexity: O(n).
func (m *Mesh) NInteriorVertices() int {
	n := 0
	for v := range m.Vertices() {
		if !v.IsBoundary() {
			n++
		}
	}

	return n
}

// == Buffer capacities. Containers must be able to hold this many slots
// before the next expand event.

// NVerticesCapacity returns the vertex buffer capacity.
func (m *Mesh) NVerticesCapacity() int { return len(m.vHalfedge) }

// NHalfedgesCapacity returns the halfedge buffer capacity (always even).
func (m *Mesh) NHalfedgesCapacity() int { return len(m.heNext) }

// NEdgesCapacity returns the edge buffer capacity.
func (m *Mesh) NEdgesCapacity() int { return len(m.heNext) / 2 }

// NFacesCapacity returns the face buffer capacity. The buffer is shared
// with boundary loops, which occupy its tail.
func (m *Mesh) NFacesCapacity() int { return len(m.fHalfedge) }

// NBoundaryLoopsCapacity returns the boundary-loop capacity. Loops are
// never allocated after construction, so this equals the loop fill count.
func (m *Mesh) NBoundaryLoopsCapacity() int { return m.nBoundaryLoopsFillCount }

// == Dead-slot predicates. Slots at or past the fill count are unused,
// not dead; these predicates only apply within the fill region.

func (m *Mesh) vertexIsDead(iV int) bool { return m.vHalfedge[iV] == invalidInd }
func (m *Mesh) halfedgeIsDead(iHe int) bool { return m.heNext[iHe] == invalidInd }
func (m *Mesh) edgeIsDead(iE int) bool { return m.heNext[2*iE] == invalidInd }
func (m *Mesh) faceIsDead(iF int) bool { return m.fHalfedge[iF] == invalidInd }

// == Implicit relations.

func heTwin(iHe int) int { return iHe ^ 1 }
func heEdge(iHe int) int { return iHe >> 1 }
func eHalfedge(iE int) int { return iE << 1 }

func (m *Mesh) heIsInterior(iHe int) bool { return !m.faceIsBoundaryLoop(m.heFace[iHe]) }

// faceIsBoundaryLoop reports whether a raw face-buffer index denotes a
// boundary loop. Real faces occupy [0, nFacesFillCount); everything past
// that is the loop region.
func (m *Mesh) faceIsBoundaryLoop(iF int) bool { return iF >= m.nFacesFillCount }

// Boundary loop b lives at face-buffer index cap-1-b.
func (m *Mesh) boundaryLoopIndToFaceInd(iBl int) int { return len(m.fHalfedge) - 1 - iBl }
func (m *Mesh) faceIndToBoundaryLoopInd(iF int) int { return len(m.fHalfedge) - 1 - iF }

// == Element accessors by index. Only meaningful on a compressed mesh,
// where live elements form a dense prefix. Panics on an out-of-range or
// dead slot (a programming-contract violation, per the package contract).

// Vertex returns the vertex at slot i.
func (m *Mesh) Vertex(i int) Vertex {
	m.checkSlot(i, m.nVerticesFillCount, m.vertexIsDead, "vertex")

	return Vertex{m, i}
}

// Halfedge returns the halfedge at slot i.
func (m *Mesh) Halfedge(i int) Halfedge {
	m.checkSlot(i, m.nHalfedgesFillCount, m.halfedgeIsDead, "halfedge")

	return Halfedge{m, i}
}

// Corner returns the corner at slot i (a corner shares its slot with its
// interior halfedge).
func (m *Mesh) Corner(i int) Corner {
	m.checkSlot(i, m.nHalfedgesFillCount, m.halfedgeIsDead, "corner")
	if !m.heIsInterior(i) {
		panic("mesh: corner slot refers to an exterior halfedge")
	}

	return Corner{m, i}
}

// Edge returns the edge at slot i.
func (m *Mesh) Edge(i int) Edge {
	m.checkSlot(i, m.nHalfedgesFillCount/2, m.edgeIsDead, "edge")

	return Edge{m, i}
}

// Face returns the real face at slot i.
func (m *Mesh) Face(i int) Face {
	m.checkSlot(i, m.nFacesFillCount, m.faceIsDead, "face")

	return Face{m, i}
}

// BoundaryLoop returns the boundary loop at index i, counted from 0.
func (m *Mesh) BoundaryLoop(i int) BoundaryLoop {
	if i < 0 || i >= m.nBoundaryLoopsFillCount {
		panic("mesh: boundary loop index out of range")
	}
	if m.faceIsDead(m.boundaryLoopIndToFaceInd(i)) {
		panic("mesh: boundary loop is deleted")
	}

	return BoundaryLoop{m, i}
}

func (m *Mesh) checkSlot(i, fill int, dead func(int) bool, kind string) {
	if i < 0 || i >= fill {
		panic("mesh: " + kind + " index out of range")
	}
	if dead(i) {
		panic("mesh: " + kind + " is deleted")
	}
}

// == Structural queries.

// IsTriangular reports whether every real face is a triangle.
// Complexity: O(n).
func (m *Mesh) IsTriangular() bool {
	for f := range m.Faces() {
		if f.Degree() != 3 {
			return false
		}
	}

	return true
}

// EulerCharacteristic returns V - E + F. Complexity: O(1).
func (m *Mesh) EulerCharacteristic() int {
	return m.nVerticesCount - m.NEdges() + m.nFacesCount
}

// Genus returns the genus g of the surface, from 2 - 2g - b = V - E + F
// where b is the number of boundary loops. Complexity: O(1).
// The result is only meaningful for connected meshes.
func (m *Mesh) Genus() int {
	return (2 - m.nBoundaryLoopsCount - m.EulerCharacteristic()) / 2
}

// NConnectedComponents returns the number of connected components.
// Complexity: O(n).
func (m *Mesh) NConnectedComponents() int {
	seen := make([]bool, m.nVerticesFillCount)
	comps := 0
	var stack []int
	for iV := 0; iV < m.nVerticesFillCount; iV++ {
		if m.vertexIsDead(iV) || seen[iV] {
			continue
		}
		comps++
		seen[iV] = true
		stack = append(stack[:0], iV)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for he := range (Vertex{m, cur}).OutgoingHalfedges() {
				w := he.Twin().Vertex().ind
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
	}

	return comps
}

// IsCompressed reports whether the buffers contain no tombstones.
func (m *Mesh) IsCompressed() bool { return m.compressed }

// IsCanonical reports whether element enumeration matches the order a
// fresh construction from FaceVertexList would produce.
func (m *Mesh) IsCanonical() bool { return m.canonical }

// FaceVertexList returns the polygon soup equivalent to the current
// connectivity, using the vertex enumeration order for indices. Feeding
// the result back to NewMesh reproduces the mesh up to canonical ordering.
func (m *Mesh) FaceVertexList() [][]int {
	vIdx := m.VertexIndices()
	out := make([][]int, 0, m.nFacesCount)
	for f := range m.Faces() {
		poly := make([]int, 0, 3)
		for v := range f.AdjacentVertices() {
			poly = append(poly, vIdx.Get(v))
		}
		out = append(out, poly)
	}

	return out
}

// Copy returns a deep copy of the mesh. Callback subscriptions are not
// copied; the new mesh starts with an empty observer registry.
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		heNext:    append([]int(nil), m.heNext...),
		heVertex:  append([]int(nil), m.heVertex...),
		heFace:    append([]int(nil), m.heFace...),
		vHalfedge: append([]int(nil), m.vHalfedge...),
		fHalfedge: append([]int(nil), m.fHalfedge...),

		nHalfedgesCount:         m.nHalfedgesCount,
		nInteriorHalfedgesCount: m.nInteriorHalfedgesCount,
		nVerticesCount:          m.nVerticesCount,
		nFacesCount:             m.nFacesCount,
		nBoundaryLoopsCount:     m.nBoundaryLoopsCount,

		nVerticesFillCount:      m.nVerticesFillCount,
		nHalfedgesFillCount:     m.nHalfedgesFillCount,
		nFacesFillCount:         m.nFacesFillCount,
		nBoundaryLoopsFillCount: m.nBoundaryLoopsFillCount,

		compressed: m.compressed,
		canonical:  m.canonical,
	}

	return c
}

// Close tears the mesh down: every subscriber on the mesh-deleted list is
// notified so containers and dynamic handles can detach safely. The mesh
// must not be used afterwards. Close is idempotent.
func (m *Mesh) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.callbacks.fireMeshDeleted()
}

// == Canonical index assignment.

// VertexIndices returns a container assigning a dense 0-based index to
// every live vertex in enumeration order.
func (m *Mesh) VertexIndices() *VertexData[int] {
	d := NewVertexData[int](m)
	i := 0
	for v := range m.Vertices() {
		d.Set(v, i)
		i++
	}

	return d
}

// InteriorVertexIndices returns a container assigning a dense index to
// interior vertices; boundary vertices receive InvalidIndex.
func (m *Mesh) InteriorVertexIndices() *VertexData[int] {
	d := NewVertexDataWithDefault[int](m, InvalidIndex)
	i := 0
	for v := range m.Vertices() {
		if !v.IsBoundary() {
			d.Set(v, i)
			i++
		}
	}

	return d
}

// HalfedgeIndices returns a dense index for every live halfedge.
func (m *Mesh) HalfedgeIndices() *HalfedgeData[int] {
	d := NewHalfedgeData[int](m)
	i := 0
	for he := range m.Halfedges() {
		d.Set(he, i)
		i++
	}

	return d
}

// CornerIndices returns a dense index for every corner.
func (m *Mesh) CornerIndices() *CornerData[int] {
	d := NewCornerData[int](m)
	i := 0
	for c := range m.Corners() {
		d.Set(c, i)
		i++
	}

	return d
}

// EdgeIndices returns a dense index for every live edge.
func (m *Mesh) EdgeIndices() *EdgeData[int] {
	d := NewEdgeData[int](m)
	i := 0
	for e := range m.Edges() {
		d.Set(e, i)
		i++
	}

	return d
}

// FaceIndices returns a dense index for every live real face.
func (m *Mesh) FaceIndices() *FaceData[int] {
	d := NewFaceData[int](m)
	i := 0
	for f := range m.Faces() {
		d.Set(f, i)
		i++
	}

	return d
}
