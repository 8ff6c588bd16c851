package mesh

// Local surgery operators. Every operator either performs its edit
// completely and returns a live handle (or true), or detects a violated
// precondition up front and returns a null handle (or false) with the
// mesh untouched. Operators that allocate fire the expand callbacks
// before returning; none of them invalidates outstanding handles, since
// tombstoned slots are only reclaimed by Compress.

// prevHe walks the cycle of iHe to the halfedge whose next is iHe.
func (m *Mesh) prevHe(iHe int) int {
	cur := iHe
	for m.heNext[cur] != iHe {
		cur = m.heNext[cur]
	}

	return cur
}

// rawFaceDegree counts the sides of a raw face-buffer index.
func (m *Mesh) rawFaceDegree(iF int) int {
	d := 0
	first := m.fHalfedge[iF]
	he := first
	for {
		d++
		he = m.heNext[he]
		if he == first {
			break
		}
	}

	return d
}

// setHalfedgeFace assigns a halfedge to a face, keeping the interior
// halfedge count correct when the halfedge crosses the real/exterior line.
func (m *Mesh) setHalfedgeFace(iHe, iF int) {
	wasInterior := m.heIsInterior(iHe)
	m.heFace[iHe] = iF
	isInterior := !m.faceIsBoundaryLoop(iF)
	switch {
	case wasInterior && !isInterior:
		m.nInteriorHalfedgesCount--
	case !wasInterior && isInterior:
		m.nInteriorHalfedgesCount++
	}
}

func checkMesh(m, owner *Mesh, what string) {
	if owner != m {
		panic("mesh: " + what + " handle belongs to a different mesh")
	}
}

// Flip rotates the shared edge of two triangles to the other diagonal.
// It returns false, leaving the mesh unmodified, if e is a boundary edge
// or either incident face is not a triangle. Flip never reallocates
// slots, so no handle is invalidated, but it does break the canonical
// ordering guarantee. Complexity: O(1).
func (m *Mesh) Flip(e Edge) bool {
	checkMesh(m, e.mesh, "edge")

	ha1 := eHalfedge(e.ind)
	hb1 := heTwin(ha1)
	fA := m.heFace[ha1]
	fB := m.heFace[hb1]
	if m.faceIsBoundaryLoop(fA) || m.faceIsBoundaryLoop(fB) {
		return false
	}

	ha2 := m.heNext[ha1]
	ha3 := m.heNext[ha2]
	if m.heNext[ha3] != ha1 {
		return false
	}
	hb2 := m.heNext[hb1]
	hb3 := m.heNext[hb2]
	if m.heNext[hb3] != hb1 {
		return false
	}

	vA := m.heVertex[ha1]
	vB := m.heVertex[hb1]
	vC := m.heVertex[ha3]
	vD := m.heVertex[hb3]

	// New diagonal runs vC->vD; face A becomes (ha1, hb3, ha2) and face B
	// becomes (hb1, ha3, hb2).
	m.heNext[ha1] = hb3
	m.heNext[hb3] = ha2
	m.heNext[ha2] = ha1
	m.heNext[hb1] = ha3
	m.heNext[ha3] = hb2
	m.heNext[hb2] = hb1

	m.heVertex[ha1] = vC
	m.heVertex[hb1] = vD
	m.heFace[hb3] = fA
	m.heFace[ha3] = fB
	m.fHalfedge[fA] = ha1
	m.fHalfedge[fB] = hb1

	if m.vHalfedge[vA] == ha1 {
		m.vHalfedge[vA] = hb2
	}
	if m.vHalfedge[vB] == hb1 {
		m.vHalfedge[vB] = ha2
	}

	m.canonical = false

	return true
}

// InsertVertexAlongEdge subdivides e with a new vertex, incrementing the
// degree of both incident faces (boundary loops included) by one. It
// returns a halfedge whose tail is the new vertex, pointing the same way
// as e's canonical halfedge, and which is itself the canonical halfedge
// of the new edge. Complexity: O(degree) for the twin-side cycle walk.
func (m *Mesh) InsertVertexAlongEdge(e Edge) Halfedge {
	checkMesh(m, e.mesh, "edge")

	ha := eHalfedge(e.ind)
	hb := heTwin(ha)
	fA := m.heFace[ha]
	fB := m.heFace[hb]
	vB := m.heVertex[hb]
	nextA := m.heNext[ha]
	pb := m.prevHe(hb)

	hN := m.newHalfedgePair()
	hNt := heTwin(hN)
	vN := m.newVertex()

	// Side of fA: ha now ends at vN, hN continues vN -> vB.
	m.heNext[hN] = nextA
	m.heNext[ha] = hN
	m.heVertex[hN] = vN
	m.heFace[hN] = fA

	// Side of fB: hNt covers vB -> vN, hb now runs vN -> original tail.
	m.heNext[pb] = hNt
	m.heNext[hNt] = hb
	m.heVertex[hNt] = vB
	m.heFace[hNt] = fB
	m.heVertex[hb] = vN

	if m.vHalfedge[vB] == hb {
		m.vHalfedge[vB] = hNt
	}
	m.vHalfedge[vN] = hN

	if !m.faceIsBoundaryLoop(fA) {
		m.nInteriorHalfedgesCount++
	}
	if !m.faceIsBoundaryLoop(fB) {
		m.nInteriorHalfedgesCount++
	}

	return Halfedge{m, hN}
}

// SplitEdge splits an edge of a triangle mesh, subdividing the incident
// real faces back to triangles, and returns the new vertex. The faces
// incident on e must be triangles (boundary loops are fine).
func (m *Mesh) SplitEdge(e Edge) Vertex {
	he, _ := m.splitEdge(e)

	return Halfedge{m, he}.TipVertex()
}

// SplitEdgeReturnHalfedge is SplitEdge returning the halfedge that points
// toward the new vertex in the direction of e's canonical halfedge.
func (m *Mesh) SplitEdgeReturnHalfedge(e Edge) Halfedge {
	he, _ := m.splitEdge(e)

	return Halfedge{m, he}
}

// splitEdge returns (halfedge toward the new vertex, new vertex slot).
func (m *Mesh) splitEdge(e Edge) (int, int) {
	heNew := m.InsertVertexAlongEdge(e)
	hN := heNew.ind
	hNt := heTwin(hN)
	hb := m.heNext[hNt] // vN -> original tail
	ha := heTwin(hb)    // original tail -> vN, the returned halfedge
	vN := m.heVertex[hN]

	// Each real incident face is now a quad; connect vN back to the
	// opposite corner to restore triangles.
	fA := m.heFace[hN]
	if !m.faceIsBoundaryLoop(fA) {
		opp := m.heVertex[m.heNext[m.heNext[hN]]]
		m.connect(fA, hN, m.outgoingInFace(opp, fA))
	}
	fB := m.heFace[hb]
	if !m.faceIsBoundaryLoop(fB) {
		opp := m.heVertex[m.heNext[m.heNext[hb]]]
		m.connect(fB, hb, m.outgoingInFace(opp, fB))
	}

	return ha, vN
}

// InsertVertex adds a vertex interior to a real face and triangulates by
// connecting it to every original vertex of the face. Returns the new
// vertex. Calling it on a boundary loop is a contract violation and
// panics. Complexity: O(degree).
func (m *Mesh) InsertVertex(f Face) Vertex {
	checkMesh(m, f.mesh, "face")
	if f.IsBoundaryLoop() {
		panic("mesh: InsertVertex on a boundary loop")
	}

	var hs, vs []int
	first := m.fHalfedge[f.ind]
	he := first
	for {
		hs = append(hs, he)
		vs = append(vs, m.heVertex[he])
		he = m.heNext[he]
		if he == first {
			break
		}
	}
	d := len(hs)

	vN := m.newVertex()
	outs := make([]int, d) // vN -> vs[i]; twin outs[i]^1 runs vs[i] -> vN
	for i := range outs {
		outs[i] = m.newHalfedgePair()
	}
	faces := make([]int, d)
	faces[0] = f.ind
	for i := 1; i < d; i++ {
		faces[i] = m.newFace()
	}

	for i := 0; i < d; i++ {
		j := (i + 1) % d
		in := heTwin(outs[j]) // vs[j] -> vN
		m.heNext[outs[i]] = hs[i]
		m.heNext[hs[i]] = in
		m.heNext[in] = outs[i]
		m.heVertex[outs[i]] = vN
		m.heVertex[in] = vs[j]
		m.heFace[outs[i]] = faces[i]
		m.heFace[hs[i]] = faces[i]
		m.heFace[in] = faces[i]
		m.fHalfedge[faces[i]] = hs[i]
	}
	m.vHalfedge[vN] = outs[0]
	m.nInteriorHalfedgesCount += 2 * d

	return Vertex{m, vN}
}

// outgoingInFace finds the halfedge of face iF whose tail is iV, or -1.
func (m *Mesh) outgoingInFace(iV, iF int) int {
	first := m.fHalfedge[iF]
	he := first
	for {
		if m.heVertex[he] == iV {
			return he
		}
		he = m.heNext[he]
		if he == first {
			return invalidInd
		}
	}
}

// connect splits face iF by a new edge from tail(heA) to tail(heB),
// where heA and heB lie in iF. The original face keeps the chunk
// starting at the new halfedge; the chunk heA..prev(heB) moves to a new
// face. Returns the new halfedge with tail(heA)'s vertex at its tail;
// its twin borders the new face.
func (m *Mesh) connect(iF, heA, heB int) int {
	pA := m.prevHe(heA)
	pB := m.prevHe(heB)
	vA := m.heVertex[heA]
	vB := m.heVertex[heB]

	hN := m.newHalfedgePair()
	hNt := heTwin(hN)
	fN := m.newFace()

	m.heNext[hN] = heB
	m.heNext[pA] = hN
	m.heNext[hNt] = heA
	m.heNext[pB] = hNt
	m.heVertex[hN] = vA
	m.heVertex[hNt] = vB
	m.heFace[hN] = iF
	m.heFace[hNt] = fN
	for cur := heA; cur != hNt; cur = m.heNext[cur] {
		m.heFace[cur] = fN
	}
	m.fHalfedge[iF] = hN
	m.fHalfedge[fN] = hNt
	m.nInteriorHalfedgesCount += 2

	return hN
}

// eligibleInFace reports whether vA and vB can be connected inside raw
// face iF: both present and not adjacent along the face cycle.
func (m *Mesh) eligibleInFace(iF, iVA, iVB int) (heA, heB int, ok bool) {
	if m.faceIsBoundaryLoop(iF) {
		return 0, 0, false
	}
	heA = m.outgoingInFace(iVA, iF)
	heB = m.outgoingInFace(iVB, iF)
	if heA == invalidInd || heB == invalidInd {
		return 0, 0, false
	}
	if m.heNext[heA] == heB || m.heNext[heB] == heA {
		return 0, 0, false
	}

	return heA, heB, true
}

// ConnectVertices inserts an edge between two vertices sharing a common
// incident face, splitting that face in two. It returns the new halfedge
// with vA at its tail; the twin borders the new face. Calling it with no
// eligible shared face is a contract violation and panics — use
// TryConnectVertices when the precondition is not known to hold.
func (m *Mesh) ConnectVertices(vA, vB Vertex) Halfedge {
	he := m.TryConnectVertices(vA, vB)
	if he.IsNull() {
		panic("mesh: ConnectVertices: vertices share no face they are non-adjacent in")
	}

	return he
}

// ConnectVerticesInFace is ConnectVertices when the shared face is
// already known; it skips the face search. Panics if the vertices are
// not connectable inside f.
func (m *Mesh) ConnectVerticesInFace(f Face, vA, vB Vertex) Halfedge {
	checkMesh(m, f.mesh, "face")
	checkMesh(m, vA.mesh, "vertex")
	checkMesh(m, vB.mesh, "vertex")

	heA, heB, ok := m.eligibleInFace(f.ind, vA.ind, vB.ind)
	if !ok {
		panic("mesh: ConnectVerticesInFace: vertices not connectable in face")
	}

	return Halfedge{m, m.connect(f.ind, heA, heB)}
}

// TryConnectVertices is ConnectVertices returning the null halfedge,
// with the mesh unmodified, when the vertices share no eligible face.
func (m *Mesh) TryConnectVertices(vA, vB Vertex) Halfedge {
	checkMesh(m, vA.mesh, "vertex")
	checkMesh(m, vB.mesh, "vertex")
	if vA == vB {
		return Halfedge{}
	}

	for f := range vA.AdjacentFaces() {
		if heA, heB, ok := m.eligibleInFace(f.ind, vA.ind, vB.ind); ok {
			return Halfedge{m, m.connect(f.ind, heA, heB)}
		}
	}

	return Halfedge{}
}

// CollapseEdge merges the endpoints of e into one vertex, removing the
// degenerate faces that result. The incident real faces must be
// triangles. Returns the surviving vertex, or the null vertex — with the
// mesh unmodified — when the collapse is topologically invalid: the link
// condition fails, an interior edge joins two boundary vertices, or the
// configuration would leave an edge with no face on either side.
// Complexity: O(degree of the endpoints).
func (m *Mesh) CollapseEdge(e Edge) Vertex {
	checkMesh(m, e.mesh, "edge")

	ha := eHalfedge(e.ind)
	hb := heTwin(ha)
	aInterior := m.heIsInterior(ha)
	bInterior := m.heIsInterior(hb)

	switch {
	case aInterior && bInterior:
		return m.collapseInteriorEdge(ha, hb)
	case aInterior:
		return m.collapseBoundaryEdge(ha, hb)
	case bInterior:
		return m.collapseBoundaryEdge(hb, ha)
	default:
		// A dangling edge with boundary on both sides.
		return Vertex{}
	}
}

// commonNeighbors returns the vertices adjacent to both iVA and iVB.
func (m *Mesh) commonNeighbors(iVA, iVB int) []int {
	inA := make(map[int]bool)
	for w := range (Vertex{m, iVA}).AdjacentVertices() {
		inA[w.ind] = true
	}
	var common []int
	for w := range (Vertex{m, iVB}).AdjacentVertices() {
		if inA[w.ind] {
			common = append(common, w.ind)
		}
	}

	return common
}

// faceContainsBoth reports whether raw face iF has both vertices.
func (m *Mesh) faceContainsBoth(iF, iVa, iVb int) bool {
	hasA, hasB := false, false
	for v := range (Face{m, iF}).AdjacentVertices() {
		if v.ind == iVa {
			hasA = true
		}
		if v.ind == iVb {
			hasB = true
		}
	}

	return hasA && hasB
}

func (m *Mesh) collapseInteriorEdge(ha, hb int) Vertex {
	fA := m.heFace[ha]
	fB := m.heFace[hb]

	ha2 := m.heNext[ha]
	ha3 := m.heNext[ha2]
	if m.heNext[ha3] != ha {
		return Vertex{}
	}
	hb2 := m.heNext[hb]
	hb3 := m.heNext[hb2]
	if m.heNext[hb3] != hb {
		return Vertex{}
	}

	vA := m.heVertex[ha]
	vB := m.heVertex[hb]
	vC := m.heVertex[ha3]
	vD := m.heVertex[hb3]
	if vC == vD {
		return Vertex{}
	}

	// An interior edge joining two boundary vertices would pinch the
	// surface at the merged vertex.
	if (Vertex{m, vA}).IsBoundary() && (Vertex{m, vB}).IsBoundary() {
		return Vertex{}
	}

	// Link condition, vertex part: the endpoints' common neighbors must
	// be exactly the two opposite vertices.
	common := m.commonNeighbors(vA, vB)
	if len(common) != 2 {
		return Vertex{}
	}
	for _, w := range common {
		if w != vC && w != vD {
			return Vertex{}
		}
	}

	// Link condition, edge part: no third face may span an endpoint and
	// both opposite vertices (fails on a tetrahedron, for instance).
	for _, iV := range [2]int{vA, vB} {
		for f := range (Vertex{m, iV}).AdjacentFaces() {
			if f.ind == fA || f.ind == fB {
				continue
			}
			if m.faceContainsBoth(f.ind, vC, vD) {
				return Vertex{}
			}
		}
	}

	ta2 := heTwin(ha2)
	ta3 := heTwin(ha3)
	tb2 := heTwin(hb2)
	tb3 := heTwin(hb3)

	// The merged edges must keep a real face on at least one side.
	if !m.heIsInterior(ta2) && !m.heIsInterior(ta3) {
		return Vertex{}
	}
	if !m.heIsInterior(tb2) && !m.heIsInterior(tb3) {
		return Vertex{}
	}

	// Re-point every halfedge leaving vB at vA.
	var outs []int
	for he := range (Vertex{m, vB}).OutgoingHalfedges() {
		outs = append(outs, he.ind)
	}
	for _, o := range outs {
		m.heVertex[o] = vA
	}

	// Face fA collapses to an edge: ha3 takes over ta2's position, fusing
	// edges (vB,vC) and (vC,vA) into one.
	fX := m.heFace[ta2]
	pX := m.prevHe(ta2)
	m.heNext[pX] = ha3
	m.heNext[ha3] = m.heNext[ta2]
	m.setHalfedgeFace(ha3, fX)
	if m.fHalfedge[fX] == ta2 {
		m.fHalfedge[fX] = ha3
	}

	// Face fB likewise: hb2 takes over tb3's position.
	fY := m.heFace[tb3]
	pY := m.prevHe(tb3)
	m.heNext[pY] = hb2
	m.heNext[hb2] = m.heNext[tb3]
	m.setHalfedgeFace(hb2, fY)
	if m.fHalfedge[fY] == tb3 {
		m.fHalfedge[fY] = hb2
	}

	m.vHalfedge[vA] = ta3
	m.vHalfedge[vC] = ha3
	m.vHalfedge[vD] = tb2

	m.deleteEdgePair(ha)
	m.deleteEdgePair(ha2)
	m.deleteEdgePair(hb3)
	m.deleteFace(fA)
	m.deleteFace(fB)
	m.deleteVertex(vB)

	return Vertex{m, vA}
}

// collapseBoundaryEdge collapses an edge on the boundary; ha is the
// interior halfedge, hb its exterior twin in a boundary loop.
func (m *Mesh) collapseBoundaryEdge(ha, hb int) Vertex {
	fA := m.heFace[ha]

	ha2 := m.heNext[ha]
	ha3 := m.heNext[ha2]
	if m.heNext[ha3] != ha {
		return Vertex{}
	}

	vA := m.heVertex[ha]
	vB := m.heVertex[hb]
	vC := m.heVertex[ha3]

	common := m.commonNeighbors(vA, vB)
	if len(common) != 1 || common[0] != vC {
		return Vertex{}
	}

	ta2 := heTwin(ha2)
	ta3 := heTwin(ha3)
	// An isolated triangle cannot collapse: the fused edge would have no
	// face on either side.
	if !m.heIsInterior(ta2) && !m.heIsInterior(ta3) {
		return Vertex{}
	}

	var outs []int
	for he := range (Vertex{m, vB}).OutgoingHalfedges() {
		outs = append(outs, he.ind)
	}

	// Remove hb from its loop first: ta2 may sit right before hb in the
	// same loop, and the fusion below reads ta2's next pointer.
	loop := m.heFace[hb]
	pb := m.prevHe(hb)
	nb := m.heNext[hb]
	m.heNext[pb] = nb
	if m.fHalfedge[loop] == hb {
		m.fHalfedge[loop] = nb
	}

	for _, o := range outs {
		m.heVertex[o] = vA
	}

	// fA collapses to an edge: ha3 takes over ta2's position.
	fX := m.heFace[ta2]
	pX := m.prevHe(ta2)
	m.heNext[pX] = ha3
	m.heNext[ha3] = m.heNext[ta2]
	m.setHalfedgeFace(ha3, fX)
	if m.fHalfedge[fX] == ta2 {
		m.fHalfedge[fX] = ha3
	}

	m.vHalfedge[vA] = ta3
	m.vHalfedge[vC] = ha3

	m.deleteEdgePair(ha)
	m.deleteEdgePair(ha2)
	m.deleteFace(fA)
	m.deleteVertex(vB)

	return Vertex{m, vA}
}

// RemoveFaceAlongBoundary deletes a real face that has exactly one
// boundary edge, merging the face into the adjacent hole. Returns false,
// with the mesh unmodified, if the face has zero or multiple boundary
// edges (or is itself a boundary loop). Complexity: O(degree).
func (m *Mesh) RemoveFaceAlongBoundary(f Face) bool {
	checkMesh(m, f.mesh, "face")
	if f.IsBoundaryLoop() {
		return false
	}

	boundarySide := invalidInd
	nBoundary := 0
	for he := range f.AdjacentHalfedges() {
		if !he.Twin().IsInterior() {
			boundarySide = he.ind
			nBoundary++
		}
	}
	if nBoundary != 1 {
		return false
	}

	ha := boundarySide
	hb := heTwin(ha)
	loop := m.heFace[hb]
	pb := m.prevHe(hb)
	nb := m.heNext[hb]

	// The face's other sides join the loop in place of hb; their chain
	// order already matches the loop direction.
	h1 := m.heNext[ha]
	hLast := m.prevHe(ha)
	for cur := h1; cur != ha; cur = m.heNext[cur] {
		m.setHalfedgeFace(cur, loop)
	}
	m.heNext[pb] = h1
	m.heNext[hLast] = nb
	if m.fHalfedge[loop] == hb {
		m.fHalfedge[loop] = h1
	}

	vA := m.heVertex[ha]
	vB := m.heVertex[h1]
	if m.vHalfedge[vA] == ha {
		m.vHalfedge[vA] = nb
	}
	if m.vHalfedge[vB] == hb {
		m.vHalfedge[vB] = h1
	}

	m.deleteEdgePair(ha)
	m.deleteFace(f.ind)

	return true
}

// Triangulate fan-triangulates a real face from its base vertex and
// returns all resulting sub-faces (the original handle is among them).
// Complexity: O(degree) connects, O(degree²) total walk.
func (m *Mesh) Triangulate(f Face) []Face {
	checkMesh(m, f.mesh, "face")
	if f.IsBoundaryLoop() {
		panic("mesh: Triangulate on a boundary loop")
	}

	var faces []Face
	v0 := m.heVertex[m.fHalfedge[f.ind]]
	for m.rawFaceDegree(f.ind) > 3 {
		cur := m.outgoingInFace(v0, f.ind)
		opp := m.heVertex[m.heNext[m.heNext[cur]]]
		hN := m.connect(f.ind, cur, m.outgoingInFace(opp, f.ind))
		faces = append(faces, Face{m, m.heFace[heTwin(hN)]})
	}
	faces = append(faces, f)

	return faces
}
