package mesh

// Compaction rebuilds the connectivity arrays without tombstones and
// shrinks every buffer to its live count. Raw indices change; containers
// and dynamic handles follow along through the permute callbacks, but
// plain handles held across a compaction are invalidated.

// Compress compacts all buffers, preserving enumeration order of the
// surviving elements and the even/odd pairing of each halfedge pair.
// Permute callbacks fire once per element kind with the permutation p,
// new[i] = old[p[i]], sized to the new capacity. Complexity: O(n).
func (m *Mesh) Compress() {
	m.compact(false)
}

// Canonicalize compacts the buffers and additionally reorders halfedges
// and edges into the order a fresh NewMesh(m.FaceVertexList()) would
// produce, so the mesh round-trips through a polygon soup index-for-index.
// An edge's canonical halfedge may swap direction in the process.
// Complexity: O(n).
func (m *Mesh) Canonicalize() {
	m.compact(true)
	m.canonical = true
}

func (m *Mesh) compact(canonicalOrder bool) {
	oldHeCap := len(m.heNext)
	oldFCap := len(m.fHalfedge)

	// Vertices: live slots keep their relative order.
	vOldToNew := make([]int, m.nVerticesFillCount)
	pV := make([]int, 0, m.nVerticesCount)
	for iV := 0; iV < m.nVerticesFillCount; iV++ {
		if m.vertexIsDead(iV) {
			vOldToNew[iV] = invalidInd

			continue
		}
		vOldToNew[iV] = len(pV)
		pV = append(pV, iV)
	}

	// Faces first (halfedge canonical order depends on the face order).
	// Live real faces compact to a dense prefix; live loops keep their
	// loop order and re-pack against the tail of the shrunk buffer.
	newFCap := m.nFacesCount + m.nBoundaryLoopsCount
	fOldToNew := make([]int, oldFCap)
	pF := make([]int, newFCap)
	pBL := make([]int, 0, m.nBoundaryLoopsCount)
	nf := 0
	for iF := 0; iF < oldFCap; iF++ {
		fOldToNew[iF] = invalidInd
	}
	for iF := 0; iF < m.nFacesFillCount; iF++ {
		if m.faceIsDead(iF) {
			continue
		}
		fOldToNew[iF] = nf
		pF[nf] = iF
		nf++
	}
	for b := 0; b < m.nBoundaryLoopsFillCount; b++ {
		oldInd := m.boundaryLoopIndToFaceInd(b)
		if m.faceIsDead(oldInd) {
			continue
		}
		newInd := newFCap - 1 - len(pBL)
		fOldToNew[oldInd] = newInd
		pF[newInd] = oldInd
		pBL = append(pBL, b)
	}

	// Halfedges. Pairs die together, so pairs can be relocated whole. In
	// canonical order the pair slots are instead claimed by walking the
	// compacted faces in order, the way construction from a soup claims
	// them; the first side encountered takes the even slot.
	heOldToNew := make([]int, oldHeCap)
	for i := range heOldToNew {
		heOldToNew[i] = invalidInd
	}
	nhe := 0
	if canonicalOrder {
		for _, iF := range pF[:m.nFacesCount] {
			first := m.fHalfedge[iF]
			he := first
			for {
				if heOldToNew[he] == invalidInd {
					heOldToNew[he] = nhe
					heOldToNew[heTwin(he)] = nhe + 1
					nhe += 2
				}
				he = m.heNext[he]
				if he == first {
					break
				}
			}
		}
	} else {
		for a := 0; a < m.nHalfedgesFillCount; a += 2 {
			if m.halfedgeIsDead(a) {
				continue
			}
			heOldToNew[a] = nhe
			heOldToNew[a+1] = nhe + 1
			nhe += 2
		}
	}
	pHe := make([]int, nhe)
	for old, n := range heOldToNew {
		if n != invalidInd {
			pHe[n] = old
		}
	}
	pE := make([]int, nhe/2)
	for iE := range pE {
		pE[iE] = heEdge(pHe[eHalfedge(iE)])
	}

	// Rebuild the arrays under the new numbering.
	heNext := make([]int, nhe)
	heVertex := make([]int, nhe)
	heFace := make([]int, nhe)
	for n, old := range pHe {
		heNext[n] = heOldToNew[m.heNext[old]]
		heVertex[n] = vOldToNew[m.heVertex[old]]
		heFace[n] = fOldToNew[m.heFace[old]]
	}
	vHalfedge := make([]int, len(pV))
	for n, old := range pV {
		vHalfedge[n] = heOldToNew[m.vHalfedge[old]]
	}
	fHalfedge := make([]int, newFCap)
	for n, old := range pF {
		fHalfedge[n] = heOldToNew[m.fHalfedge[old]]
	}

	m.heNext = heNext
	m.heVertex = heVertex
	m.heFace = heFace
	m.vHalfedge = vHalfedge
	m.fHalfedge = fHalfedge

	m.nVerticesFillCount = len(pV)
	m.nHalfedgesFillCount = nhe
	m.nFacesFillCount = m.nFacesCount
	m.nBoundaryLoopsFillCount = len(pBL)
	m.compressed = true

	m.callbacks.firePermute(VertexKind, pV)
	m.callbacks.firePermute(HalfedgeKind, pHe)
	m.callbacks.firePermute(CornerKind, pHe)
	m.callbacks.firePermute(EdgeKind, pE)
	m.callbacks.firePermute(FaceKind, pF)
	m.callbacks.firePermute(BoundaryLoopKind, pBL)
}
