package mesh

// Allocation grows buffers with amortized doubling and fires the expand
// callbacks before the allocating mutator returns. Freshly allocated
// slots are handed back unwired; the calling operator must wire them
// before it returns. Deletion tombstones in O(1) and leaves every other
// slot (and every outstanding handle) untouched; Compress reclaims.

func grow(buf []int, newCap int) []int {
	grown := make([]int, newCap)
	copy(grown, buf)
	for i := len(buf); i < newCap; i++ {
		grown[i] = invalidInd
	}

	return grown
}

// newVertex allocates a vertex slot. The slot's halfedge is unwired.
func (m *Mesh) newVertex() int {
	if m.nVerticesFillCount == len(m.vHalfedge) {
		newCap := 2 * len(m.vHalfedge)
		if newCap == 0 {
			newCap = 1
		}
		m.vHalfedge = grow(m.vHalfedge, newCap)
		m.callbacks.fireExpand(VertexKind, newCap)
	}

	iV := m.nVerticesFillCount
	m.nVerticesFillCount++
	m.nVerticesCount++
	m.canonical = false

	return iV
}

// newHalfedgePair allocates a twinned pair at consecutive slots and
// returns the even slot; the pair forms the new edge slot/2. Neither
// halfedge is wired.
func (m *Mesh) newHalfedgePair() int {
	if m.nHalfedgesFillCount+2 > len(m.heNext) {
		newCap := 2 * len(m.heNext)
		if newCap < 2 {
			newCap = 2
		}
		m.heNext = grow(m.heNext, newCap)
		m.heVertex = grow(m.heVertex, newCap)
		m.heFace = grow(m.heFace, newCap)
		m.callbacks.fireExpand(HalfedgeKind, newCap)
		m.callbacks.fireExpand(CornerKind, newCap)
		m.callbacks.fireExpand(EdgeKind, newCap/2)
	}

	iHe := m.nHalfedgesFillCount
	m.nHalfedgesFillCount += 2
	m.nHalfedgesCount += 2
	m.canonical = false

	return iHe
}

// newFace allocates a real face slot. Growing the shared face buffer
// relocates the boundary loops to the tail of the larger buffer; loop
// indices (counted from the back) are unchanged, so loop containers and
// handles are unaffected, but the raw heFace entries of exterior
// halfedges are rewritten.
func (m *Mesh) newFace() int {
	if m.nFacesFillCount+m.nBoundaryLoopsFillCount == len(m.fHalfedge) {
		oldCap := len(m.fHalfedge)
		newCap := 2 * oldCap
		if newCap == 0 {
			newCap = 1
		}

		grown := make([]int, newCap)
		for i := range grown {
			grown[i] = invalidInd
		}
		copy(grown, m.fHalfedge[:m.nFacesFillCount])
		for b := 0; b < m.nBoundaryLoopsFillCount; b++ {
			oldInd := oldCap - 1 - b
			newInd := newCap - 1 - b
			grown[newInd] = m.fHalfedge[oldInd]
			if grown[newInd] == invalidInd {
				continue
			}
			first := grown[newInd]
			he := first
			for {
				m.heFace[he] = newInd
				he = m.heNext[he]
				if he == first {
					break
				}
			}
		}
		m.fHalfedge = grown
		m.callbacks.fireExpand(FaceKind, newCap)
	}

	iF := m.nFacesFillCount
	m.nFacesFillCount++
	m.nFacesCount++
	m.canonical = false

	return iF
}

// == Tombstoning.

// deleteEdgePair tombstones both halfedges of the edge containing iHe.
// Interior bookkeeping is read before the slots are clobbered.
func (m *Mesh) deleteEdgePair(iHe int) {
	a := iHe &^ 1
	b := a | 1
	for _, h := range [2]int{a, b} {
		if m.heIsInterior(h) {
			m.nInteriorHalfedgesCount--
		}
		m.heNext[h] = invalidInd
		m.heVertex[h] = invalidInd
		m.heFace[h] = invalidInd
	}
	m.nHalfedgesCount -= 2
	m.compressed = false
	m.canonical = false
}

// deleteVertex tombstones a vertex slot.
func (m *Mesh) deleteVertex(iV int) {
	m.vHalfedge[iV] = invalidInd
	m.nVerticesCount--
	m.compressed = false
	m.canonical = false
}

// deleteFace tombstones a face slot, which may denote a boundary loop.
func (m *Mesh) deleteFace(iF int) {
	wasLoop := m.faceIsBoundaryLoop(iF)
	m.fHalfedge[iF] = invalidInd
	if wasLoop {
		m.nBoundaryLoopsCount--
	} else {
		m.nFacesCount--
	}
	m.compressed = false
	m.canonical = false
}
