package mesh

import "fmt"

// ValidateConnectivity runs an exhaustive consistency check over the
// connectivity arrays and returns an error wrapping ErrInvalidConnectivity
// describing the first problem found, or nil. Intended for tests and for
// auditing new mutation operators; it costs O(n) and touches every slot.
func (m *Mesh) ValidateConnectivity() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConnectivity, fmt.Sprintf(format, args...))
	}

	// Counts must agree with a direct scan of the live slots.
	nV, nHe, nInt, nF, nBL := 0, 0, 0, 0, 0
	for iV := 0; iV < m.nVerticesFillCount; iV++ {
		if !m.vertexIsDead(iV) {
			nV++
		}
	}
	for iHe := 0; iHe < m.nHalfedgesFillCount; iHe++ {
		if m.halfedgeIsDead(iHe) {
			continue
		}
		nHe++
		if m.heIsInterior(iHe) {
			nInt++
		}
	}
	for iF := 0; iF < m.nFacesFillCount; iF++ {
		if !m.faceIsDead(iF) {
			nF++
		}
	}
	for b := 0; b < m.nBoundaryLoopsFillCount; b++ {
		if !m.faceIsDead(m.boundaryLoopIndToFaceInd(b)) {
			nBL++
		}
	}
	if nV != m.nVerticesCount {
		return fail("vertex count %d, scan found %d", m.nVerticesCount, nV)
	}
	if nHe != m.nHalfedgesCount {
		return fail("halfedge count %d, scan found %d", m.nHalfedgesCount, nHe)
	}
	if nInt != m.nInteriorHalfedgesCount {
		return fail("interior halfedge count %d, scan found %d", m.nInteriorHalfedgesCount, nInt)
	}
	if nF != m.nFacesCount {
		return fail("face count %d, scan found %d", m.nFacesCount, nF)
	}
	if nBL != m.nBoundaryLoopsCount {
		return fail("boundary loop count %d, scan found %d", m.nBoundaryLoopsCount, nBL)
	}
	if m.nHalfedgesFillCount%2 != 0 {
		return fail("odd halfedge fill count %d", m.nHalfedgesFillCount)
	}

	liveHe := func(iHe int) bool {
		return iHe >= 0 && iHe < m.nHalfedgesFillCount && !m.halfedgeIsDead(iHe)
	}
	liveV := func(iV int) bool {
		return iV >= 0 && iV < m.nVerticesFillCount && !m.vertexIsDead(iV)
	}
	liveF := func(iF int) bool {
		return iF >= 0 && iF < len(m.fHalfedge) && !m.faceIsDead(iF)
	}

	// Halfedge pointers must land on live elements, twins must die in
	// pairs, and an edge needs a real face on at least one side.
	for iHe := 0; iHe < m.nHalfedgesFillCount; iHe++ {
		if m.halfedgeIsDead(iHe) {
			if !m.halfedgeIsDead(heTwin(iHe)) {
				return fail("halfedge %d dead but twin alive", iHe)
			}

			continue
		}
		if !liveHe(m.heNext[iHe]) {
			return fail("halfedge %d has invalid next %d", iHe, m.heNext[iHe])
		}
		if !liveV(m.heVertex[iHe]) {
			return fail("halfedge %d has invalid vertex %d", iHe, m.heVertex[iHe])
		}
		if !liveF(m.heFace[iHe]) {
			return fail("halfedge %d has invalid face %d", iHe, m.heFace[iHe])
		}
		if !m.heIsInterior(iHe) && !m.heIsInterior(heTwin(iHe)) {
			return fail("edge %d has boundary loops on both sides", heEdge(iHe))
		}
	}

	// Tail of next must equal tip: tail(next(he)) == tail(twin(he)).
	for iHe := 0; iHe < m.nHalfedgesFillCount; iHe++ {
		if m.halfedgeIsDead(iHe) {
			continue
		}
		if m.heVertex[m.heNext[iHe]] != m.heVertex[heTwin(iHe)] {
			return fail("halfedge %d: next starts at vertex %d, tip is %d",
				iHe, m.heVertex[m.heNext[iHe]], m.heVertex[heTwin(iHe)])
		}
	}

	// Every face cycle must be finite, consistent in its face field, and
	// cover each of its halfedges exactly once across all faces.
	seen := make([]bool, m.nHalfedgesFillCount)
	checkCycle := func(iF int) error {
		first := m.fHalfedge[iF]
		if !liveHe(first) {
			return fail("face %d has invalid halfedge %d", iF, first)
		}
		he := first
		for steps := 0; ; steps++ {
			if steps > m.nHalfedgesFillCount {
				return fail("face %d cycle does not close", iF)
			}
			if m.heFace[he] != iF {
				return fail("halfedge %d in cycle of face %d but assigned to %d", he, iF, m.heFace[he])
			}
			if seen[he] {
				return fail("halfedge %d appears in two face cycles", he)
			}
			seen[he] = true
			he = m.heNext[he]
			if he == first {
				return nil
			}
		}
	}
	for iF := 0; iF < m.nFacesFillCount; iF++ {
		if m.faceIsDead(iF) {
			continue
		}
		if err := checkCycle(iF); err != nil {
			return err
		}
	}
	for b := 0; b < m.nBoundaryLoopsFillCount; b++ {
		iF := m.boundaryLoopIndToFaceInd(b)
		if m.faceIsDead(iF) {
			continue
		}
		if err := checkCycle(iF); err != nil {
			return err
		}
	}
	for iHe := 0; iHe < m.nHalfedgesFillCount; iHe++ {
		if !m.halfedgeIsDead(iHe) && !seen[iHe] {
			return fail("halfedge %d belongs to no face cycle", iHe)
		}
	}

	// Vertex orbits must be single fans covering every outgoing halfedge.
	outCount := make([]int, m.nVerticesFillCount)
	for iHe := 0; iHe < m.nHalfedgesFillCount; iHe++ {
		if !m.halfedgeIsDead(iHe) {
			outCount[m.heVertex[iHe]]++
		}
	}
	for iV := 0; iV < m.nVerticesFillCount; iV++ {
		if m.vertexIsDead(iV) {
			continue
		}
		first := m.vHalfedge[iV]
		if !liveHe(first) {
			return fail("vertex %d has invalid halfedge %d", iV, first)
		}
		if m.heVertex[first] != iV {
			return fail("vertex %d points at halfedge %d with tail %d", iV, first, m.heVertex[first])
		}
		orbit := 0
		he := first
		for {
			orbit++
			if orbit > outCount[iV] {
				break
			}
			he = m.heNext[heTwin(he)]
			if he == first {
				break
			}
		}
		if orbit != outCount[iV] {
			return fail("vertex %d orbit covers %d of %d outgoing halfedges", iV, orbit, outCount[iV])
		}
	}

	return nil
}
