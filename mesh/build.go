package mesh

import "fmt"

// MeshOption configures construction behavior.
type MeshOption func(*buildConfig)

type buildConfig struct {
	validate bool
}

// WithValidation runs ValidateConnectivity on the freshly built mesh and
// fails construction if it reports a problem. Useful in tests and while
// developing new mutation operators; the check costs O(n).
func WithValidation() MeshOption {
	return func(c *buildConfig) { c.validate = true }
}

// NewMesh builds a halfedge mesh from a polygon soup: one slice of
// 0-based vertex indices per face, wound counter-clockwise. Boundary
// loops are inferred. The soup must describe a manifold, orientable
// surface with boundary; malformed input is rejected with a sentinel
// error and no partial mesh is exposed.
//
// Complexity: O(sum of face degrees), with hashing for edge pairing.
func NewMesh(polygons [][]int, opts ...MeshOption) (*Mesh, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(polygons) == 0 {
		return nil, ErrEmptySoup
	}

	// Pass 0: validate polygons and size the vertex buffer.
	nV := 0
	for iF, poly := range polygons {
		if len(poly) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d side(s)", ErrDegenerateFace, iF, len(poly))
		}
		for j, v := range poly {
			if v < 0 {
				return nil, fmt.Errorf("%w: face %d side %d", ErrVertexIndexOutOfRange, iF, j)
			}
			if v >= nV {
				nV = v + 1
			}
			for _, w := range poly[:j] {
				if v == w {
					return nil, fmt.Errorf("%w: face %d repeats vertex %d", ErrRepeatedVertexInFace, iF, v)
				}
			}
		}
	}
	nF := len(polygons)

	vHalfedge := make([]int, nV)
	for i := range vHalfedge {
		vHalfedge[i] = invalidInd
	}
	fHalfedge := make([]int, nF)

	var heNext, heVertex, heFace []int
	allocPair := func() int {
		i := len(heNext)
		heNext = append(heNext, invalidInd, invalidInd)
		heVertex = append(heVertex, invalidInd, invalidInd)
		heFace = append(heFace, invalidInd, invalidInd)

		return i
	}

	// Pass 1: create interior halfedges, pairing twins through a map from
	// the unordered endpoint pair to the even slot claimed first.
	type pairKey struct{ lo, hi int }
	edgeSlot := make(map[pairKey]int)
	nInterior := 0
	var sides []int
	for iF, poly := range polygons {
		d := len(poly)
		sides = sides[:0]
		for j := 0; j < d; j++ {
			a, b := poly[j], poly[(j+1)%d]
			key := pairKey{a, b}
			if key.lo > key.hi {
				key.lo, key.hi = key.hi, key.lo
			}

			var he int
			if s, ok := edgeSlot[key]; !ok {
				he = allocPair()
				edgeSlot[key] = he
			} else {
				t := heTwin(s)
				if heVertex[t] != invalidInd {
					return nil, fmt.Errorf("%w: edge (%d,%d)", ErrNonManifoldEdge, key.lo, key.hi)
				}
				if heVertex[s] == a {
					return nil, fmt.Errorf("%w: oriented side (%d,%d) appears twice", ErrInconsistentWinding, a, b)
				}
				he = t
			}

			heVertex[he] = a
			heFace[he] = iF
			vHalfedge[a] = he
			sides = append(sides, he)
			nInterior++
		}
		for j := 0; j < d; j++ {
			heNext[sides[j]] = sides[(j+1)%d]
		}
		fHalfedge[iF] = sides[0]
	}

	for v, he := range vHalfedge {
		if he == invalidInd {
			return nil, fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, v)
		}
	}

	// Pass 2: wire boundary loops. Unclaimed twin slots are the exterior
	// halfedges; walk each hole, assigning vertices and next pointers.
	// Loop membership is encoded as -2-loop until the face buffer is
	// sized, because loop face indices depend on the final capacity.
	var loopFirst []int
	for i := range heNext {
		if heVertex[i] != invalidInd || heFace[i] != invalidInd {
			continue
		}

		loop := len(loopFirst)
		loopFirst = append(loopFirst, i)
		cur := i
		for {
			heFace[cur] = -2 - loop
			heVertex[cur] = heVertex[heNext[heTwin(cur)]]

			// Rotate around the tip of cur to the next exterior halfedge.
			he := heTwin(cur)
			for {
				p := he
				for heNext[p] != he {
					p = heNext[p]
				}
				t := heTwin(p)
				if heFace[t] < 0 {
					he = t

					break
				}
				he = t
			}
			heNext[cur] = he
			if he == i {
				break
			}
			cur = he
		}
	}
	nBL := len(loopFirst)

	// Size the face buffer for faces plus loops; loop b sits at index
	// cap-1-b, filling backward from the end.
	faceCap := nF + nBL
	fBuf := make([]int, faceCap)
	copy(fBuf, fHalfedge)
	for b := 0; b < nBL; b++ {
		fBuf[faceCap-1-b] = loopFirst[b]
	}
	for i, f := range heFace {
		if f <= -2 {
			heFace[i] = faceCap - 1 - (-2 - f)
		}
	}

	m := &Mesh{
		heNext:    heNext,
		heVertex:  heVertex,
		heFace:    heFace,
		vHalfedge: vHalfedge,
		fHalfedge: fBuf,

		nHalfedgesCount:         len(heNext),
		nInteriorHalfedgesCount: nInterior,
		nVerticesCount:          nV,
		nFacesCount:             nF,
		nBoundaryLoopsCount:     nBL,

		nVerticesFillCount:      nV,
		nHalfedgesFillCount:     len(heNext),
		nFacesFillCount:         nF,
		nBoundaryLoopsFillCount: nBL,

		compressed: true,
		canonical:  true,
	}

	// Pass 3: manifold-vertex check. The outgoing orbit from vHalfedge[v]
	// must reach every halfedge whose tail is v; a short orbit means the
	// star of v is not a single fan.
	outCount := make([]int, nV)
	for _, v := range heVertex {
		outCount[v]++
	}
	for iV := 0; iV < nV; iV++ {
		orbit := 0
		first := vHalfedge[iV]
		he := first
		for {
			orbit++
			if orbit > outCount[iV] {
				break
			}
			he = heNext[heTwin(he)]
			if he == first {
				break
			}
		}
		if orbit != outCount[iV] {
			return nil, fmt.Errorf("%w: vertex %d", ErrNonManifoldVertex, iV)
		}
	}

	if cfg.validate {
		if err := m.ValidateConnectivity(); err != nil {
			return nil, err
		}
	}

	return m, nil
}
