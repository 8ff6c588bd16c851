package mesh

import "errors"

var (
	// ErrEmptySoup indicates the polygon soup has no faces.
	ErrEmptySoup = errors.New("mesh: polygon soup is empty")
	// ErrDegenerateFace indicates a polygon with fewer than three sides.
	ErrDegenerateFace = errors.New("mesh: face has fewer than three sides")
	// ErrVertexIndexOutOfRange indicates a negative vertex index in the soup.
	ErrVertexIndexOutOfRange = errors.New("mesh: negative vertex index in polygon soup")
	// ErrRepeatedVertexInFace indicates a polygon that lists the same vertex twice.
	ErrRepeatedVertexInFace = errors.New("mesh: face repeats a vertex")
	// ErrNonManifoldEdge indicates more than two faces share an edge.
	ErrNonManifoldEdge = errors.New("mesh: non-manifold edge (more than two incident faces)")
	// ErrInconsistentWinding indicates the same oriented side appears twice,
	// which happens when two neighboring faces disagree on winding.
	ErrInconsistentWinding = errors.New("mesh: inconsistent face winding")
	// ErrNonManifoldVertex indicates a vertex whose incident faces do not form
	// a single fan (disk or half-disk).
	ErrNonManifoldVertex = errors.New("mesh: non-manifold vertex")
	// ErrIsolatedVertex indicates a soup vertex not referenced by any face.
	ErrIsolatedVertex = errors.New("mesh: isolated vertex (no incident face)")

	// ErrInvalidConnectivity is wrapped by every failure that
	// ValidateConnectivity reports.
	ErrInvalidConnectivity = errors.New("mesh: invalid connectivity")
)
