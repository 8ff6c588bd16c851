// Package mesh implements a mutable halfedge connectivity structure for
// manifold, orientable polygonal surfaces with boundary.
//
// The structure is pointer-free: all topology lives in five flat index
// arrays, and element handles are (mesh, slot) value pairs. Twins are
// implicit — halfedges are allocated in pairs at consecutive slots, so
//
//	twin(he)  = he ^ 1
//	edge(he)  = he / 2
//	halfedge(e) = 2 * e
//
// is an invariant of the encoding, not an implementation detail.
// Boundary loops are pseudo-faces stored at the tail of the face index
// space, numbered backward from the end of the buffer.
//
// What the package provides:
//
//   - Construction from a polygon soup (0-based vertex indices, CCW
//     winding), inferring boundary loops and rejecting non-manifold input
//   - Element handles with full navigation (Twin/Next/Vertex/Edge/Face)
//     and range iteration via iter.Seq, skipping tombstoned slots
//   - Local surgery: Flip, InsertVertexAlongEdge, SplitEdge, InsertVertex,
//     ConnectVertices, CollapseEdge, RemoveFaceAlongBoundary, Triangulate
//   - Two-phase deletion: operators tombstone in O(1); Compress reclaims
//     slots and Canonicalize additionally restores fresh-construction order
//   - An observer registry (expand / permute / mesh-deleted events) that
//     keeps per-element containers and dynamic handles valid across
//     structural edits
//   - Generic per-element containers (VertexData[T], EdgeData[T], ...)
//     with dense-vector conversion through an optional sparse indexer
//
// Failure semantics:
//
//   - Malformed polygon soup is rejected at construction with a sentinel
//     error (ErrNonManifoldEdge, ErrInconsistentWinding, ...); no partial
//     mesh is ever exposed.
//   - Illegal local mutations (flipping a boundary edge, collapsing an
//     edge whose link condition fails, ...) return a null handle or false
//     and leave the mesh unmodified. Callers must check the return value.
//   - Programming-contract violations — ConnectVertices with no eligible
//     shared face, indexing a container with a handle from another mesh,
//     out-of-range slots — panic. ValidateConnectivity returns a
//     descriptive error when the structure itself has been corrupted.
//
// Concurrency: none. The mesh is a single-threaded, synchronous data
// structure; concurrent mutation is not supported and no locking is
// performed. Mutating the mesh while iterating one of its ranges is
// undefined behavior — finish (or abandon) the iteration first.
//
// Handle validity: plain handles stay valid across all mutations except
// Compress/Canonicalize, which relocate slots. Dynamic handles
// (DynamicVertex, ...) subscribe to the permute callbacks and stay valid
// across compaction too, at the cost of a Release() obligation.
package mesh
