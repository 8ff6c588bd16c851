// Package geom derives geometric quantities from a halfedge mesh and a
// vertex position container, with lazy, dependency-aware evaluation.
//
// A Geometry owns one backing container per quantity (edge lengths, face
// areas, corner angles, normals, cotan weights, tangent bases, ...) and a
// static dependency graph between them. Nothing is computed up front:
// call RequireEdgeLengths (or any other RequireX) and the quantity plus
// its upstream dependencies are evaluated bottom-up, memoized, and held
// until released. Each RequireX returns a release function that balances
// the acquisition; when a quantity's require count drops to zero its
// values are cleared. Releasing twice is a no-op.
//
//   - Evaluation is idempotent: a second RequireX is O(1).
//   - Requiring a quantity never recomputes an already evaluated one.
//   - RefreshQuantities force-recomputes everything currently evaluated.
//
// Sharp edge: writing through VertexPositions does NOT invalidate
// anything. Evaluated quantities keep their old values until
// RefreshQuantities is called (or the quantity is fully released and
// required again). This keeps position edits O(1) and leaves the
// recompute schedule to the caller; it also means a careless caller can
// read stale data. See RefreshQuantities.
//
// All angle quantities, cotan weights and tangent-space vectors assume a
// triangular mesh, matching their definitions; lengths, areas and
// normals are meaningful on general polygonal meshes.
//
// Geometry is not safe for concurrent use.
package geom
