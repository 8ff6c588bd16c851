// Package lvlmesh is an in-memory toolkit for polygonal surface meshes:
// halfedge connectivity, local surgery, and lazily derived geometry.
//
// 🚀 What is lvlmesh?
//
//	A compact, index-based halfedge mesh library built around flat slot
//	arrays rather than pointer webs:
//		• mesh/     — connectivity kernel: construction from polygon soups,
//		  handles & iterators, surgery operators (flip, split, collapse,
//		  connect, triangulate…), per-element generic containers, an
//		  observer registry, Compress/Canonicalize
//		• geom/     — geometry quantities over vertex positions, evaluated
//		  lazily through a dependency graph: lengths, areas, angles,
//		  normals, cotan weights, tangent spaces
//		• vec/      — a minimal float64 Vector3 value type
//		• linsolve/ — dense LU / QR solves (real & complex) on gonum
//
// ✨ Why choose lvlmesh?
//
//   - Cache-friendly – five int arrays carry the whole topology; twin,
//     edge and canonical halfedge are pure index arithmetic
//   - Honest failure semantics – recoverable preconditions return null
//     handles, malformed input returns sentinel errors, contract
//     violations panic
//   - Pay-for-what-you-use geometry – quantities are computed on Require
//     and released by the returned closure
//
// lvlmesh is deliberately single-threaded: a mesh and its geometry must
// be confined to one goroutine at a time.
package lvlmesh
