// Package linsolve provides dense linear solves for the small systems
// that show up in geometry processing: square LU solves, least-squares
// QR solves, and complex variants via the standard real embedding.
//
// All entry points validate their inputs up front — non-finite entries,
// shape mismatches and singular systems surface as sentinel errors, never
// as silently propagated NaNs. Built on gonum.org/v1/gonum/mat.
package linsolve
