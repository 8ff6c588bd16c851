package linsolve

import "errors"

var (
	// ErrNonFinite is returned when the system or right-hand side contains
	// a NaN or infinite entry.
	ErrNonFinite = errors.New("linsolve: non-finite entry in input")

	// ErrNotSquare is returned by the square solvers for a rectangular system.
	ErrNotSquare = errors.New("linsolve: matrix is not square")

	// ErrShapeMismatch is returned when the right-hand side length does not
	// match the matrix, or a least-squares system is underdetermined.
	ErrShapeMismatch = errors.New("linsolve: dimension mismatch")

	// ErrSingular is returned when factorization or the solve itself fails
	// on a singular (or numerically singular) system.
	ErrSingular = errors.New("linsolve: singular system")
)
