package linsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

func checkFinite(a mat.Matrix, b []float64) error {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: a[%d,%d]", ErrNonFinite, i, j)
			}
		}
	}
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: b[%d]", ErrNonFinite, i)
		}
	}

	return nil
}

// SolveSquare solves the square system a·x = b by LU factorization.
func SolveSquare(a *mat.Dense, b []float64) ([]float64, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	if len(b) != r {
		return nil, fmt.Errorf("%w: matrix %dx%d, rhs %d", ErrShapeMismatch, r, c, len(b))
	}
	if err := checkFinite(a, b); err != nil {
		return nil, err
	}

	var lu mat.LU
	lu.Factorize(a)

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(r, b)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	out := make([]float64, r)
	copy(out, x.RawVector().Data)

	return out, nil
}

// SolveLeastSquares solves min ‖a·x - b‖₂ for an m×n system with m >= n,
// by QR factorization.
func SolveLeastSquares(a *mat.Dense, b []float64) ([]float64, error) {
	r, c := a.Dims()
	if r < c {
		return nil, fmt.Errorf("%w: underdetermined %dx%d system", ErrShapeMismatch, r, c)
	}
	if len(b) != r {
		return nil, fmt.Errorf("%w: matrix %dx%d, rhs %d", ErrShapeMismatch, r, c, len(b))
	}
	if err := checkFinite(a, b); err != nil {
		return nil, err
	}

	var qr mat.QR
	qr.Factorize(a)

	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, mat.NewVecDense(r, b)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	out := make([]float64, c)
	copy(out, x.RawVector().Data)

	return out, nil
}

// SolveSquareComplex solves the square complex system a·x = b through the
// real embedding [[Re -Im], [Im Re]] of the system, factored once by LU.
func SolveSquareComplex(a *mat.CDense, b []complex128) ([]complex128, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	if len(b) != r {
		return nil, fmt.Errorf("%w: matrix %dx%d, rhs %d", ErrShapeMismatch, r, c, len(b))
	}

	n := r
	emb := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			emb.Set(i, j, real(v))
			emb.Set(i, j+n, -imag(v))
			emb.Set(i+n, j, imag(v))
			emb.Set(i+n, j+n, real(v))
		}
	}
	rhs := make([]float64, 2*n)
	for i, v := range b {
		rhs[i] = real(v)
		rhs[i+n] = imag(v)
	}

	sol, err := SolveSquare(emb, rhs)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(sol[i], sol[i+n])
	}

	return out, nil
}
