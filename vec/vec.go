package vec

import "math"

// Vector3 is a three-dimensional vector (or point) with float64 components.
type Vector3 struct {
	X, Y, Z float64
}

// Zero is the zero vector.
var Zero = Vector3{0, 0, 0}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3 { return Vector3{x, y, z} }

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Neg returns -v.
func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Scale returns s*v.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{s * v.X, s * v.Y, s * v.Z} }

// Div returns v/s.
func (v Vector3) Div(s float64) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }

// Dot returns the scalar product v·w.
func (v Vector3) Dot(w Vector3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the vector product v×w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length |v|.
func (v Vector3) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Norm2 returns the squared length |v|².
func (v Vector3) Norm2() float64 { return v.Dot(v) }

// Unit returns v normalized to unit length. The result is undefined for the
// zero vector (components become NaN), mirroring the underlying division.
func (v Vector3) Unit() Vector3 { return v.Div(v.Norm()) }

// Angle returns the unsigned angle between v and w in [0, π].
// The inputs need not be normalized.
func (v Vector3) Angle(w Vector3) float64 {
	q := v.Unit().Dot(w.Unit())
	q = math.Max(-1, math.Min(1, q))

	return math.Acos(q)
}

// RemoveComponent returns v with its component along the unit direction
// unitDir projected out, leaving the part of v orthogonal to unitDir.
func (v Vector3) RemoveComponent(unitDir Vector3) Vector3 {
	return v.Sub(unitDir.Scale(v.Dot(unitDir)))
}

// RotateAround rotates v by theta radians about the (not necessarily unit)
// axis, following the right-hand rule. The component of v parallel to the
// axis is preserved exactly.
func (v Vector3) RotateAround(axis Vector3, theta float64) Vector3 {
	axisN := axis.Unit()
	parallel := axisN.Scale(v.Dot(axisN))
	tangent := v.Sub(parallel)

	if tangent.Norm2() == 0 {
		return parallel
	}

	basisX := tangent.Unit()
	basisY := axisN.Cross(basisX)
	mag := tangent.Norm()

	rotated := basisX.Scale(mag * math.Cos(theta)).Add(basisY.Scale(mag * math.Sin(theta)))

	return rotated.Add(parallel)
}

// IsFinite reports whether all three components are finite (no NaN, no ±Inf).
func (v Vector3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
