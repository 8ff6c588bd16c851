// Package vec provides the primitive 3-vector value type used throughout
// lvlmesh: a plain float64 triple with the usual arithmetic plus the few
// geometric operations the geometry layer needs (Dot, Cross, Unit, Angle,
// RotateAround, RemoveComponent).
//
// Vector3 is a value type: every operation returns a new vector, nothing is
// mutated in place, and no method takes a pointer receiver. All operations
// are O(1).
package vec
