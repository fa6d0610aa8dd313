// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"strconv"
)

// Vector is a point or direction in three-dimensional real space.
// It is a plain value; every operation returns a new Vector.
type Vector struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// Add returns a + b component-wise.
func Add(a, b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns a − b component-wise.
func Sub(a, b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns v with every component multiplied by s.
func Scale(v Vector, s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the scalar product a·b.
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed vector product a×b.
// Cross(a, b) == Scale(Cross(b, a), -1) for finite inputs.
func Cross(a, b Vector) Vector {
	return Vector{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Magnitude returns the Euclidean length of v.
func Magnitude(v Vector) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// String renders v as "(x, y, z)" using the shortest exact representation
// of each component.
func (v Vector) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, '(')
	buf = strconv.AppendFloat(buf, v.X, 'g', -1, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, v.Y, 'g', -1, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, v.Z, 'g', -1, 64)
	buf = append(buf, ')')

	return string(buf)
}
