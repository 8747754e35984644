package curvefit

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec returns the vector ⟨x, y, z⟩.
func Vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// component returns a pointer to the i-th component of v, in x, y, z order.
func component(v *r3.Vec, i int) *float64 {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	default:
		panic("component index out of range")
	}
}

// lerp linearly interpolates between two vectors.
func lerp(a, b r3.Vec, t float64) r3.Vec {
	// a + t * (b-a)
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// almostEqual reports whether every component of a and b differs by no more
// than tol.
func almostEqual(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// formatVec formats v as "x, y, z" with the shortest representation of each
// component.
func formatVec(v r3.Vec) string {
	b := make([]byte, 0, 48)
	b = strconv.AppendFloat(b, v.X, 'g', -1, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, v.Y, 'g', -1, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, v.Z, 'g', -1, 64)
	return string(b)
}
