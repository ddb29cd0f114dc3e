package geometry

import "math"

// DegenerateEpsilon is the cross-product magnitude below which a triangle
// is considered degenerate (collinear or coincident vertices). The same
// threshold is shared by the codec's validity checks and the measurement
// engine.
const DegenerateEpsilon = 1e-6

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the right-hand-rule normal for the triangle
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle.
// The result is float64 so that area sums over large meshes do not lose
// precision to single-precision rounding.
func (t Triangle) Area() float64 {
	return t.crossMagnitude() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float32 {
	return [3]float32{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float32 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// IsValid reports whether all vertices and the normal are finite
func (t Triangle) IsValid() bool {
	return t.V1.IsFinite() && t.V2.IsFinite() && t.V3.IsFinite() && t.Normal.IsFinite()
}

// IsDegenerate reports whether the triangle has near-zero area
func (t Triangle) IsDegenerate() bool {
	return t.crossMagnitude() < DegenerateEpsilon
}

func (t Triangle) crossMagnitude() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	cross := edge1.Cross(edge2)
	x := float64(cross.X)
	y := float64(cross.Y)
	z := float64(cross.Z)
	return math.Sqrt(x*x + y*y + z*z)
}
