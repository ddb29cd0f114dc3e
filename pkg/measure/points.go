package measure

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/philipparndt/stlcore/pkg/geometry"
)

// points closer than this (squared distance) are treated as coincident
const coincidentEpsilon = 1e-6

// MeasureDistance measures the straight-line distance between two points.
// It fails with a ValidationError if either point is non-finite or the
// points coincide.
func MeasureDistance(p1, p2 geometry.Vector3) (Measurement, error) {
	if !p1.IsFinite() {
		return Measurement{}, validationErrorf("first point %s is not finite", FormatVector(p1))
	}
	if !p2.IsFinite() {
		return Measurement{}, validationErrorf("second point %s is not finite", FormatVector(p2))
	}

	dx := float64(p1.X) - float64(p2.X)
	dy := float64(p1.Y) - float64(p2.Y)
	dz := float64(p1.Z) - float64(p2.Z)
	distSq := dx*dx + dy*dy + dz*dz
	if distSq < coincidentEpsilon {
		return Measurement{}, validationErrorf("points coincide: %s and %s", FormatVector(p1), FormatVector(p2))
	}

	return Measurement{
		Kind:       Distance,
		Value:      math.Sqrt(distSq),
		Unit:       "units",
		Confidence: 1.0,
	}, nil
}

// MeasureAngle measures the angle, in degrees, between the rays
// vertex→p1 and vertex→p2. It fails with a ValidationError if any point
// is non-finite or either ray has near-zero length.
func MeasureAngle(vertex, p1, p2 geometry.Vector3) (Measurement, error) {
	if !vertex.IsFinite() || !p1.IsFinite() || !p2.IsFinite() {
		return Measurement{}, validationErrorf("angle points must be finite")
	}

	u := p1.Sub(vertex)
	w := p2.Sub(vertex)
	if float64(u.LengthSquared()) < coincidentEpsilon {
		return Measurement{}, validationErrorf("first point coincides with the vertex")
	}
	if float64(w.LengthSquared()) < coincidentEpsilon {
		return Measurement{}, validationErrorf("second point coincides with the vertex")
	}

	// clamp against rounding before acos
	cos := u.Normalize().Dot(w.Normalize())
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	radians := math32.Acos(cos)
	return Measurement{
		Kind:       Angle,
		Value:      float64(radians) * 180.0 / math.Pi,
		Unit:       "degrees",
		Confidence: 1.0,
	}, nil
}
