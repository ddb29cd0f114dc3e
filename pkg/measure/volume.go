package measure

import (
	"context"
	"math"

	"github.com/philipparndt/stlcore/pkg/geometry"
	"github.com/philipparndt/stlcore/pkg/stl"
)

// VolumeResult is a volume measurement with a closure-derived confidence.
type VolumeResult struct {
	// Volume in cubic model units.
	Volume float64
	// Closed reports whether the mesh passed the watertightness check.
	Closed bool
	// Confidence is 1.0 for a closed mesh and 0.7 otherwise: the
	// divergence-theorem sum is only exact over a closed surface, but a
	// number is still reported for open meshes.
	Confidence float64
}

// Measurement converts the result into the tagged measurement form
func (r VolumeResult) Measurement() Measurement {
	return Measurement{
		Kind:       Volume,
		Value:      r.Volume,
		Unit:       "cubic units",
		Confidence: r.Confidence,
	}
}

// CalculateVolume computes the enclosed volume of a mesh via the
// divergence theorem: the sum of signed tetrahedron volumes from the
// origin to each valid, non-degenerate triangle. It fails with a
// ValidationError on a mesh with zero triangles.
func CalculateVolume(ctx context.Context, m *stl.Model) (VolumeResult, error) {
	if m.TriangleCount() == 0 {
		return VolumeResult{}, validationErrorf("mesh has no triangles")
	}

	closed, err := IsClosedMesh(ctx, m)
	if err != nil {
		return VolumeResult{}, err
	}

	sum := 0.0
	for _, triangle := range m.Triangles {
		if err := ctx.Err(); err != nil {
			return VolumeResult{}, &CancelledError{Op: "volume calculation", Err: err}
		}
		if !triangle.IsValid() || triangle.IsDegenerate() {
			continue
		}
		sum += signedTetrahedronVolume(triangle)
	}

	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return VolumeResult{}, &ComputationError{Op: "volume calculation", Msg: "volume sum is not finite"}
	}

	result := VolumeResult{
		Volume:     math.Abs(sum),
		Closed:     closed,
		Confidence: 0.7,
	}
	if closed {
		result.Confidence = 1.0
	}
	return result, nil
}

// signedTetrahedronVolume is dot(v1, cross(v2, v3)) / 6, the signed
// volume of the tetrahedron spanned by the triangle and the origin.
// Computed in float64: the scalar triple product cancels heavily and
// float32 accumulation would drift on large meshes.
func signedTetrahedronVolume(t geometry.Triangle) float64 {
	v1x, v1y, v1z := float64(t.V1.X), float64(t.V1.Y), float64(t.V1.Z)
	v2x, v2y, v2z := float64(t.V2.X), float64(t.V2.Y), float64(t.V2.Z)
	v3x, v3y, v3z := float64(t.V3.X), float64(t.V3.Y), float64(t.V3.Z)

	cx := v2y*v3z - v2z*v3y
	cy := v2z*v3x - v2x*v3z
	cz := v2x*v3y - v2y*v3x

	return (v1x*cx + v1y*cy + v1z*cz) / 6.0
}

// SurfaceAreaResult reports the summed area and how many triangles
// contributed to it.
type SurfaceAreaResult struct {
	Area          float64
	TriangleCount int
}

// Measurement converts the result into the tagged measurement form
func (r SurfaceAreaResult) Measurement() Measurement {
	return Measurement{
		Kind:       SurfaceArea,
		Value:      r.Area,
		Unit:       "square units",
		Confidence: 1.0,
	}
}

// CalculateSurfaceArea sums the area of all valid, non-degenerate
// triangles. Degenerate triangles contribute nothing and are not counted.
func CalculateSurfaceArea(ctx context.Context, m *stl.Model) (SurfaceAreaResult, error) {
	var result SurfaceAreaResult
	for _, triangle := range m.Triangles {
		if err := ctx.Err(); err != nil {
			return SurfaceAreaResult{}, &CancelledError{Op: "surface area calculation", Err: err}
		}
		if !triangle.IsValid() || triangle.IsDegenerate() {
			continue
		}
		result.Area += triangle.Area()
		result.TriangleCount++
	}
	return result, nil
}
