package measure

import (
	"context"

	"github.com/philipparndt/stlcore/pkg/geometry"
	"github.com/philipparndt/stlcore/pkg/stl"
)

// CentroidMethod selects how the centroid is weighted.
type CentroidMethod int

const (
	// CentroidGeometric weights each triangle's centroid by its area.
	// Appropriate for surface meshes and open shells.
	CentroidGeometric CentroidMethod = iota
	// CentroidVolumetric weights each origin-tetrahedron centroid by its
	// signed volume. Appropriate for closed solids.
	CentroidVolumetric
)

// String returns the method name
func (c CentroidMethod) String() string {
	switch c {
	case CentroidGeometric:
		return "geometric"
	case CentroidVolumetric:
		return "volumetric"
	default:
		return "unknown"
	}
}

// CalculateCentroid computes the centroid of a mesh.
//
// The geometric method returns the area-weighted mean of triangle
// centroids. The volumetric method sums signed origin-tetrahedron
// centroids weighted by signed tetrahedron volume; when the total signed
// volume is exactly zero (a flat or self-cancelling mesh) it returns the
// zero vector rather than failing. Fails with a ValidationError on a
// mesh with zero triangles.
func CalculateCentroid(ctx context.Context, m *stl.Model, method CentroidMethod) (geometry.Vector3, error) {
	if m.TriangleCount() == 0 {
		return geometry.Vector3{}, validationErrorf("mesh has no triangles")
	}
	if method != CentroidGeometric && method != CentroidVolumetric {
		return geometry.Vector3{}, validationErrorf("unknown centroid method %d", method)
	}

	var cx, cy, cz, weight float64
	for _, triangle := range m.Triangles {
		if err := ctx.Err(); err != nil {
			return geometry.Vector3{}, &CancelledError{Op: "centroid calculation", Err: err}
		}
		if !triangle.IsValid() || triangle.IsDegenerate() {
			continue
		}

		var w float64
		var c geometry.Vector3
		switch method {
		case CentroidGeometric:
			w = triangle.Area()
			c = triangle.Center()
		case CentroidVolumetric:
			w = signedTetrahedronVolume(triangle)
			// tetrahedron centroid with the origin as fourth vertex
			c = triangle.V1.Add(triangle.V2).Add(triangle.V3).Mul(0.25)
		}

		cx += float64(c.X) * w
		cy += float64(c.Y) * w
		cz += float64(c.Z) * w
		weight += w
	}

	if weight == 0 {
		return geometry.Vector3{}, nil
	}
	return geometry.NewVector3(
		float32(cx/weight),
		float32(cy/weight),
		float32(cz/weight),
	), nil
}
