package measure

import (
	"context"
	"math"

	"github.com/philipparndt/stlcore/pkg/geometry"
	"github.com/philipparndt/stlcore/pkg/stl"
)

// FindClosestPoint finds the point on the mesh surface nearest to target.
// It is a linear scan over all valid, non-degenerate triangles: each
// triangle is projected against and the minimum squared distance wins.
// No spatial index is built; cost is O(triangle count) per call.
func FindClosestPoint(ctx context.Context, m *stl.Model, target geometry.Vector3) (geometry.Vector3, error) {
	if !target.IsFinite() {
		return geometry.Vector3{}, validationErrorf("target point %s is not finite", FormatVector(target))
	}
	if m.TriangleCount() == 0 {
		return geometry.Vector3{}, validationErrorf("mesh has no triangles")
	}

	var closest geometry.Vector3
	found := false
	best := math.Inf(1)

	for _, triangle := range m.Triangles {
		if err := ctx.Err(); err != nil {
			return geometry.Vector3{}, &CancelledError{Op: "closest point search", Err: err}
		}
		if !triangle.IsValid() || triangle.IsDegenerate() {
			continue
		}

		candidate := closestPointOnTriangle(target, triangle.V1, triangle.V2, triangle.V3)
		distSq := float64(target.DistanceSquared(candidate))
		if distSq < best {
			best = distSq
			closest = candidate
			found = true
		}
	}

	if !found {
		return geometry.Vector3{}, validationErrorf("mesh has no usable triangles")
	}
	return closest, nil
}

// MeasureDistanceToSurface measures the distance from a point to the
// nearest point on the mesh surface, composing FindClosestPoint and
// MeasureDistance. A point lying on the surface fails the coincidence
// check like any other coincident pair.
func MeasureDistanceToSurface(ctx context.Context, m *stl.Model, point geometry.Vector3) (Measurement, error) {
	closest, err := FindClosestPoint(ctx, m, point)
	if err != nil {
		return Measurement{}, err
	}
	return MeasureDistance(point, closest)
}

// closestPointOnTriangle projects p onto triangle (a, b, c) and clamps
// the result to the triangle, returning the nearest point. Vertex, edge
// and face regions are distinguished via barycentric coordinates.
func closestPointOnTriangle(p, a, b, c geometry.Vector3) geometry.Vector3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.Mul(v))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.Mul(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(w))
	}

	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w))
}
