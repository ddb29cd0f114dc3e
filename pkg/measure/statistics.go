package measure

import (
	"context"
	"math"

	"github.com/philipparndt/stlcore/pkg/stl"
)

// Statistics aggregates mesh-quality numbers over a single scan.
// Area and edge statistics are collected only from valid, non-degenerate
// triangles.
type Statistics struct {
	TriangleCount       int
	ValidTriangles      int
	InvalidTriangles    int
	DegenerateTriangles int

	MinArea float64
	MaxArea float64
	AvgArea float64

	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64

	BoundingBoxVolume float64

	// QualityScore is validRatio - 0.5*degenerateRatio, roughly in
	// [-0.5, 1]: 1 for a fully valid mesh, negative when degenerate
	// triangles dominate.
	QualityScore float64
}

// CalculateMeshStatistics scans the mesh once and aggregates triangle
// validity counts, area and edge-length extremes, bounding-box volume and
// a heuristic quality score.
func CalculateMeshStatistics(ctx context.Context, m *stl.Model) (Statistics, error) {
	stats := Statistics{
		TriangleCount: m.TriangleCount(),
		MinArea:       math.MaxFloat64,
		MinEdgeLength: math.MaxFloat64,
	}

	totalArea := 0.0
	totalEdgeLength := 0.0
	edgeCount := 0

	for _, triangle := range m.Triangles {
		if err := ctx.Err(); err != nil {
			return Statistics{}, &CancelledError{Op: "statistics calculation", Err: err}
		}

		if !triangle.IsValid() {
			stats.InvalidTriangles++
			continue
		}
		if triangle.IsDegenerate() {
			stats.DegenerateTriangles++
			continue
		}
		stats.ValidTriangles++

		area := triangle.Area()
		totalArea += area
		if area < stats.MinArea {
			stats.MinArea = area
		}
		if area > stats.MaxArea {
			stats.MaxArea = area
		}

		for _, length := range triangle.EdgeLengths() {
			l := float64(length)
			totalEdgeLength += l
			edgeCount++
			if l < stats.MinEdgeLength {
				stats.MinEdgeLength = l
			}
			if l > stats.MaxEdgeLength {
				stats.MaxEdgeLength = l
			}
		}
	}

	if stats.ValidTriangles > 0 {
		stats.AvgArea = totalArea / float64(stats.ValidTriangles)
	} else {
		stats.MinArea = 0
	}
	if edgeCount > 0 {
		stats.AvgEdgeLength = totalEdgeLength / float64(edgeCount)
	} else {
		stats.MinEdgeLength = 0
	}

	stats.BoundingBoxVolume = m.BoundingBox().Volume()

	if stats.TriangleCount > 0 {
		validRatio := float64(stats.ValidTriangles) / float64(stats.TriangleCount)
		degenerateRatio := float64(stats.DegenerateTriangles) / float64(stats.TriangleCount)
		stats.QualityScore = validRatio - 0.5*degenerateRatio
	}

	return stats, nil
}
