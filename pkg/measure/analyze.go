package measure

import (
	"context"
	"sync"
	"time"

	"github.com/philipparndt/stlcore/pkg/geometry"
	"github.com/philipparndt/stlcore/pkg/stl"
)

// AnalysisReport packages the results of a comprehensive analysis.
// A nil field means that sub-measurement failed and was omitted; a
// failing sub-measurement never fails the analysis as a whole.
type AnalysisReport struct {
	Filename    string
	BoundingBox *geometry.BoundingBox
	SurfaceArea *Measurement
	Volume      *Measurement
	Centroid    *geometry.Vector3
	Statistics  *Statistics
	GeneratedAt time.Time
}

// AnalyzeModel performs a comprehensive analysis: bounding box, surface
// area, volume (with closure confidence), centroid and mesh statistics.
//
// Unlike the codec's fail-fast decoding, analysis is fail-local: each
// sub-measurement that errors is simply dropped from the report.
// Cancellation is the exception and aborts the whole call. The mesh is
// immutable, so the sub-measurements run concurrently without locks.
func AnalyzeModel(ctx context.Context, m *stl.Model, method CentroidMethod) (*AnalysisReport, error) {
	report := &AnalysisReport{
		Filename:    m.Metadata.Filename,
		GeneratedAt: time.Now(),
	}

	if m.TriangleCount() > 0 {
		bbox := m.BoundingBox()
		report.BoundingBox = &bbox
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if area, err := CalculateSurfaceArea(ctx, m); err == nil {
			measurement := area.Measurement()
			report.SurfaceArea = &measurement
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if volume, err := CalculateVolume(ctx, m); err == nil {
			measurement := volume.Measurement()
			report.Volume = &measurement
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if centroid, err := CalculateCentroid(ctx, m, method); err == nil {
			report.Centroid = &centroid
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if stats, err := CalculateMeshStatistics(ctx, m); err == nil {
			report.Statistics = &stats
		}
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, &CancelledError{Op: "comprehensive analysis", Err: err}
	}
	return report, nil
}
