package stl

import (
	"time"

	"github.com/google/uuid"
	"github.com/philipparndt/stlcore/pkg/geometry"
)

// Format identifies the on-disk representation a model was loaded from.
type Format int

const (
	// FormatBinary is the fixed-layout binary STL format.
	FormatBinary Format = iota
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ModelMetadata describes a loaded model: where it came from, how big it
// is, and cheap aggregates computed at load time.
type ModelMetadata struct {
	Filename      string
	Format        Format
	FileSize      int64
	TriangleCount int
	SurfaceArea   float64
	// Volume is zero until a measurement layer computes it; the codec
	// cannot know it without a closure check.
	Volume      float64
	BoundingBox geometry.BoundingBox
	LoadedAt      time.Time
	Header        string
	ContentHash   string
}

// Model represents a complete STL model.
//
// A Model is constructed once, by the codec or a procedural generator, and
// is never mutated afterwards. Measurement code only reads it, so scans
// over the triangle slice are safe from any number of goroutines.
type Model struct {
	ID       uuid.UUID
	Metadata ModelMetadata

	// Triangles in file order. Order is significant: Encode writes
	// records back in exactly this order.
	Triangles []geometry.Triangle

	// Attributes holds the per-triangle attribute words from the binary
	// format, index-aligned with Triangles. They are opaque to this
	// package and carried for byte-level inspection only. Nil for
	// generated models.
	Attributes []uint16

	// Source is the raw byte buffer the model was decoded from, nil for
	// generated models.
	Source []byte
}

// NewModel creates a new model from a triangle slice.
// Aggregate metadata (bounding box, surface area, triangle count) is
// computed here so that the model can be treated as immutable afterwards.
func NewModel(name string, triangles []geometry.Triangle) *Model {
	m := &Model{
		ID:        uuid.New(),
		Triangles: triangles,
		Metadata: ModelMetadata{
			Filename:      name,
			Format:        FormatBinary,
			TriangleCount: len(triangles),
			LoadedAt:      time.Now(),
		},
	}
	m.Metadata.BoundingBox = computeBoundingBox(triangles)
	m.Metadata.SurfaceArea = computeSurfaceArea(triangles)
	return m
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	return m.Metadata.BoundingBox
}

// SurfaceArea returns the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	return m.Metadata.SurfaceArea
}

func computeBoundingBox(triangles []geometry.Triangle) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

func computeSurfaceArea(triangles []geometry.Triangle) float64 {
	totalArea := 0.0
	for _, triangle := range triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
