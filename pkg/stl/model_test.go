package stl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/stlcore/pkg/geometry"
)

func TestNewModelAggregates(t *testing.T) {
	triangles := []geometry.Triangle{
		geometry.NewTriangle(
			geometry.NewVector3(0, 0, 1),
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(3, 0, 0),
			geometry.NewVector3(0, 4, 0),
		),
	}

	model := NewModel("test", triangles)

	assert.NotEqual(t, model.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, 1, model.Metadata.TriangleCount)
	assert.Equal(t, "test", model.Metadata.Filename)
	assert.InDelta(t, 6.0, model.SurfaceArea(), 1e-6)
	assert.False(t, model.Metadata.LoadedAt.IsZero())

	bbox := model.BoundingBox()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(3, 4, 0), bbox.Max)
}

func TestCube(t *testing.T) {
	cube := Cube(1)
	require.Equal(t, 12, cube.TriangleCount())

	assert.InDelta(t, 6.0, cube.SurfaceArea(), 1e-4)

	bbox := cube.BoundingBox()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), bbox.Max)

	for i, triangle := range cube.Triangles {
		require.True(t, triangle.IsValid(), "triangle %d invalid", i)
		require.False(t, triangle.IsDegenerate(), "triangle %d degenerate", i)
		// stored normal must agree with the winding
		assert.InDelta(t, 0, float64(triangle.Normal.Distance(triangle.CalculateNormal())), 1e-6)
	}
}
