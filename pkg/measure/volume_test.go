package measure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/stlcore/pkg/geometry"
	"github.com/philipparndt/stlcore/pkg/stl"
)

// degenerateTriangle has all three vertices at the origin
func degenerateTriangle() geometry.Triangle {
	return geometry.NewTriangle(
		geometry.Vector3{},
		geometry.Vector3{},
		geometry.Vector3{},
		geometry.Vector3{},
	)
}

func TestCalculateVolumeClosedCube(t *testing.T) {
	result, err := CalculateVolume(context.Background(), stl.Cube(1))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Volume, 1e-4)
	assert.True(t, result.Closed)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestCalculateVolumeOpenCube(t *testing.T) {
	result, err := CalculateVolume(context.Background(), openCube())
	require.NoError(t, err)

	assert.False(t, result.Closed)
	assert.Equal(t, 0.7, result.Confidence, "open surface must lower confidence")
}

func TestCalculateVolumeTranslationInvariant(t *testing.T) {
	// divergence-theorem volume must not depend on where the solid sits
	cube := stl.Cube(1)
	offset := geometry.NewVector3(10, -4, 7)

	moved := make([]geometry.Triangle, len(cube.Triangles))
	for i, tri := range cube.Triangles {
		moved[i] = geometry.NewTriangle(
			tri.Normal,
			tri.V1.Add(offset),
			tri.V2.Add(offset),
			tri.V3.Add(offset),
		)
	}

	result, err := CalculateVolume(context.Background(), stl.NewModel("moved cube", moved))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Volume, 1e-4)
}

func TestCalculateVolumeEmptyMesh(t *testing.T) {
	_, err := CalculateVolume(context.Background(), stl.NewModel("empty", nil))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCalculateVolumeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CalculateVolume(ctx, stl.Cube(1))
	var cancelledErr *CancelledError
	require.ErrorAs(t, err, &cancelledErr)
}

func TestCalculateSurfaceAreaCube(t *testing.T) {
	result, err := CalculateSurfaceArea(context.Background(), stl.Cube(1))
	require.NoError(t, err)

	assert.InDelta(t, 6.0, result.Area, 1e-4)
	assert.Equal(t, 12, result.TriangleCount)
}

func TestCalculateSurfaceAreaExcludesDegenerate(t *testing.T) {
	cube := stl.Cube(1)
	triangles := append([]geometry.Triangle{}, cube.Triangles...)
	triangles = append(triangles, degenerateTriangle())
	model := stl.NewModel("cube with junk", triangles)

	result, err := CalculateSurfaceArea(context.Background(), model)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, result.Area, 1e-4, "degenerate triangle must not contribute area")
	assert.Equal(t, 12, result.TriangleCount, "degenerate triangle must not be counted")
}
