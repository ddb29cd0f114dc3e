package stl

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/stlcore/pkg/geometry"
)

// putFloat32 overwrites a single float32 at the given buffer offset
func putFloat32(buf []byte, offset int, f float32) {
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(f))
}

func TestDecodeWellFormed(t *testing.T) {
	cube := Cube(1)
	data := Encode(cube)
	require.Len(t, data, minSize+recordSize*12)

	model, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, 12, model.TriangleCount())
	assert.Equal(t, 12, model.Metadata.TriangleCount)
	assert.Equal(t, int64(len(data)), model.Metadata.FileSize)
	assert.Equal(t, "cube", model.Metadata.Header)
	assert.Equal(t, FormatBinary, model.Metadata.Format)
	assert.NotEmpty(t, model.Metadata.ContentHash)
	assert.Len(t, model.Attributes, 12)
	assert.Equal(t, data, model.Source)
}

func TestDecodeRoundTrip(t *testing.T) {
	original := Cube(2.5)

	decoded, err := Decode(Encode(original))
	require.NoError(t, err)

	if diff := cmp.Diff(original.Triangles, decoded.Triangles); diff != "" {
		t.Errorf("triangle data changed across encode/decode (-want +got):\n%s", diff)
	}
}

func TestDecodeBufferTooShort(t *testing.T) {
	_, err := Decode(make([]byte, 83))
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Msg, "too short")
}

func TestDecodeCountExceedsLimit(t *testing.T) {
	data := make([]byte, minSize)
	binary.LittleEndian.PutUint32(data[headerSize:], MaxTriangleCount+1)

	_, err := Decode(data)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Msg, "exceeds limit")
}

func TestDecodeTruncated(t *testing.T) {
	const n = 5
	data := make([]byte, minSize+recordSize*n-1)
	binary.LittleEndian.PutUint32(data[headerSize:], n)

	_, err := Decode(data)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Msg, "truncated")
}

func TestDecodeNonFiniteCoordinate(t *testing.T) {
	data := Encode(Cube(1))
	// first vertex X of the second triangle
	putFloat32(data, minSize+recordSize+12, float32(math.NaN()))

	_, err := Decode(data)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Msg, "triangle 2", "index must be 1-based")
}

func TestDecodeNonFiniteNormal(t *testing.T) {
	data := Encode(Cube(1))
	putFloat32(data, minSize, float32(math.Inf(1)))

	_, err := Decode(data)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Msg, "triangle 1")
}

func TestDecodeRepairsZeroNormal(t *testing.T) {
	tri := geometry.NewTriangle(
		geometry.Vector3{}, // missing normal
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	)
	data := Encode(NewModel("zero-normal", []geometry.Triangle{tri}))

	model, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 1, model.TriangleCount())

	// right-hand rule across the vertex edges
	want := geometry.NewVector3(0, 0, 1)
	assert.InDelta(t, 0, float64(model.Triangles[0].Normal.Distance(want)), 1e-6)
}

func TestDecodePreservesAttributes(t *testing.T) {
	data := Encode(Cube(1))
	binary.LittleEndian.PutUint16(data[minSize+48:], 0xBEEF)

	model, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), model.Attributes[0])
	for _, attr := range model.Attributes[1:] {
		assert.Zero(t, attr)
	}
}

func TestEncodeHeaderPadding(t *testing.T) {
	model := Cube(1)
	model.Metadata.Filename = "short name"

	data := Encode(model)
	header, ok := PeekHeader(data)
	require.True(t, ok)
	assert.Equal(t, "short name", header)

	long := strings.Repeat("x", 120)
	model.Metadata.Filename = long
	header, ok = PeekHeader(Encode(model))
	require.True(t, ok)
	assert.Equal(t, long[:headerSize], header)
}

func TestEncodeDefaultHeader(t *testing.T) {
	model := NewModel("", []geometry.Triangle{})
	header, ok := PeekHeader(Encode(model))
	require.True(t, ok)
	assert.Equal(t, defaultHeader, header)
}

func TestPeekTriangleCount(t *testing.T) {
	data := Encode(Cube(1))

	count, ok := PeekTriangleCount(data)
	require.True(t, ok)
	assert.Equal(t, uint32(12), count)

	_, ok = PeekTriangleCount(data[:83])
	assert.False(t, ok, "count must be unavailable, not an error, on short input")
}

func TestPeekHeaderShortBuffer(t *testing.T) {
	_, ok := PeekHeader(make([]byte, 40))
	assert.False(t, ok)
}
