package stl

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/stlcore/pkg/geometry"
)

const (
	headerSize = 80
	recordSize = 50
	minSize    = headerSize + 4

	// MaxTriangleCount is the ceiling on the declared triangle count.
	// It protects against unbounded allocation from a corrupt or
	// hostile buffer before any record is read.
	MaxTriangleCount = 10_000_000

	// normals shorter than this are treated as missing and recomputed
	normalLengthEpsilon = 1e-6

	defaultHeader = "Exported by stlcore"
)

// FormatError reports a malformed, truncated or oversized binary STL
// payload. Decoding is all-or-nothing: the first structural problem
// anywhere in the buffer aborts the decode and no partial model is
// returned.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "invalid binary STL: " + e.Msg
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// Decode parses a binary STL buffer into a Model.
//
// The returned model records the trimmed header text, the raw source
// bytes, the per-triangle attribute words (uninterpreted) and a SHA-256
// content hash. Triangle order follows file order. A stored normal with
// near-zero length is recomputed from the vertices via the right-hand
// rule; this is a repair, not an error. Any non-finite coordinate fails
// the whole decode with a FormatError naming the 1-based triangle index.
func Decode(data []byte) (*Model, error) {
	if len(data) < minSize {
		return nil, formatErrorf("buffer too short: %d bytes, need at least %d", len(data), minSize)
	}

	count := binary.LittleEndian.Uint32(data[headerSize:])
	if count > MaxTriangleCount {
		return nil, formatErrorf("declared triangle count %d exceeds limit %d", count, MaxTriangleCount)
	}

	need := int64(minSize) + recordSize*int64(count)
	if int64(len(data)) < need {
		return nil, formatErrorf("truncated: %d bytes, need %d for %d triangles", len(data), need, count)
	}

	triangles := make([]geometry.Triangle, 0, count)
	attributes := make([]uint16, 0, count)

	offset := minSize
	for i := 0; i < int(count); i++ {
		record := data[offset : offset+recordSize]

		normal := readVector3(record, 0)
		v1 := readVector3(record, 12)
		v2 := readVector3(record, 24)
		v3 := readVector3(record, 36)

		if !normal.IsFinite() || !v1.IsFinite() || !v2.IsFinite() || !v3.IsFinite() {
			return nil, formatErrorf("non-finite coordinate in triangle %d", i+1)
		}

		triangle := geometry.NewTriangle(normal, v1, v2, v3)
		if normal.Length() < normalLengthEpsilon {
			triangle.Normal = triangle.CalculateNormal()
		}

		triangles = append(triangles, triangle)
		attributes = append(attributes, binary.LittleEndian.Uint16(record[48:]))
		offset += recordSize
	}

	model := NewModel("", triangles)
	model.Attributes = attributes
	model.Source = data
	model.Metadata.Header = trimHeader(data[:headerSize])
	model.Metadata.FileSize = int64(len(data))
	model.Metadata.ContentHash = contentHash(data)
	return model, nil
}

// Encode serializes a model into a binary STL buffer.
//
// The header is the model's filename, falling back to the recorded header
// text and finally to a default string, truncated or zero-padded to
// exactly 80 bytes. Triangles are written in stored order with a zero
// attribute word. Decode(Encode(m)) reproduces m's ordered vertex and
// normal data exactly.
func Encode(m *Model) []byte {
	buf := make([]byte, minSize+recordSize*len(m.Triangles))

	header := m.Metadata.Filename
	if header == "" {
		header = m.Metadata.Header
	}
	if header == "" {
		header = defaultHeader
	}
	copy(buf[:headerSize], header)

	binary.LittleEndian.PutUint32(buf[headerSize:], uint32(len(m.Triangles)))

	offset := minSize
	for _, triangle := range m.Triangles {
		writeVector3(buf[offset:], 0, triangle.Normal)
		writeVector3(buf[offset:], 12, triangle.V1)
		writeVector3(buf[offset:], 24, triangle.V2)
		writeVector3(buf[offset:], 36, triangle.V3)
		// attribute word stays zero
		offset += recordSize
	}
	return buf
}

// PeekTriangleCount reads only the 4-byte triangle count from a buffer.
// It reports false instead of failing when the buffer is too short to
// hold a count.
func PeekTriangleCount(data []byte) (uint32, bool) {
	if len(data) < minSize {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[headerSize:]), true
}

// PeekHeader reads only the 80-byte header text from a buffer.
// It reports false instead of failing when the buffer is too short.
func PeekHeader(data []byte) (string, bool) {
	if len(data) < headerSize {
		return "", false
	}
	return trimHeader(data[:headerSize]), true
}

func readVector3(record []byte, offset int) geometry.Vector3 {
	return geometry.Vector3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(record[offset:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(record[offset+4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(record[offset+8:])),
	}
}

func writeVector3(record []byte, offset int, v geometry.Vector3) {
	binary.LittleEndian.PutUint32(record[offset:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(record[offset+4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(record[offset+8:], math.Float32bits(v.Z))
}

func trimHeader(header []byte) string {
	return strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
