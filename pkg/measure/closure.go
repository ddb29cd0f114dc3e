package measure

import (
	"context"
	"math"

	"github.com/philipparndt/stlcore/pkg/geometry"
	"github.com/philipparndt/stlcore/pkg/stl"
)

// weldEpsilon is the coordinate quantization grid used when canonicalizing
// edge endpoints. Vertices closer than this are treated as the same point.
const weldEpsilon = 1e-5

// gridPoint is a vertex snapped to the weld grid. Being a plain integer
// tuple it is both hashable and totally ordered, so edge adjacency does
// not depend on float identity or map iteration order.
type gridPoint struct {
	X, Y, Z int64
}

func quantize(v geometry.Vector3) gridPoint {
	return gridPoint{
		X: int64(math.Round(float64(v.X) / weldEpsilon)),
		Y: int64(math.Round(float64(v.Y) / weldEpsilon)),
		Z: int64(math.Round(float64(v.Z) / weldEpsilon)),
	}
}

// less is a component-wise lexicographic comparison
func (p gridPoint) less(q gridPoint) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// edgeKey is a canonical undirected edge: endpoints quantized and ordered
// so that (a,b) and (b,a) map to the same key.
type edgeKey struct {
	A, B gridPoint
}

func canonicalEdge(a, b geometry.Vector3) edgeKey {
	pa, pb := quantize(a), quantize(b)
	if pb.less(pa) {
		pa, pb = pb, pa
	}
	return edgeKey{A: pa, B: pb}
}

// IsClosedMesh reports whether a mesh is closed (watertight): every
// undirected edge is shared by exactly two triangles, leaving no boundary.
// An empty mesh reports false. The scan checks ctx once per triangle.
func IsClosedMesh(ctx context.Context, m *stl.Model) (bool, error) {
	if m.TriangleCount() == 0 {
		return false, nil
	}

	edges := make(map[edgeKey]int, m.TriangleCount()*3/2)
	for _, triangle := range m.Triangles {
		if err := ctx.Err(); err != nil {
			return false, &CancelledError{Op: "closure check", Err: err}
		}
		if !triangle.IsValid() {
			continue
		}
		edges[canonicalEdge(triangle.V1, triangle.V2)]++
		edges[canonicalEdge(triangle.V2, triangle.V3)]++
		edges[canonicalEdge(triangle.V3, triangle.V1)]++
	}

	if len(edges) == 0 {
		return false, nil
	}
	for _, count := range edges {
		if count != 2 {
			return false, nil
		}
	}
	return true, nil
}
