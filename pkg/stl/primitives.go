package stl

import "github.com/philipparndt/stlcore/pkg/geometry"

// Cube procedurally generates a closed axis-aligned cube spanning
// [0, size] on each axis, triangulated as 12 facets (two per face) with
// outward-facing normals. Useful as a known-watertight fixture.
func Cube(size float32) *Model {
	p000 := geometry.NewVector3(0, 0, 0)
	p100 := geometry.NewVector3(size, 0, 0)
	p010 := geometry.NewVector3(0, size, 0)
	p110 := geometry.NewVector3(size, size, 0)
	p001 := geometry.NewVector3(0, 0, size)
	p101 := geometry.NewVector3(size, 0, size)
	p011 := geometry.NewVector3(0, size, size)
	p111 := geometry.NewVector3(size, size, size)

	faces := [][3]geometry.Vector3{
		// bottom (z = 0)
		{p000, p010, p110},
		{p000, p110, p100},
		// top (z = size)
		{p001, p101, p111},
		{p001, p111, p011},
		// front (y = 0)
		{p000, p100, p101},
		{p000, p101, p001},
		// back (y = size)
		{p010, p111, p110},
		{p010, p011, p111},
		// left (x = 0)
		{p000, p001, p011},
		{p000, p011, p010},
		// right (x = size)
		{p100, p110, p111},
		{p100, p111, p101},
	}

	triangles := make([]geometry.Triangle, 0, len(faces))
	for _, f := range faces {
		triangle := geometry.NewTriangle(geometry.Vector3{}, f[0], f[1], f[2])
		triangle.Normal = triangle.CalculateNormal()
		triangles = append(triangles, triangle)
	}

	return NewModel("cube", triangles)
}
