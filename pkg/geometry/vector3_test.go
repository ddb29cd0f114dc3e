package geometry

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := float32(5.0)
	if math32.Abs(length-expected) > 1e-6 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := float32(5.0)
	if math32.Abs(distance-expected) > 1e-6 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	if math32.Abs(normalized.Length()-1.0) > 1e-6 {
		t.Errorf("Normalize failed: expected length 1.0, got %v", normalized.Length())
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	v := Vector3{}
	if v.Normalize() != (Vector3{}) {
		t.Errorf("Normalize of zero vector should be the zero vector")
	}
}

func TestVector3Cross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)
	result := x.Cross(y)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, -5, 6)
	result := v1.Dot(v2)

	expected := float32(12.0) // 4 - 10 + 18
	if math32.Abs(result-expected) > 1e-6 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3IsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	cases := []struct {
		name string
		v    Vector3
		want bool
	}{
		{"origin", NewVector3(0, 0, 0), true},
		{"regular", NewVector3(1.5, -2.5, 3e10), true},
		{"nan x", NewVector3(nan, 0, 0), false},
		{"nan z", NewVector3(0, 0, nan), false},
		{"positive inf", NewVector3(0, inf, 0), false},
		{"negative inf", NewVector3(-inf, 0, 0), false},
	}

	for _, tc := range cases {
		if got := tc.v.IsFinite(); got != tc.want {
			t.Errorf("IsFinite(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
