package measure

import (
	"fmt"
	"math"

	"github.com/philipparndt/stlcore/pkg/geometry"
)

// Kind identifies what a Measurement quantifies. Each kind carries the
// exponent applied to a linear unit factor when converting, so unit
// conversion is a table lookup rather than a dispatch on concrete types.
type Kind int

const (
	Distance Kind = iota
	Angle
	SurfaceArea
	Volume
	BoundingBox
	Centroid
)

var kindNames = [...]string{
	Distance:    "distance",
	Angle:       "angle",
	SurfaceArea: "surface area",
	Volume:      "volume",
	BoundingBox: "bounding box",
	Centroid:    "centroid",
}

// scaling exponent under a linear unit factor: lengths scale by factor,
// areas by factor², volumes by factor³; angles are unitless
var kindExponents = [...]int{
	Distance:    1,
	Angle:       0,
	SurfaceArea: 2,
	Volume:      3,
	BoundingBox: 1,
	Centroid:    1,
}

// String returns the kind name
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Exponent returns the power of the linear unit factor this kind scales by
func (k Kind) Exponent() int {
	if int(k) < len(kindExponents) {
		return kindExponents[k]
	}
	return 1
}

// Measurement is a single measured quantity. Scalar kinds populate Value;
// vector kinds (centroid, bounding box extents) populate Vector as well.
// Confidence is 1.0 unless the producing operation documents otherwise.
type Measurement struct {
	Kind       Kind
	Value      float64
	Vector     geometry.Vector3
	Unit       string
	Confidence float64
}

// ConvertUnits rescales a measurement by factor^k, where k is the scaling
// exponent of the measurement's kind (1 for lengths, 2 for areas, 3 for
// volumes, 0 for angles). The factor is the linear scale between the
// current unit and targetUnit.
func ConvertUnits(m Measurement, targetUnit string, factor float64) (Measurement, error) {
	if targetUnit == "" {
		return Measurement{}, validationErrorf("target unit must not be empty")
	}
	if factor <= 0 {
		return Measurement{}, validationErrorf("unit conversion factor must be positive, got %g", factor)
	}

	scale := math.Pow(factor, float64(m.Kind.Exponent()))
	m.Value *= scale
	m.Vector = m.Vector.Mul(float32(scale))
	m.Unit = targetUnit
	return m, nil
}

// FormatMeasurement formats a measurement value with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
