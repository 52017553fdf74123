package element

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when a name does not match any enumeration value
var ErrUnknownName = errors.New("unknown name")

// Dimensionality represents the topological dimension of a reference cell
type Dimensionality uint8

const (
	D0 Dimensionality = iota // Points
	D1                       // Intervals
	D2                       // Triangles, quadrilaterals
	D3                       // Tetrahedra, hexahedra, prisms, pyramids
)

// CellType identifies the shape of a reference cell. Values match the
// basis library's cell enumeration.
type CellType uint8

const (
	Point CellType = iota

	// 1D
	Interval

	// 2D and 3D simplices
	Triangle
	Tetrahedron

	// Tensor product cells
	Quadrilateral
	Hexahedron

	// Mixed cells
	Prism
	Pyramid
)

var cellNames = [...]string{
	Point:         "point",
	Interval:      "interval",
	Triangle:      "triangle",
	Tetrahedron:   "tetrahedron",
	Quadrilateral: "quadrilateral",
	Hexahedron:    "hexahedron",
	Prism:         "prism",
	Pyramid:       "pyramid",
}

// AllCells returns the seven reference cells an element can be defined on
func AllCells() []CellType {
	return []CellType{Interval, Triangle, Tetrahedron, Quadrilateral,
		Hexahedron, Prism, Pyramid}
}

func (c CellType) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("CellType(%d)", uint8(c))
}

func (c CellType) Dimensions() Dimensionality {
	switch c {
	case Interval:
		return D1
	case Triangle, Quadrilateral:
		return D2
	case Tetrahedron, Hexahedron, Prism, Pyramid:
		return D3
	default:
		return D0
	}
}

func (c CellType) IsSimplex() bool {
	return c == Interval || c == Triangle || c == Tetrahedron
}

// IsTensorProduct reports whether the cell is a product of intervals.
// The interval counts as both a simplex and a tensor product cell.
func (c CellType) IsTensorProduct() bool {
	return c == Interval || c == Quadrilateral || c == Hexahedron
}

func (c CellType) MarshalText() ([]byte, error) {
	if int(c) >= len(cellNames) {
		return nil, fmt.Errorf("cell type %d: %w", uint8(c), ErrUnknownName)
	}
	return []byte(c.String()), nil
}

func (c *CellType) UnmarshalText(text []byte) (err error) {
	*c, err = ParseCellType(string(text))
	return
}

// ParseCellType converts a cell name such as "triangle" into a CellType
func ParseCellType(name string) (CellType, error) {
	for i, n := range cellNames {
		if n == name {
			return CellType(i), nil
		}
	}
	return Point, fmt.Errorf("cell type %q: %w", name, ErrUnknownName)
}
