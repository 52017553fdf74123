package cases

import (
	"github.com/notargets/elementcases/element"
)

// DegreeRule decides whether an entry applies to a cell at degree k
type DegreeRule func(cell element.CellType, k int) bool

func AnyDegree() DegreeRule {
	return func(element.CellType, int) bool { return true }
}

// Below accepts degrees strictly less than n
func Below(n int) DegreeRule {
	return func(_ element.CellType, k int) bool { return k < n }
}

func Exactly(n int) DegreeRule {
	return func(_ element.CellType, k int) bool { return k == n }
}

func AtLeast(n int) DegreeRule {
	return func(_ element.CellType, k int) bool { return k >= n }
}

// AtLeastPerCell accepts degrees at or above a cell specific minimum.
// Cells missing from the map are never accepted.
func AtLeastPerCell(minDegree map[element.CellType]int) DegreeRule {
	return func(cell element.CellType, k int) bool {
		n, ok := minDegree[cell]
		return ok && k >= n
	}
}

// Entry is one family/variant combination inside a rule group
type Entry struct {
	Family   element.Family
	Variants []element.LagrangeVariant
	Degrees  DegreeRule
}

// RuleGroup applies each of its entries to each of its cells. Cells form
// the outer loop and entries the inner loop.
type RuleGroup struct {
	Name    string
	Cells   []element.CellType
	Entries []Entry
}

func variants(v ...element.LagrangeVariant) []element.LagrangeVariant {
	return v
}

// DefaultRules returns the rule table for the basis library's element
// families, in evaluation order
func DefaultRules() []RuleGroup {
	var (
		I   = element.Interval
		Tri = element.Triangle
		Tet = element.Tetrahedron
		Q   = element.Quadrilateral
		Hex = element.Hexahedron
		Pri = element.Prism
		Pyr = element.Pyramid
	)
	return []RuleGroup{
		{
			// Equispaced nodes become unstable at high degree
			Name:  "all cells",
			Cells: []element.CellType{I, Tri, Tet, Q, Hex, Pri, Pyr},
			Entries: []Entry{
				{element.P, variants(element.Equispaced), Below(4)},
			},
		},
		{
			Name:  "all cells except pyramid",
			Cells: []element.CellType{I, Tri, Tet, Q, Hex, Pri},
			Entries: []Entry{
				{element.P, variants(element.GLLIsaac), AnyDegree()},
				{element.P, variants(element.GLLWarped), AnyDegree()},
			},
		},
		{
			Name:  "all cells except prism and pyramid",
			Cells: []element.CellType{I, Tri, Tet, Q, Hex},
			Entries: []Entry{
				{element.P, variants(element.IntegralLegendre), AnyDegree()},
			},
		},
		{
			Name:  "all cells except prism, pyramid and interval",
			Cells: []element.CellType{Tri, Tet, Q, Hex},
			Entries: []Entry{
				{element.N1E, variants(), AnyDegree()},
				{element.N2E, variants(), AnyDegree()},
				{element.RT, variants(), AnyDegree()},
				{element.BDM, variants(), AnyDegree()},
			},
		},
		{
			Name:  "simplex cells",
			Cells: []element.CellType{Tri, Tet},
			Entries: []Entry{
				{element.CR, variants(), Exactly(1)},
				{element.Regge, variants(), AnyDegree()},
			},
		},
		{
			Name:  "tensor product cells",
			Cells: []element.CellType{I, Q, Hex},
			Entries: []Entry{
				{element.P, variants(element.IntegralChebyshev), AnyDegree()},
				{element.Serendipity, variants(), AnyDegree()},
			},
		},
		{
			// Bubbles need interior degrees of freedom
			Name:  "bubble",
			Cells: []element.CellType{I, Q, Hex, Tri, Tet},
			Entries: []Entry{
				{element.Bubble, variants(), AtLeastPerCell(map[element.CellType]int{
					I: 2, Q: 2, Hex: 2,
					Tri: 3,
					Tet: 4,
				})},
			},
		},
	}
}
