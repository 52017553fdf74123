package cases

import (
	"github.com/notargets/elementcases/element"
	"gonum.org/v1/gonum/mat"
)

// Coverage counts cases per cell and family. Rows follow element.AllCells
// and columns follow element.Families; cases on other cells or families
// are not counted.
func Coverage(list []TestCase) *mat.Dense {
	var (
		cells    = element.AllCells()
		families = element.Families()
		row      = make(map[element.CellType]int, len(cells))
		col      = make(map[element.Family]int, len(families))
	)
	for i, c := range cells {
		row[c] = i
	}
	for j, f := range families {
		col[f] = j
	}

	cov := mat.NewDense(len(cells), len(families), nil)
	for _, tc := range list {
		i, okR := row[tc.Cell]
		j, okC := col[tc.Family]
		if !okR || !okC {
			continue
		}
		cov.Set(i, j, cov.At(i, j)+1)
	}
	return cov
}
