package cases

import (
	"testing"

	"github.com/notargets/elementcases/element"
)

// Run runs fn as a subtest for every case up to maxDegree. An empty case
// set fails t instead of running nothing.
func Run(t *testing.T, maxDegree int, fn func(t *testing.T, tc TestCase)) {
	t.Helper()
	list, err := Enumerate(maxDegree)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range list {
		t.Run(tc.Name(), func(t *testing.T) {
			fn(t, tc)
		})
	}
}

// RunCell runs fn as a subtest for every case defined on cell
func RunCell(t *testing.T, maxDegree int, cell element.CellType, fn func(t *testing.T, cc CellCase)) {
	t.Helper()
	list, err := EnumerateCell(maxDegree, cell)
	if err != nil {
		t.Fatal(err)
	}
	for _, cc := range list {
		t.Run(cc.Name(), func(t *testing.T) {
			fn(t, cc)
		})
	}
}
