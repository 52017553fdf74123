package cases

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/notargets/elementcases/element"
	"gonum.org/v1/gonum/stat/combin"
)

// ErrEmptyCaseSet is matched by every EmptyCaseSetError
var ErrEmptyCaseSet = errors.New("empty case set")

// EmptyCaseSetError reports an enumeration that produced nothing to test.
// Cell is nil for an unfiltered enumeration.
type EmptyCaseSetError struct {
	Cell      *element.CellType
	MaxDegree int
}

func (e *EmptyCaseSetError) Error() string {
	ref := "None"
	if e.Cell != nil {
		ref = e.Cell.String()
	}
	return fmt.Sprintf("no elements will be tested with reference: %s (max degree %d)", ref, e.MaxDegree)
}

func (e *EmptyCaseSetError) Is(target error) bool {
	return target == ErrEmptyCaseSet
}

// TestCase is one (cell, family, degree, variants) combination
type TestCase struct {
	Cell     element.CellType          `json:"cell" yaml:"cell"`
	Family   element.Family            `json:"family" yaml:"family"`
	Degree   int                       `json:"degree" yaml:"degree"`
	Variants []element.LagrangeVariant `json:"variants" yaml:"variants"`
}

// CellCase is a TestCase with the cell removed, produced when enumerating
// a single reference cell
type CellCase struct {
	Family   element.Family            `json:"family" yaml:"family"`
	Degree   int                       `json:"degree" yaml:"degree"`
	Variants []element.LagrangeVariant `json:"variants" yaml:"variants"`
}

func (tc TestCase) Project() CellCase {
	return CellCase{Family: tc.Family, Degree: tc.Degree, Variants: tc.Variants}
}

// Name is used as the subtest name, e.g. "triangle/P/2/gll_isaac"
func (tc TestCase) Name() string {
	return tc.Cell.String() + "/" + tc.Project().Name()
}

func (cc CellCase) Name() string {
	var sb strings.Builder
	sb.WriteString(cc.Family.String())
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(cc.Degree))
	for _, v := range cc.Variants {
		sb.WriteString("/")
		sb.WriteString(v.String())
	}
	return sb.String()
}

// Enumerator expands a rule table into test cases. It holds no mutable
// state and may be shared between goroutines.
type Enumerator struct {
	groups []RuleGroup
}

func New(groups ...RuleGroup) *Enumerator {
	return &Enumerator{groups: groups}
}

// Default returns an Enumerator over DefaultRules
func Default() *Enumerator {
	return New(DefaultRules()...)
}

// candidates applies every rule group for k = 1..maxDegree
func (en *Enumerator) candidates(maxDegree int) (list []TestCase) {
	if maxDegree < 1 || len(en.groups) == 0 {
		return
	}
	// Lexicographic order: degree outer, rule group inner
	for _, idx := range combin.Cartesian([]int{maxDegree, len(en.groups)}) {
		var (
			k = idx[0] + 1
			g = en.groups[idx[1]]
		)
		for _, cell := range g.Cells {
			for _, e := range g.Entries {
				if !e.Degrees(cell, k) {
					continue
				}
				list = append(list, TestCase{
					Cell:     cell,
					Family:   e.Family,
					Degree:   k,
					Variants: append([]element.LagrangeVariant{}, e.Variants...),
				})
			}
		}
	}
	return
}

// Enumerate returns every test case for degrees 1..maxDegree in rule order
func (en *Enumerator) Enumerate(maxDegree int) ([]TestCase, error) {
	list := en.candidates(maxDegree)
	if len(list) == 0 {
		return nil, &EmptyCaseSetError{MaxDegree: maxDegree}
	}
	return list, nil
}

// EnumerateCell returns the test cases defined on a single reference cell
func (en *Enumerator) EnumerateCell(maxDegree int, cell element.CellType) ([]CellCase, error) {
	var list []CellCase
	for _, tc := range en.candidates(maxDegree) {
		if tc.Cell == cell {
			list = append(list, tc.Project())
		}
	}
	if len(list) == 0 {
		return nil, &EmptyCaseSetError{Cell: &cell, MaxDegree: maxDegree}
	}
	return list, nil
}

var defaultEnumerator = Default()

// Enumerate uses the default rule table
func Enumerate(maxDegree int) ([]TestCase, error) {
	return defaultEnumerator.Enumerate(maxDegree)
}

// EnumerateCell uses the default rule table
func EnumerateCell(maxDegree int, cell element.CellType) ([]CellCase, error) {
	return defaultEnumerator.EnumerateCell(maxDegree, cell)
}
