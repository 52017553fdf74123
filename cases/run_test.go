package cases

import (
	"sync"
	"testing"

	"github.com/notargets/elementcases/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []TestCase
	)
	Run(t, 2, func(t *testing.T, tc TestCase) {
		assert.Equal(t, tc.Name(), t.Name()[len("TestRun/"):])
		mu.Lock()
		seen = append(seen, tc)
		mu.Unlock()
	})

	want, err := Enumerate(2)
	require.NoError(t, err)
	assert.Equal(t, want, seen)
}

func TestRunCell(t *testing.T) {
	var names []string
	RunCell(t, 3, element.Pyramid, func(t *testing.T, cc CellCase) {
		assert.Equal(t, element.P, cc.Family)
		assert.Equal(t, []element.LagrangeVariant{element.Equispaced}, cc.Variants)
		names = append(names, cc.Name())
	})
	assert.Equal(t, []string{"P/1/equispaced", "P/2/equispaced", "P/3/equispaced"}, names)
}

// Enumeration is pure, so concurrent callers see identical results
func TestEnumerateConcurrent(t *testing.T) {
	want, err := Enumerate(5)
	require.NoError(t, err)

	results := make([][]TestCase, 16)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			list, err := Enumerate(5)
			if err != nil {
				return err
			}
			results[i] = list
			_, err = EnumerateCell(5, element.AllCells()[i%7])
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
