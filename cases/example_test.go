package cases_test

import (
	"errors"
	"fmt"

	"github.com/notargets/elementcases/cases"
	"github.com/notargets/elementcases/element"
)

func ExampleEnumerateCell() {
	list, err := cases.EnumerateCell(6, element.Pyramid)
	if err != nil {
		panic(err)
	}
	for _, cc := range list {
		fmt.Println(cc.Name())
	}

	_, err = cases.EnumerateCell(6, element.Point)
	fmt.Println(errors.Is(err, cases.ErrEmptyCaseSet))
	// Output:
	// P/1/equispaced
	// P/2/equispaced
	// P/3/equispaced
	// true
}
