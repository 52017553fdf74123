package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/notargets/elementcases/cases"
	"github.com/notargets/elementcases/element"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

func newCoverageCmd(opts *options) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Print the number of test cases per cell and family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runCoverage(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the bare count matrix")
	return cmd
}

func (o *options) runCoverage(w io.Writer, raw bool) error {
	list, err := cases.Enumerate(o.cfg.MaxDegree)
	if err != nil {
		return err
	}
	cov := cases.Coverage(list)
	o.logger.Info("Computed coverage",
		zap.Int("cases", len(list)),
		zap.Float64("counted", mat.Sum(cov)))

	if raw {
		_, err = fmt.Fprintf(w, "%v\n", mat.Formatted(cov, mat.Squeeze()))
		return err
	}

	headers := []string{"CELL"}
	for _, f := range element.Families() {
		headers = append(headers, f.String())
	}
	var rows [][]string
	for i, c := range element.AllCells() {
		row := []string{c.String()}
		for _, v := range cov.RawRowView(i) {
			row = append(row, strconv.Itoa(int(v)))
		}
		rows = append(rows, row)
	}
	_, err = fmt.Fprintln(w, renderTable(headers, rows))
	return err
}
