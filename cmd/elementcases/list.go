package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/notargets/elementcases/cases"
	"github.com/notargets/elementcases/config"
	"github.com/notargets/elementcases/element"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newListCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every test case, optionally for a single reference cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runList(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.cell, "cell", "", "Restrict to one reference cell (e.g. triangle)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(config.Table), "Output format: table, yaml or json")
	return cmd
}

func (o *options) applyCell() error {
	if o.cell == "" || o.cell == "all" {
		o.cfg.Cell = nil
		return nil
	}
	cell, err := element.ParseCellType(o.cell)
	if err != nil {
		return err
	}
	o.cfg.Cell = &cell
	return nil
}

func (o *options) runList(w io.Writer) error {
	var (
		cfg  = o.cfg
		list any
		rows [][]string
	)
	if cfg.Cell == nil {
		all, err := cases.Enumerate(cfg.MaxDegree)
		if err != nil {
			return err
		}
		for _, tc := range all {
			rows = append(rows, append([]string{tc.Cell.String()}, cellCaseRow(tc.Project())...))
		}
		list = all
	} else {
		some, err := cases.EnumerateCell(cfg.MaxDegree, *cfg.Cell)
		if err != nil {
			return err
		}
		for _, cc := range some {
			rows = append(rows, cellCaseRow(cc))
		}
		list = some
	}
	o.logger.Info("Enumerated test cases",
		zap.Int("count", len(rows)),
		zap.Int("max_degree", cfg.MaxDegree),
		zap.Stringer("cell", cellOrAll(cfg.Cell)))

	switch cfg.Format {
	case config.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("failed to encode cases: %w", err)
		}
		return enc.Close()
	case config.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	default:
		headers := []string{"FAMILY", "DEGREE", "VARIANTS"}
		if cfg.Cell == nil {
			headers = append([]string{"CELL"}, headers...)
		}
		_, err := fmt.Fprintln(w, renderTable(headers, rows))
		return err
	}
}

func cellCaseRow(cc cases.CellCase) []string {
	names := make([]string, len(cc.Variants))
	for i, v := range cc.Variants {
		names[i] = v.String()
	}
	return []string{cc.Family.String(), strconv.Itoa(cc.Degree), strings.Join(names, ",")}
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

type allCells struct{}

func (allCells) String() string { return "all" }

func cellOrAll(c *element.CellType) fmt.Stringer {
	if c == nil {
		return allCells{}
	}
	return *c
}
