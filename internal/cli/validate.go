package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftline/draftline/pkg/config"
	"github.com/draftline/draftline/pkg/report"
	"github.com/draftline/draftline/pkg/schema"
	"github.com/draftline/draftline/pkg/source"
	"github.com/draftline/draftline/pkg/validate"
)

// validateCommand creates the validate command for checking room specs
// without computing layouts.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		configPath string
		strict     bool
		reportDir  string
	)

	cmd := &cobra.Command{
		Use:   "validate <rooms.csv|rooms.xlsx>",
		Short: "Validate room specifications without computing layouts",
		Long: `Validate room specifications from a tabular file.

Every row is checked independently: field types and domains, geometric
consistency (module widths plus fillers must account for the total length),
and references against the configured catalogs. One bad row never blocks
the rest of the batch.

With --report-dir, per-room findings and a batch summary are written as
JSON artifacts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], configPath, strict, reportDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file layered over the defaults")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	cmd.Flags().StringVar(&reportDir, "report-dir", "", "write findings and summary JSON to this directory")

	return cmd
}

func (c *CLI) runValidate(input, configPath string, strict bool, reportDir string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	table, header, err := source.Read(input)
	if err != nil {
		return err
	}
	for _, f := range header.Warnings() {
		printWarning("%s", f.String())
	}
	if !header.Passed() {
		for _, f := range header.Errors() {
			printFinding(f)
		}
		return fmt.Errorf("input header is unusable")
	}

	rows := make([]validate.ParsedRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		room, res := schema.ParseRow(row.Values, row.Number, table.File)
		rows = append(rows, validate.ParsedRow{Room: room, Result: res})
	}

	batch := validate.Batch(rows, cfg, strict)
	prog.done(fmt.Sprintf("Validated %d rooms", batch.Summary.Total))

	for _, outcome := range batch.Outcomes {
		if len(outcome.Result.Findings) == 0 {
			continue
		}
		name := outcome.Room.RoomID
		if name == "" {
			name = fmt.Sprintf("row %d", outcome.Room.RowNumber)
		}
		printInfo("%s", name)
		for _, f := range outcome.Result.Findings {
			printFinding(f)
		}
	}

	if reportDir != "" {
		w := &report.Writer{Dir: reportDir}
		paths, err := w.WriteBatch(&batch)
		if err != nil {
			return err
		}
		for _, p := range paths {
			printFile(p)
		}
	}

	s := batch.Summary
	if s.Rejected > 0 {
		printError("%d of %d rooms rejected (%.0f%% pass rate)", s.Rejected, s.Total, s.SuccessRate*100)
		return fmt.Errorf("validation failed for %d rooms", s.Rejected)
	}
	printSuccess("All %d rooms valid", s.Total)
	printStats(s.Accepted, s.Rejected, 0)
	printNewline()
	printNextStep("Compute layouts", "draftline layout "+input)
	return nil
}

// loadConfig loads the TOML config file, or the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}
