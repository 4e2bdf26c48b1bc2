package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/draftline/draftline/pkg/layout"
	"github.com/draftline/draftline/pkg/pipeline"
	"github.com/draftline/draftline/pkg/report"
)

// layoutCommand creates the layout command for computing room layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		outDir    string
		reportDir string
		noCache   bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout <rooms.csv|rooms.xlsx>",
		Short: "Validate room specs and compute positioned layouts",
		Long: `Validate room specifications and compute a layout for every room
that passes: positioned modules, fillers, the countertop span, and the
ADA clearance boxes from the configured accessibility profile.

One layout JSON file is written per accepted room. Layouts are cached by
configuration and room content, so re-running after editing one row only
recomputes that room.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return c.runLayout(cmd, opts, outDir, reportDir, noCache)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "layouts", "directory for layout JSON files")
	cmd.Flags().StringVar(&reportDir, "report-dir", "", "write findings and summary JSON to this directory")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "TOML config file layered over the defaults")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "treat warnings as errors")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute layouts even when cached")

	return cmd
}

// runLayout executes the pipeline and writes layout files.
func (c *CLI) runLayout(cmd *cobra.Command, opts pipeline.Options, outDir, reportDir string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(cmd.Context(), "Computing layouts...")
	spinner.Start()

	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if cmd.Context().Err() != nil {
		return cmd.Context().Err()
	}

	for _, f := range result.Header.Warnings() {
		printWarning("%s", f.String())
	}
	for _, outcome := range result.Batch.Outcomes {
		if outcome.Accepted && len(outcome.Result.Findings) == 0 {
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

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outDir, err)
	}
	for _, l := range result.Layouts {
		path := filepath.Join(outDir, l.RoomID+".layout.json")
		if err := layout.WriteFile(l, path); err != nil {
			return fmt.Errorf("write layout %s: %w", path, err)
		}
		printFile(path)
	}

	if reportDir != "" {
		w := &report.Writer{Dir: reportDir}
		paths, err := w.WriteBatch(&result.Batch)
		if err != nil {
			return err
		}
		for _, p := range paths {
			printFile(p)
		}
	}

	s := result.Batch.Summary
	if s.Rejected > 0 {
		printWarning("%d of %d rooms rejected", s.Rejected, s.Total)
	} else {
		printSuccess("Layout complete")
	}
	printStats(s.Accepted, s.Rejected, result.CacheInfo.LayoutHits)

	if s.Rejected > 0 {
		return fmt.Errorf("layout skipped for %d rejected rooms", s.Rejected)
	}
	return nil
}
