package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// reportCmd computes all three aggregate views plus the scalar summary and
// writes them as one JSON document, the input of the TUI browser.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute all statistics and write a JSON report",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		rep, err := newEngine(store).BuildReport(cfg.Input)
		if err != nil {
			return err
		}

		out := cfg.Output
		if out == "" {
			out = "report.json"
		}
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		if out == "-" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		logger.Info("report written", "path", out,
			"quality_positions", len(rep.Quality),
			"content_positions", len(rep.Content),
			"length_bins", len(rep.Lengths))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("output", "o", "report.json", "report output path (- for stdout)")
	bindCommandFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}
