package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solnyshko2009/qui-task/internal/quality"
)

// seqCmd prints per-record details for one sequence id.
var seqCmd = &cobra.Command{
	Use:   "seq <id>",
	Short: "Show one record: sequence, length, average quality, GC content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		id := args[0]
		rec, err := store.Get(id)
		if err != nil {
			return err
		}
		avg, err := store.AverageQuality(id)
		if err != nil {
			return err
		}
		gc, err := store.GCContent(id)
		if err != nil {
			return err
		}

		fmt.Printf("id\t%s\n", rec.ID)
		fmt.Printf("sequence\t%s\n", rec.Sequence)
		fmt.Printf("length\t%d\n", len(rec.Sequence))
		fmt.Printf("avg_quality\t%.2f\n", avg)
		fmt.Printf("gc_percent\t%.2f\n", gc)
		fmt.Printf("expected_errors\t%.4f\n", quality.ExpectedErrors(rec.Quality))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seqCmd)
}
