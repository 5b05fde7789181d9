package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// contentCmd prints the per-base nucleotide content as a table.
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Per-base nucleotide content",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		rows, err := newEngine(store).PerBaseContent()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(w, "pos\t%%A\t%%T\t%%C\t%%G\n")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
				r.Position, r.PercentA, r.PercentT, r.PercentC, r.PercentG)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
}
