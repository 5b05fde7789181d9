package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// lengthCmd prints the sequence length distribution histogram.
var lengthCmd = &cobra.Command{
	Use:   "length",
	Short: "Sequence length distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		rows, err := newEngine(store).LengthDistribution(cfg.Bins)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "center\tcount")
		for _, b := range rows {
			fmt.Fprintf(w, "%.2f\t%d\n", b.Center, b.Count)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(lengthCmd)
}
