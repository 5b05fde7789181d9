package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// qualityCmd prints the per-base quality distribution as a table.
var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Per-base quality score distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		rows, err := newEngine(store).PerBaseQuality()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "pos\tq10\tq25\tmedian\tq75\tq90")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
				r.Position, r.Q10, r.Q25, r.Median, r.Q75, r.Q90)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(qualityCmd)
}
