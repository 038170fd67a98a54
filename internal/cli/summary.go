package cli

import (
	"github.com/sartorproj/gotimeindex/stats"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <csv>",
		Short: "Summarize the extent, scale and gaps of a series index",
		Long: `Print the number of observations, first and last instants, units, scale,
time zone and the distribution of gaps between consecutive instants.

Examples:
  tsig summary sales.csv
  tsig summary --class yearmonth --date-column Month retail.csv`,
		Args:    cobra.ExactArgs(1),
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, idx, err := a.load(args[0])
			if err != nil {
				return err
			}

			fields := stats.Summarize(idx).Fields()
			rows := make([][]string, len(fields))
			for i, f := range fields {
				rows[i] = []string{f.Name, f.Value}
			}
			return renderTable(cmd.OutOrStdout(), []string{"Field", "Value"}, rows)
		},
	}
}
