package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sartorproj/gotimeindex/future"
	"github.com/sartorproj/gotimeindex/internal/logger"
	"github.com/sartorproj/gotimeindex/timeseries"
	"github.com/spf13/cobra"
)

func newFutureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "future <csv>",
		Short: "Project the instants that follow a series",
		Long: `Print the next --horizon instants after the last one in the series, following
its cadence: a regular gap, calendar months, or the weekdays the series is
observed on.

Examples:
  tsig future --horizon 5 prices.csv
  tsig future --horizon 10 --skip 2013-12-25,2014-01-01 prices.csv`,
		Args:    cobra.ExactArgs(1),
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, idx, err := a.load(args[0])
			if err != nil {
				return err
			}

			var skip []time.Time
			for _, s := range a.cfg.Skip {
				t, err := timeseries.ParseTime(s, idx.Class(), a.cfg.DateFormat)
				if err != nil {
					return fmt.Errorf("parsing --skip: %w", err)
				}
				skip = append(skip, t)
			}

			plan, err := future.NewPlan(idx)
			if err != nil {
				return err
			}
			logger.Info("projecting", "method", string(plan.Method), "scale", string(plan.Scale), "horizon", a.cfg.Horizon)

			next, err := plan.Next(a.cfg.Horizon, future.WithSkip(skip...))
			if err != nil {
				return err
			}

			rows := make([][]string, next.Len())
			for i, s := range next.Strings() {
				rows[i] = []string{strconv.Itoa(i + 1), s}
			}
			return renderTable(cmd.OutOrStdout(), []string{"Step", "Instant"}, rows)
		},
	}
	cmd.Flags().Int("horizon", DefaultHorizon, "Number of future instants")
	cmd.Flags().StringSlice("skip", nil, "Instants to leave out of the projection")
	return cmd
}
