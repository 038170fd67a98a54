package cli

import (
	"fmt"
	"math"

	"github.com/sartorproj/gotimeindex/internal/logger"
	"github.com/sartorproj/gotimeindex/signature"
	"github.com/spf13/cobra"
)

func newSignatureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signature <csv>",
		Short: "Decompose every instant of a series into calendar features",
		Long: `Print the time series signature: one row per instant with year, quarter,
month, weekday, week numbers and clock fields. With --output the rows are
written to a Parquet file instead.

Examples:
  tsig signature sales.csv
  tsig signature --output sales_signature.parquet sales.csv`,
		Args:    cobra.ExactArgs(1),
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, idx, err := a.load(args[0])
			if err != nil {
				return err
			}
			rows := signature.Decompose(idx)

			if a.cfg.Output != "" {
				if err := signature.WriteParquetFile(a.cfg.Output, rows); err != nil {
					return fmt.Errorf("writing %s: %w", a.cfg.Output, err)
				}
				logger.Info("wrote signature", "path", a.cfg.Output, "rows", len(rows))
				return nil
			}

			data := make([][]string, len(rows))
			for i, r := range rows {
				values := r.Values()
				line := make([]string, len(values))
				line[0] = idx.Format(i)
				for j, v := range values[1:] {
					line[j+1] = formatValue(v)
				}
				data[i] = line
			}
			return renderTable(cmd.OutOrStdout(), signature.Columns, data)
		},
	}
	cmd.Flags().String("output", "", "Write the signature to this Parquet file")
	return cmd
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatNumber(x)
	default:
		return formatNumber(math.NaN())
	}
}
