// Package cli defines the tsig command-line interface.
package cli

import (
	"fmt"

	"github.com/sartorproj/gotimeindex/internal/logger"
	"github.com/sartorproj/gotimeindex/timeindex"
	"github.com/sartorproj/gotimeindex/timeseries"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set by the linker at release time.
var (
	version = "dev"
	commit  = "none"
)

// app carries the per-invocation state shared by all subcommands.
type app struct {
	v   *viper.Viper
	cfg *Config
}

// NewRootCmd builds the tsig command tree with its own configuration
// registry.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:           "tsig",
		Short:         "Inspect the time index of a series.",
		Long:          `tsig summarizes, decomposes and extends the time index of a CSV time series.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default .tsig.yaml in . or $HOME)")
	flags.String("date-column", "", "Name of the date column (default: detected)")
	flags.String("value-column", "", "Name of the value column (default: first non-date column)")
	flags.String("class", "", "Force the index class: date, datetime, yearmonth or yearquarter")
	flags.String("date-format", "", "Extra Go time layout tried before the built-in ones")
	flags.String("delimiter", DefaultDelimiter, "CSV field delimiter")
	flags.String("log-level", DefaultLogLevel, "Log level: debug, info, warn or error")
	if err := a.v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("binding root flags: %v", err))
	}

	rootCmd.AddCommand(newSummaryCmd(a))
	rootCmd.AddCommand(newSignatureCmd(a))
	rootCmd.AddCommand(newFutureCmd(a))
	return rootCmd
}

// setup binds the command's own flags, resolves the configuration and
// applies the log level.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding %s flags: %w", cmd.Name(), err)
	}

	cfg, err := readConfig(a.v)
	if err != nil {
		return err
	}
	if !logger.SetLevel(cfg.LogLevel) {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	a.cfg = cfg
	logger.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "class", cfg.Class, "delimiter", cfg.Delimiter)
	return nil
}

// load reads the series in path and returns it with its index.
func (a *app) load(path string) (*timeseries.Series, *timeindex.Index, error) {
	opts, err := a.cfg.CSVOptions()
	if err != nil {
		return nil, nil, err
	}

	series, err := timeseries.LoadCSV(path, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", path, err)
	}
	idx, err := series.Index()
	if err != nil {
		return nil, nil, fmt.Errorf("indexing %s: %w", path, err)
	}

	logger.Info("loaded series", "path", path, "class", idx.Class().String(), "rows", idx.Len())
	return series, idx, nil
}

// Execute runs the tsig command tree.
func Execute() error {
	return NewRootCmd().Execute()
}
