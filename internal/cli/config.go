package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sartorproj/gotimeindex/timeindex"
	"github.com/sartorproj/gotimeindex/timeseries"
	"github.com/spf13/viper"
)

// Config is the resolved configuration of a tsig invocation. Values merge
// defaults, the config file, TSIG_* environment variables and flags.
type Config struct {
	DateColumn  string   `mapstructure:"date-column"`
	ValueColumn string   `mapstructure:"value-column"`
	Class       string   `mapstructure:"class"`
	DateFormat  string   `mapstructure:"date-format"`
	Delimiter   string   `mapstructure:"delimiter"`
	Horizon     int      `mapstructure:"horizon"`
	Skip        []string `mapstructure:"skip"`
	Output      string   `mapstructure:"output"`
	LogLevel    string   `mapstructure:"log-level"`
}

// Defaults.
const (
	DefaultHorizon   = 12
	DefaultDelimiter = ","
	DefaultLogLevel  = "info"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("horizon", DefaultHorizon)
	v.SetDefault("delimiter", DefaultDelimiter)
	v.SetDefault("log-level", DefaultLogLevel)
}

// readConfig loads the config file, if any, and unmarshals the merged
// settings.
func readConfig(v *viper.Viper) (*Config, error) {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".tsig")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("TSIG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return cfg, nil
}

// IndexClass returns the forced index class, or zero to detect it.
func (c *Config) IndexClass() (timeindex.Class, error) {
	if c.Class == "" {
		return 0, nil
	}
	return timeindex.ParseClass(c.Class)
}

// CSVOptions maps the configuration onto CSV loading options.
func (c *Config) CSVOptions() (*timeseries.CSVOptions, error) {
	opts := timeseries.DefaultCSVOptions()
	opts.DateColumn = c.DateColumn
	opts.ValueColumn = c.ValueColumn
	opts.DateFormat = c.DateFormat

	class, err := c.IndexClass()
	if err != nil {
		return nil, err
	}
	opts.Class = class

	delim, err := parseDelimiter(c.Delimiter)
	if err != nil {
		return nil, err
	}
	opts.Delimiter = delim
	return opts, nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}
