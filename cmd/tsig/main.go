// Command tsig inspects the time index of a CSV time series.
package main

import (
	"os"

	"github.com/sartorproj/gotimeindex/internal/cli"
	"github.com/sartorproj/gotimeindex/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error("tsig failed", "error", err)
		os.Exit(1)
	}
}
