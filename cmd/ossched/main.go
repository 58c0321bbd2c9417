// Command ossched runs the OS process-scheduling simulator against a
// single configuration file, printing (or appending, per the configured
// log target) the resulting event trace.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corrigan-b/ossched"
	"github.com/corrigan-b/ossched/internal/logging"
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ossched <config-file>")
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.DefaultConfig())
	logging.SetDefault(logger)

	configPath := flag.Arg(0)
	if err := ossched.RunFromFiles(configPath, os.Stdout); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}
