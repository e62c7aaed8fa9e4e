// fractalbench benchmarks the fractal frame encoder against reference
// encoder models and gates the result on a target latency.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emergingrobotics/go-fractal/pkg/bench"
)

// Version information (set by ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Exit codes: a failed threshold gate is a reportable outcome, a bad
// config is an invocation error.
const (
	exitOK     = 0
	exitFail   = 1
	exitConfig = 2
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fractalbench",
		Short: "Latency benchmark for the fractal frame encoder",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newRunCommand(), newSweepCommand(), newVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an execution error to the process exit code.
func exitCode(err error) int {
	var cerr *bench.ConfigError
	if errors.As(err, &cerr) {
		return exitConfig
	}
	if errors.Is(err, errGateFailed) {
		return exitFail
	}
	return exitConfig
}

var errGateFailed = fmt.Errorf("latency target missed")
