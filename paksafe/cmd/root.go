// Package cmd provides the command-line interface for PakSafe.
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/instrumentation/logging"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paksafe",
	Short: "PakSafe controls a package locker with a latch, a display and an RFID reader.",
	Long: `PakSafe controls a package locker. The run command drives the latch ` +
		`and the sensors through the GPIO pins of this host, simulate replays ` +
		`a scenario file on simulated hardware and table prints the ` +
		`transition rules of a controller variant.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log every state change")
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Buffered recordings are flushed before the process exits.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "paksafe: ", log.LstdFlags)
}

// logHooks returns the hooks that print activity to the standard error.
// Faults are always printed; state changes only with --verbose.
func logHooks() []hooking.Hook {
	logger := newLogger()
	hooks := []hooking.Hook{logging.NewFaultLogger(logger)}

	if verbose {
		hooks = append(hooks, logging.NewStateLogger(logger))
	}

	return hooks
}
