package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paksafe/paksafe/datarecording"
)

var traceCmd = &cobra.Command{
	Use:   "trace [trace.sqlite3]",
	Short: "Summarize the runs stored in a recorded trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		// Opening a missing file would create an empty database.
		if _, err := os.Stat(args[0]); err != nil {
			return err
		}

		reader := datarecording.NewReader(args[0])
		defer reader.Close()

		return printRuns(cmd.Context(), cmd, reader)
	},
}

func printRuns(
	ctx context.Context,
	cmd *cobra.Command,
	reader datarecording.DataReader,
) error {
	runs, err := datarecording.ListRuns(ctx, reader)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tNAME\tVARIANT\tPERIOD\tTICKS\tFAULTS\tFINAL STATE\tCOUNT")

	for _, run := range runs {
		s, err := datarecording.Summarize(ctx, reader, run.ID)
		if err != nil {
			return err
		}

		state := s.FinalState
		if state == "" {
			state = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%dms\t%d\t%d\t%s\t%d\n",
			s.ID, s.Name, s.Variant, s.PeriodMs, s.Ticks, s.Faults,
			state, s.PackageCount)
	}

	return w.Flush()
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
