package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paksafe/paksafe/datarecording"
	"github.com/paksafe/paksafe/scenario"
)

var recordPath string

var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario.yaml]",
	Short: "Replay a scenario on simulated hardware",
	Long: `Replay a scenario on simulated hardware and check its expectations. ` +
		`One line is printed per tick. The command fails at the first ` +
		`expectation that does not hold.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		runner := scenario.NewRunner(s)
		for _, h := range logHooks() {
			runner.AcceptHook(h)
		}

		var (
			recorder datarecording.DataRecorder
			trace    *datarecording.TickRecorder
		)

		if cmd.Flags().Changed("record") {
			recorder = datarecording.New(recordPath)
			defer recorder.Close()

			name := s.Name
			if name == "" {
				name = args[0]
			}

			trace = datarecording.NewTickRecorder(recorder,
				datarecording.RunEntry{
					Name:     name,
					Variant:  s.LockerVariant().String(),
					PeriodMs: runner.Period(),
				})
			runner.AcceptHook(trace)
		}

		records, err := runner.Run(cmd.Context())

		out := cmd.OutOrStdout()
		for _, r := range records {
			fmt.Fprintln(out, r)
		}

		if trace != nil {
			if serr := printTraceSummary(cmd.Context(), out, recorder,
				trace.RunID()); serr != nil && err == nil {
				err = serr
			}
		}

		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s: %d ticks, all expectations hold\n",
			args[0], len(records))

		return nil
	},
}

// printTraceSummary reads the recorded run back from the trace tables.
func printTraceSummary(
	ctx context.Context,
	out io.Writer,
	recorder datarecording.DataRecorder,
	runID string,
) error {
	recorder.Flush()

	summary, err := datarecording.Summarize(ctx, recorder.Reader(), runID)
	if err != nil {
		return err
	}

	tables := recorder.ListTables()
	sort.Strings(tables)

	fmt.Fprintf(out, "recorded run %s into %s: %s\n",
		runID, strings.Join(tables, ", "), summary)

	return nil
}

func init() {
	simulateCmd.Flags().StringVar(&recordPath, "record", "",
		"record every tick into NAME.sqlite3; an empty name picks one")
	rootCmd.AddCommand(simulateCmd)
}
