package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paksafe/paksafe/locker"
)

var tableVariant string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the transition table of a controller variant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		v, err := locker.ParseVariant(tableVariant)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FROM\tGUARD\tTO\tEFFECT")

		for _, r := range locker.TransitionTable(v) {
			effect := r.Effect
			if effect == "" {
				effect = "-"
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.From, r.Guard, r.To, effect)
		}

		return w.Flush()
	},
}

func init() {
	tableCmd.Flags().StringVar(&tableVariant, "variant", "base",
		"controller variant, base or rfid")
	rootCmd.AddCommand(tableCmd)
}
