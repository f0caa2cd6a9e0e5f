package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paksafe/paksafe/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration run would use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(configPath, envFiles...)
		if err != nil {
			return err
		}

		data, err := cfg.Marshal()
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

func init() {
	addConfigFlags(configCmd)
	rootCmd.AddCommand(configCmd)
}
