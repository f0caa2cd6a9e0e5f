package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/paksafe/paksafe/config"
	"github.com/paksafe/paksafe/display"
	"github.com/paksafe/paksafe/gpio"
	"github.com/paksafe/paksafe/locker"
	"github.com/paksafe/paksafe/rfid"
	"github.com/paksafe/paksafe/scheduler"
	"github.com/paksafe/paksafe/timing"
)

var (
	configPath string
	envFiles   []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the controller on the GPIO pins of this host",
	Long: `Run the controller on the GPIO pins named in the configuration. ` +
		`Display messages are printed to the standard output. The controller ` +
		`runs until it is interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(configPath, envFiles...)
		if err != nil {
			return err
		}

		return runController(cmd.Context(), cfg)
	},
}

func init() {
	addConfigFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"YAML configuration file")
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil,
		".env files read for PAKSAFE_* settings")
}

func runController(ctx context.Context, cfg config.Config) error {
	in, err := gpio.NewPeriphInput(cfg.Pins.Input)
	if err != nil {
		return err
	}

	out, err := gpio.NewPeriphOutput(cfg.Pins.Output)
	if err != nil {
		return err
	}

	variant := cfg.LockerVariant()
	logger := newLogger()

	var transceiver rfid.Transceiver = rfid.Silent{}
	if variant == locker.VariantRFID {
		logger.Printf("no RFID reader driver is linked in, tags will not be read")
	}

	c := locker.MakeBuilder().
		WithVariant(variant).
		WithCredentials(cfg.LockerCredentials()).
		WithOutput(gpio.NewEncoder(out, 0).DriveLevel(variant.DrivesIndicator())).
		WithDisplay(display.NewWriterDisplay(os.Stdout, "lcd")).
		WithTransceiver(transceiver).
		Build("PakSafe")

	loop := scheduler.MakeBuilder().
		WithInput(in).
		WithDecoder(cfg.Decoder()).
		WithStepper(c).
		WithTimer(timing.NewHardwareTimer()).
		WithPeriod(cfg.TickPeriodMs).
		Build("Loop")

	for _, h := range logHooks() {
		c.AcceptHook(h)
		loop.AcceptHook(h)
	}

	logger.Printf("running %s variant, tick %d ms", variant, cfg.TickPeriodMs)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Printf("stopped after %d ticks", loop.Ticks())
		return nil
	}

	return err
}
