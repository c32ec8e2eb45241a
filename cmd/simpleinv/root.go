package main

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"simpleinv/internal/config"
	"simpleinv/internal/demo"
)

const (
	flagCapacity  = "capacity"
	flagThreshold = "threshold"
	flagRows      = "rows"
	flagCols      = "cols"
	flagLogLevel  = "log-level"
)

// newRootCmd wires the demos. Transcript goes to out, logs go to logOut.
func newRootCmd(out, logOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "simpleinv",
		Short:        "Grocery inventory and weather grid demonstrations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(cmd, logOut)
			if err != nil {
				return err
			}
			if err := demo.RunInventory(out, cfg, logger); err != nil {
				return err
			}
			return demo.RunWeather(out, logger)
		},
	}

	flags := root.PersistentFlags()
	flags.Int(flagCapacity, 0, "initial dense capacity (env INVENTORY_INITIAL_CAPACITY)")
	flags.Int(flagThreshold, 0, "relocate items with quantity <= threshold (env INVENTORY_RARE_THRESHOLD)")
	flags.Int(flagRows, 0, "grid report rows (env INVENTORY_GRID_ROWS)")
	flags.Int(flagCols, 0, "grid report columns (env INVENTORY_GRID_COLS)")
	flags.String(flagLogLevel, "", "log level (env LOG_LEVEL)")

	root.AddCommand(
		&cobra.Command{
			Use:   "inventory",
			Short: "Run the grocery inventory demonstration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := setup(cmd, logOut)
				if err != nil {
					return err
				}
				return demo.RunInventory(out, cfg, logger)
			},
		},
		&cobra.Command{
			Use:   "weather",
			Short: "Run the weather grid demonstration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, logger, err := setup(cmd, logOut)
				if err != nil {
					return err
				}
				return demo.RunWeather(out, logger)
			},
		},
	)
	return root
}

// setup loads the environment config, applies any flags that were set and
// builds the run logger.
func setup(cmd *cobra.Command, logOut io.Writer) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*int{
		flagCapacity:  &cfg.InitialCapacity,
		flagThreshold: &cfg.RareThreshold,
		flagRows:      &cfg.GridRows,
		flagCols:      &cfg.GridCols,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return config.Config{}, zerolog.Nop(), err
		}
		*dst = v
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(flagLogLevel)
	}
	cfg = cfg.Normalize()

	level, err := cfg.Level()
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: logOut, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	return cfg, logger, nil
}
