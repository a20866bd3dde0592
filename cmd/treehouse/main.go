package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"treehouse-guestlist/internal/config"
	"treehouse-guestlist/internal/console"
	"treehouse-guestlist/internal/handler"
	"treehouse-guestlist/internal/registry"
)

var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.LoadConfig()

	cmd := &cobra.Command{
		Use:     "treehouse",
		Short:   "Keep the treehouse guest list",
		Long:    `Reads visitor names from standard input, greets the ones on the list and puts newcomers on probation.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&cfg.Store, "store", cfg.Store, "visitor store: memory or sqlite")
	cmd.Flags().StringVar(&cfg.DumpFormat, "dump-format", cfg.DumpFormat, "final list format: text or json")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	logger, err := newLogger(cfg, errOut)
	if err != nil {
		return err
	}

	if err := console.CheckFormat(cfg.DumpFormat); err != nil {
		return err
	}

	store, err := registry.NewStore(cfg.Store)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	reg, err := registry.New(store, logger, registry.DefaultSeed()...)
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("initializing registry: %w", err)
	}
	defer func() {
		if err := reg.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing registry")
		}
	}()

	doorKeeper := handler.NewDoorKeeper(reg, out, logger)
	session := console.NewSession(in, out, doorKeeper, logger)

	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("running session: %w", err)
	}

	visitors, err := reg.All()
	if err != nil {
		return err
	}
	return console.Dump(out, visitors, cfg.DumpFormat)
}

func newLogger(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	level := zerolog.WarnLevel
	if cfg.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		level = parsed
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
