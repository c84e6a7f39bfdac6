// Command composedemo walks through each compose primitive and logs what it does.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/compose/core/config"
	"github.com/dmitrymomot/compose/core/logger"
)

// demoConfig is read from COMPOSE_* variables, a .env file, or a YAML file
// given with --config. Defaults live in withDefaults rather than envDefault
// tags so that values from the YAML file are not overwritten.
type demoConfig struct {
	LogLevel  string `yaml:"log_level" env:"COMPOSE_LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" env:"COMPOSE_LOG_FORMAT" validate:"omitempty,oneof=text json"`
	AppName   string `yaml:"app_name" env:"COMPOSE_APP_NAME"`
}

func (c demoConfig) withDefaults() demoConfig {
	if c.LogLevel == "" {
		c.LogLevel = "debug"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.AppName == "" {
		c.AppName = "composedemo"
	}
	return c
}

type demo struct {
	name  string
	short string
	run   func(ctx context.Context, log *slog.Logger) error
}

// demoList returns the demonstrations in run order.
// Chain spans are exported to traceOut.
func demoList(traceOut func() io.Writer) []demo {
	return []demo{
		{"observer", "Broadcast events to attached observers", runObserver},
		{"chain", "Pass a request along a chain of handlers", func(ctx context.Context, log *slog.Logger) error {
			return runChain(ctx, log, traceOut())
		}},
		{"command", "Dispatch commands bound to remote-control keys", runCommand},
		{"workflow", "Move a blog post through draft, review and publish", runWorkflow},
		{"strategy", "Swap a duck's fly behavior at runtime", runStrategy},
		{"cell", "Share one lazily built value across goroutines", runCell},
		{"builder", "Assemble products step by step through a director", runBuilder},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile  string
		trace    bool
		log      *slog.Logger
		traceOut io.Writer = io.Discard
	)

	root := &cobra.Command{
		Use:          "composedemo",
		Short:        "Demonstrations of the compose primitives",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			log = newLogger(cfg, cmd)
			if trace {
				traceOut = cmd.OutOrStdout()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file (env variables override it)")
	root.PersistentFlags().BoolVar(&trace, "trace", false, "print chain spans as JSON")

	demos := demoList(func() io.Writer { return traceOut })
	for _, d := range demos {
		root.AddCommand(&cobra.Command{
			Use:   d.name,
			Short: d.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return d.run(cmd.Context(), log.With(logger.Component(d.name)))
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every demonstration in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range demos {
				log.Info("running demo", logger.Action(d.name))
				if err := d.run(cmd.Context(), log.With(logger.Component(d.name))); err != nil {
					return fmt.Errorf("%s: %w", d.name, err)
				}
			}
			return nil
		},
	})

	return root
}

func loadConfig(path string) (demoConfig, error) {
	var cfg demoConfig
	var err error
	if path != "" {
		err = config.LoadFile(path, &cfg)
	} else {
		err = config.Load(&cfg)
	}
	if err != nil {
		return cfg, err
	}
	return cfg.withDefaults(), nil
}

func newLogger(cfg demoConfig, cmd *cobra.Command) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(cmd.OutOrStdout()),
		logger.WithAttr(slog.String("app", cfg.AppName)),
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}
