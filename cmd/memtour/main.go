package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"memtour/internal/config"
	"memtour/internal/lessons"
	"memtour/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand, built in PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "memtour",
		Short: "memtour - small programs about memory, lifetimes and aliasing",
		Long: `memtour runs standalone lessons on how names relate to storage:
read-only bindings, storage duration, pointer mechanics, value vs reference
passing and object construction/destruction.

Run a lesson by name, or "memtour all" to run them in order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to YAML config")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	for _, l := range lessons.All() {
		cmd.AddCommand(a.lessonCmd(l))
	}
	cmd.AddCommand(a.allCmd(), a.listCmd())
	return cmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger

	a.logger.Debug("memtour starting",
		zap.String("config", a.configPath),
		zap.String("go", runtime.Version()),
	)
	return nil
}

func (a *app) env(cmd *cobra.Command) *lessons.Env {
	return &lessons.Env{
		Out:    cmd.OutOrStdout(),
		Log:    a.logger,
		Config: a.cfg,
	}
}

func (a *app) lessonCmd(l lessons.Lesson) *cobra.Command {
	return &cobra.Command{
		Use:   l.Name,
		Short: l.Summary,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return lessons.Run(l, a.env(cmd))
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every lesson in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, l := range lessons.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "\n########## %s ##########\n", l.Name); err != nil {
					return err
				}
				if err := lessons.Run(l, a.env(cmd)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, l := range lessons.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", l.Name, l.Summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
