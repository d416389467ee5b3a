// mindful-arcade is a terminal arcade of short brain-training games.
//
// Usage:
//
//	mindful-arcade                 open the game picker
//	mindful-arcade play wordle     jump straight into a game
//	mindful-arcade list            print the games
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mindful-arcade/internal/arcade"
	"mindful-arcade/internal/catalog"
	"mindful-arcade/internal/config"
	"mindful-arcade/internal/generate"
	"mindful-arcade/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	config    string
	seed      int64
	logPath   string
	reconcile bool
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "mindful-arcade",
		Short:         "Short brain-training games in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, f, "")
		},
	}
	root.PersistentFlags().StringVarP(&f.config, "config", "c", "", "YAML config file")
	root.PersistentFlags().Int64Var(&f.seed, "seed", 0, "random seed (0 picks one at random)")
	root.PersistentFlags().StringVar(&f.logPath, "log-file", "", "write JSON logs to this file")
	root.PersistentFlags().BoolVar(&f.reconcile, "reconcile-wordle", false, "score repeated Wordle letters by count")

	root.AddCommand(
		&cobra.Command{
			Use:   "play [game-id]",
			Short: "Open the picker, or a game directly",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				start := ""
				if len(args) == 1 {
					start = args[0]
				}
				return runPlay(cmd, f, start)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the games",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return listGames(cmd.OutOrStdout(), catalog.Default())
			},
		},
	)
	return root
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.Path = f.logPath
	}
	if cmd.Flags().Changed("reconcile-wordle") {
		cfg.Wordle.Reconcile = f.reconcile
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, f flags, start string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	if start == "" {
		start = cfg.StartGame
	}
	cat := catalog.Default()
	if start != "" {
		if _, ok := cat.Lookup(start); !ok {
			return fmt.Errorf("%w: %q (try 'mindful-arcade list')", catalog.ErrUnknownGame, start)
		}
	}

	log, err := logging.New(cfg.Log, "")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rng, err := generate.NewRand(cfg.Seed)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := arcade.New(screen, arcade.Options{
		Catalog:  cat,
		Settings: catalog.Settings{ReconcileWordle: cfg.Wordle.Reconcile},
		Rand:     rng,
		Log:      log,
		Start:    start,
	})
	log.Info("arcade started", zap.Int64("seed", cfg.Seed), zap.String("start", start))
	err = a.Run(ctx)
	screen.Fini()
	log.Info("arcade stopped", zap.Object("runs", a.RunLog()))

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if a.RunLog().Rounds() > 0 {
		for _, line := range a.RunLog().Summary(time.Now()) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	return nil
}

func listGames(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGAME\tCATEGORY\tDIFFICULTY\tLEVELS")
	for _, g := range cat.List() {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%d\n", g.ID, g.Emoji, g.Title, g.Category, g.Difficulty, g.MaxLevel)
	}
	return tw.Flush()
}
