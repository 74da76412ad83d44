package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/mordilloSan/go-logger/logger"
	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/desktop"
	"github.com/mvidal/launchbox/internal/reconcile"
	"github.com/mvidal/launchbox/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch desktop entry directories and reconcile on changes",
	Long: `Watch the desktop entry directories and run a reconcile pass whenever
.desktop files change, after a debounce interval. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("debounce", 2000, "Quiet period in milliseconds before reconciling")
}

func runWatch(cmd *cobra.Command, args []string) error {
	debounceMs, _ := cmd.Flags().GetInt("debounce")

	scanner := desktop.NewScanner()
	rec := reconcile.New(scanner, openStore())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(scanner.Dirs(), time.Duration(debounceMs)*time.Millisecond, func() {
		res := rec.Reconcile()
		logger.InfoKV("reconcile complete", "imported", res.Imported, "removed", res.Removed)
	})

	err := w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
