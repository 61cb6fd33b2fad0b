package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/randomtoy/ideawheel/internal/config"
)

var (
	verbose     bool
	profilePath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Spin the idea wheel from the terminal",
	Long: `Pick one of several options by spinning a wheel of equal sections.

Available subcommands:
  spin     - spin once over the given options and print the winner
  simulate - run many spins in parallel and report how evenly they landed`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "YAML wheel profile (or set WHEEL_PROFILE env)")

	spinCmd.Flags().BoolVar(&spinFast, "fast", false, "Run the spin ten times faster")

	simulateCmd.Flags().IntVar(&simItems, "items", 6, "Number of sections")
	simulateCmd.Flags().IntVar(&simSpins, "spins", 100000, "Number of spins")
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 4, "Parallel workers")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 1, "Random seed")

	rootCmd.AddCommand(spinCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// wheelProfile resolves --profile, then WHEEL_PROFILE, then the defaults.
func wheelProfile() (config.Wheel, error) {
	path := profilePath
	if path == "" {
		path = os.Getenv("WHEEL_PROFILE")
	}
	if path == "" {
		return config.DefaultWheel(), nil
	}
	w, err := config.LoadWheelProfile(path)
	if err != nil {
		return config.Wheel{}, fmt.Errorf("load profile: %w", err)
	}
	return w, nil
}
