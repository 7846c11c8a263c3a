// Package cli implements Luna's command surface. It is the host around the
// assistant core: it owns the event list for the invocation and turns the
// core's plain results into terminal output.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	calendarFile string
	seedCount    int
	logger       *slog.Logger
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "luna",
	Short: "Luna - calendar assistant",
	Long: `Luna is a calendar assistant that finds free slots, proposes
meeting times and focus blocks, and turns quick natural-language
notes into calendar entries.

Events live only for the invocation: load them with --calendar
or generate demo data with --seed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger == nil {
			logger = slog.Default()
		}
		ctx := cmd.Context()
		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		cmd.SetContext(context.WithValue(ctx, commandContextKey{}, info))
		logger.Info("command start",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
		)

		return loadEvents(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		logger.Info("command end",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
}

// loadEvents fills the invocation's event store from the --calendar and
// --seed flags.
func loadEvents(ctx context.Context) error {
	app := GetApp()
	if app == nil {
		return nil
	}
	if calendarFile != "" {
		if _, err := app.ImportCalendar(ctx, calendarFile); err != nil {
			return fmt.Errorf("failed to load calendar: %w", err)
		}
	}
	if seedCount > 0 {
		if err := app.SeedDemoEvents(ctx, seedCount, time.Now()); err != nil {
			return err
		}
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&calendarFile, "calendar", "", "load events from an .ics file")
	rootCmd.PersistentFlags().IntVar(&seedCount, "seed", 0, "load N generated demo events")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
