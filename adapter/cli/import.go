package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.ics>",
	Short: "Import events from an iCalendar file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		count, err := app.ImportCalendar(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to import calendar: %w", err)
		}

		fmt.Printf("Imported %d events from %s\n", count, args[0])
		return nil
	},
}

func init() {
	AddCommand(importCmd)
}
