package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	calendarCommands "github.com/felixgeelhaar/luna/internal/calendar/application/commands"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Quick add an event with natural language",
	Long: `Quickly add an event using natural language.

The text is parsed to extract:
- Title: "meeting with X" / "call with X", or the first few words
- Date: "tomorrow" or "next week" (otherwise today)
- Time: "at 3pm", "at 14:30" (one hour long), or "all day"
- Priority: keywords like urgent, deadline, optional, coffee

Examples:
  luna add "Call with Bob tomorrow at 3pm"
  luna add "Team sync next week at 10:30am"
  luna add "Conference all day tomorrow"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		input := strings.Join(args, " ")
		result, err := app.QuickAddHandler.Handle(cmd.Context(), calendarCommands.QuickAddCommand{
			Text:     input,
			Now:      time.Now(),
			Settings: app.Settings,
		})
		if err != nil {
			if errors.Is(err, calendarCommands.ErrUnparseableInput) {
				fmt.Println("Couldn't process input. Try something like \"Call with Bob tomorrow at 3pm\".")
				return nil
			}
			return err
		}

		draft := result.Draft
		fmt.Println("Event created!")
		fmt.Printf("  Title: %s\n", draft.Title)
		fmt.Printf("  ID: %s\n", result.EventID.String()[:8])
		if draft.IsAllDay {
			fmt.Printf("  When: %s, all day\n", draft.Start.Format("Mon, Jan 2 2006"))
		} else {
			fmt.Printf("  When: %s, %s - %s\n",
				draft.Start.Format("Mon, Jan 2 2006"),
				draft.Start.Format("3:04 PM"),
				draft.End.Format("3:04 PM"),
			)
		}
		fmt.Printf("  Priority: %s\n", draft.Priority)
		return nil
	},
}

func init() {
	AddCommand(addCmd)
}
