package cli

import (
	"fmt"
	"time"

	assistantQueries "github.com/felixgeelhaar/luna/internal/assistant/application/queries"
	"github.com/spf13/cobra"
)

var (
	suggestDuration     int
	suggestFrom         string
	suggestParticipants int
	suggestFocusDate    string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate meeting and focus suggestions",
	Long: `Run a full suggestion pass over the loaded events: one proposed
meeting time within the next five days and one focus block for
today. Results are recomputed from scratch every run; running the
command again is the "regenerate" action.

Examples:
  luna suggest --seed 15
  luna suggest meeting --calendar work.ics --duration 60
  luna suggest focus --calendar work.ics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		derived, err := app.DeriveSuggestionsHandler.Handle(cmd.Context(), assistantQueries.DeriveSuggestionsQuery{
			Settings: app.Settings,
			Now:      time.Now(),
		})
		if err != nil {
			return err
		}

		if len(derived.Suggestions) == 0 && len(derived.FocusBlocks) == 0 {
			fmt.Println("No suggestions available right now. Run again after your calendar changes.")
			return nil
		}

		for _, suggestion := range derived.Suggestions {
			fmt.Printf("Meeting: %s, %s\n",
				suggestion.Start().Format("Mon, Jan 2 2006"),
				formatEventTime(suggestion),
			)
		}
		for _, block := range derived.FocusBlocks {
			fmt.Printf("Focus:   %s, %s - %s\n",
				block.Start().Format("Mon, Jan 2 2006"),
				block.Start().Format("3:04 PM"),
				block.End().Format("3:04 PM"),
			)
		}
		return nil
	},
}

var suggestMeetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Suggest a meeting time",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		startDate := time.Now()
		if suggestFrom != "" {
			parsed, err := resolveDate(suggestFrom)
			if err != nil {
				return err
			}
			startDate = parsed
		}

		slot, err := app.SuggestMeetingHandler.Handle(cmd.Context(), assistantQueries.SuggestMeetingQuery{
			Settings:         app.Settings,
			Duration:         time.Duration(suggestDuration) * time.Minute,
			StartDate:        startDate,
			ParticipantCount: suggestParticipants,
		})
		if err != nil {
			return err
		}
		if slot == nil {
			fmt.Println("No meeting time available in the next 5 days.")
			return nil
		}

		fmt.Printf("Suggested meeting: %s, %s - %s\n",
			slot.Start.Format("Mon, Jan 2 2006"),
			slot.Start.Format("3:04 PM"),
			slot.End.Format("3:04 PM"),
		)
		return nil
	},
}

var suggestFocusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Suggest a focus block",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		date, err := resolveDate(suggestFocusDate)
		if err != nil {
			return err
		}

		blocks, err := app.SuggestFocusHandler.Handle(cmd.Context(), assistantQueries.SuggestFocusQuery{
			Settings:  app.Settings,
			StartDate: date,
		})
		if err != nil {
			return err
		}
		if len(blocks) == 0 {
			fmt.Println("No conflict-free focus block for that day.")
			return nil
		}

		for _, block := range blocks {
			fmt.Printf("%s: %s, %s - %s\n",
				block.Title(),
				block.Start().Format("Mon, Jan 2 2006"),
				block.Start().Format("3:04 PM"),
				block.End().Format("3:04 PM"),
			)
		}
		return nil
	},
}

func init() {
	suggestMeetingCmd.Flags().IntVar(&suggestDuration, "duration", 0, "meeting duration in minutes (default: configured preference)")
	suggestMeetingCmd.Flags().StringVar(&suggestFrom, "from", "", "first day to consider (YYYY-MM-DD, default today)")
	suggestMeetingCmd.Flags().IntVar(&suggestParticipants, "participants", 1, "number of participants")
	suggestFocusCmd.Flags().StringVar(&suggestFocusDate, "date", "", "day to place the block on (YYYY-MM-DD, default today)")

	suggestCmd.AddCommand(suggestMeetingCmd)
	suggestCmd.AddCommand(suggestFocusCmd)
	AddCommand(suggestCmd)
}
