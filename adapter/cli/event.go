package cli

import (
	"context"
	"fmt"
	"time"

	calendarCommands "github.com/felixgeelhaar/luna/internal/calendar/application/commands"
	calendarQueries "github.com/felixgeelhaar/luna/internal/calendar/application/queries"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	eventTitle       string
	eventStart       string
	eventEnd         string
	eventPriority    string
	eventDescription string
	eventLocation    string
	eventAllDay      bool
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage calendar events",
}

var eventCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event",
	Long: `Create a calendar event. An end at or before the start rolls the
end over to the next day.

Example:
  luna event create --title "Design review" --start "2026-09-01 14:00" --end "2026-09-01 15:00" --priority high`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		start, err := parseTimestamp(eventStart)
		if err != nil {
			return err
		}
		end, err := parseTimestamp(eventEnd)
		if err != nil {
			return err
		}

		result, err := app.CreateEventHandler.Handle(cmd.Context(), calendarCommands.CreateEventCommand{
			Title:       eventTitle,
			Start:       start,
			End:         end,
			Priority:    eventPriority,
			Description: eventDescription,
			Location:    eventLocation,
			IsAllDay:    eventAllDay,
		})
		if err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		fmt.Println("Event created!")
		fmt.Printf("  Title: %s\n", eventTitle)
		fmt.Printf("  ID: %s\n", result.EventID.String()[:8])
		return nil
	},
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all loaded events",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		events, err := app.ListEventsHandler.Handle(cmd.Context(), calendarQueries.ListEventsQuery{})
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println("No events loaded. Use --calendar or --seed.")
			return nil
		}
		for _, event := range events {
			fmt.Printf("%s  %s  ", event.ID().String()[:8], event.Start().Format("2006-01-02"))
			printEvent(event)
		}
		return nil
	},
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		id, err := resolveEventID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := app.DeleteEventHandler.Handle(cmd.Context(), calendarCommands.DeleteEventCommand{EventID: id}); err != nil {
			return err
		}
		fmt.Println("Event deleted.")
		return nil
	},
}

var eventUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an event by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		id, err := resolveEventID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		update := calendarCommands.UpdateEventCommand{EventID: id}
		if cmd.Flags().Changed("title") {
			update.Title = &eventTitle
		}
		if cmd.Flags().Changed("priority") {
			update.Priority = &eventPriority
		}
		if cmd.Flags().Changed("start") {
			start, err := parseTimestamp(eventStart)
			if err != nil {
				return err
			}
			update.Start = &start
		}
		if cmd.Flags().Changed("end") {
			end, err := parseTimestamp(eventEnd)
			if err != nil {
				return err
			}
			update.End = &end
		}
		if cmd.Flags().Changed("description") {
			update.Description = &eventDescription
		}
		if cmd.Flags().Changed("location") {
			update.Location = &eventLocation
		}

		if err := app.UpdateEventHandler.Handle(cmd.Context(), update); err != nil {
			return err
		}
		fmt.Println("Event updated.")
		return nil
	},
}

func init() {
	eventCreateCmd.Flags().StringVar(&eventTitle, "title", "", "event title (required)")
	eventCreateCmd.Flags().StringVar(&eventStart, "start", "", "start time, YYYY-MM-DD HH:MM (required)")
	eventCreateCmd.Flags().StringVar(&eventEnd, "end", "", "end time, YYYY-MM-DD HH:MM (required)")
	eventCreateCmd.Flags().StringVar(&eventPriority, "priority", "", "priority: low, medium, high")
	eventCreateCmd.Flags().StringVar(&eventDescription, "description", "", "description")
	eventCreateCmd.Flags().StringVar(&eventLocation, "location", "", "location")
	eventCreateCmd.Flags().BoolVar(&eventAllDay, "all-day", false, "all-day event")
	_ = eventCreateCmd.MarkFlagRequired("title")
	_ = eventCreateCmd.MarkFlagRequired("start")
	_ = eventCreateCmd.MarkFlagRequired("end")

	eventUpdateCmd.Flags().StringVar(&eventTitle, "title", "", "new title")
	eventUpdateCmd.Flags().StringVar(&eventStart, "start", "", "new start time, YYYY-MM-DD HH:MM")
	eventUpdateCmd.Flags().StringVar(&eventEnd, "end", "", "new end time, YYYY-MM-DD HH:MM")
	eventUpdateCmd.Flags().StringVar(&eventPriority, "priority", "", "new priority")
	eventUpdateCmd.Flags().StringVar(&eventDescription, "description", "", "new description")
	eventUpdateCmd.Flags().StringVar(&eventLocation, "location", "", "new location")

	eventCmd.AddCommand(eventCreateCmd)
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventUpdateCmd)
	eventCmd.AddCommand(eventDeleteCmd)
	AddCommand(eventCmd)
}

// parseTimestamp parses a "YYYY-MM-DD HH:MM" flag value in local time.
func parseTimestamp(value string) (time.Time, error) {
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected YYYY-MM-DD HH:MM", value)
	}
	return ts, nil
}

// resolveEventID accepts either a full uuid or the 8-character prefix the
// list output shows.
func resolveEventID(ctx context.Context, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	app := GetApp()
	events, err := app.ListEventsHandler.Handle(ctx, calendarQueries.ListEventsQuery{})
	if err != nil {
		return uuid.Nil, err
	}
	for _, event := range events {
		if event.ID().String()[:8] == raw {
			return event.ID(), nil
		}
	}
	return uuid.Nil, fmt.Errorf("no event with id %q", raw)
}
