package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidClockTime       = errors.New("clock time must be zero-padded 24-hour HH:MM")
	ErrInvalidDuration        = errors.New("meeting duration must be one of 15, 30, 45, 60, 90, 120")
	ErrInvalidFocusPreference = errors.New("invalid focus time preference")
)

// FocusPreference selects where the daily focus block candidate is placed.
type FocusPreference string

const (
	FocusPreferenceMorning   FocusPreference = "morning"
	FocusPreferenceAfternoon FocusPreference = "afternoon"
	FocusPreferenceCustom    FocusPreference = "custom"
)

// IsValid checks if the preference is supported.
func (p FocusPreference) IsValid() bool {
	switch p {
	case FocusPreferenceMorning, FocusPreferenceAfternoon, FocusPreferenceCustom:
		return true
	default:
		return false
	}
}

// MeetingDurations is the enumerated choice set for preferred meeting
// durations, in minutes.
var MeetingDurations = []int{15, 30, 45, 60, 90, 120}

var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ClockRange is a start/end pair of "HH:MM" clock times.
type ClockRange struct {
	Start string
	End   string
}

// WorkingHours is the daily window during which meetings and focus time may
// be scheduled.
type WorkingHours struct {
	Start string
	End   string
}

// Settings is the complete suggestion configuration. It is treated as an
// immutable record: updates go through Merge, which returns a new record.
type Settings struct {
	EnableFocusTime          bool
	EnableMeetingSuggestions bool
	EnablePriorityAssignment bool
	WorkingHours             WorkingHours
	PreferredMeetingDuration int
	FocusTimePreference      FocusPreference
	CustomFocusTimes         []ClockRange
}

// DefaultSettings returns the assistant's out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		EnableFocusTime:          true,
		EnableMeetingSuggestions: true,
		EnablePriorityAssignment: true,
		WorkingHours:             WorkingHours{Start: "09:00", End: "17:00"},
		PreferredMeetingDuration: 30,
		FocusTimePreference:      FocusPreferenceMorning,
	}
}

// Partial is a settings update. Nil fields leave the corresponding setting
// untouched, so a zero Partial is a no-op.
type Partial struct {
	EnableFocusTime          *bool
	EnableMeetingSuggestions *bool
	EnablePriorityAssignment *bool
	WorkingHours             *WorkingHours
	PreferredMeetingDuration *int
	FocusTimePreference      *FocusPreference
	CustomFocusTimes         *[]ClockRange
}

// Merge applies a partial update onto the settings and returns the resulting
// complete record. The receiver is never modified.
func (s Settings) Merge(update Partial) Settings {
	merged := s
	if update.EnableFocusTime != nil {
		merged.EnableFocusTime = *update.EnableFocusTime
	}
	if update.EnableMeetingSuggestions != nil {
		merged.EnableMeetingSuggestions = *update.EnableMeetingSuggestions
	}
	if update.EnablePriorityAssignment != nil {
		merged.EnablePriorityAssignment = *update.EnablePriorityAssignment
	}
	if update.WorkingHours != nil {
		merged.WorkingHours = *update.WorkingHours
	}
	if update.PreferredMeetingDuration != nil {
		merged.PreferredMeetingDuration = *update.PreferredMeetingDuration
	}
	if update.FocusTimePreference != nil {
		merged.FocusTimePreference = *update.FocusTimePreference
	}
	if update.CustomFocusTimes != nil {
		merged.CustomFocusTimes = append([]ClockRange(nil), (*update.CustomFocusTimes)...)
	}
	return merged
}

// Validate checks the settings invariants. The configuration surface calls
// this before handing settings to the heuristics, which assume a valid record.
func (s Settings) Validate() error {
	for _, clock := range []string{s.WorkingHours.Start, s.WorkingHours.End} {
		if !clockTimePattern.MatchString(clock) {
			return fmt.Errorf("working hours %q: %w", clock, ErrInvalidClockTime)
		}
	}
	for _, custom := range s.CustomFocusTimes {
		for _, clock := range []string{custom.Start, custom.End} {
			if !clockTimePattern.MatchString(clock) {
				return fmt.Errorf("custom focus time %q: %w", clock, ErrInvalidClockTime)
			}
		}
	}
	if !validDuration(s.PreferredMeetingDuration) {
		return fmt.Errorf("duration %d: %w", s.PreferredMeetingDuration, ErrInvalidDuration)
	}
	if !s.FocusTimePreference.IsValid() {
		return fmt.Errorf("preference %q: %w", s.FocusTimePreference, ErrInvalidFocusPreference)
	}
	return nil
}

func validDuration(minutes int) bool {
	for _, d := range MeetingDurations {
		if minutes == d {
			return true
		}
	}
	return false
}
