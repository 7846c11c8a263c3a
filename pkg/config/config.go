// Package config loads Luna's host configuration from the environment, with
// an optional YAML file for the suggestion settings block.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ClockRange is a start/end pair of "HH:MM" clock times.
type ClockRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// SuggestionConfig is the raw suggestion settings block. The application
// container validates it and converts it into the assistant's settings
// record.
type SuggestionConfig struct {
	EnableFocusTime          bool         `yaml:"enable_focus_time"`
	EnableMeetingSuggestions bool         `yaml:"enable_meeting_suggestions"`
	EnablePriorityAssignment bool         `yaml:"enable_priority_assignment"`
	WorkingHoursStart        string       `yaml:"working_hours_start"`
	WorkingHoursEnd          string       `yaml:"working_hours_end"`
	PreferredMeetingDuration int          `yaml:"preferred_meeting_duration"`
	FocusTimePreference      string       `yaml:"focus_time_preference"`
	CustomFocusTimes         []ClockRange `yaml:"custom_focus_times"`
}

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string `yaml:"-"`
	LogLevel  string `yaml:"-"`
	LogFormat string `yaml:"-"`

	// CalendarFile is an optional .ics file loaded at startup.
	CalendarFile string `yaml:"calendar_file"`

	Suggestions SuggestionConfig `yaml:"suggestions"`
}

// Default returns the built-in development configuration.
func Default() *Config {
	return &Config{
		AppEnv:    "development",
		LogLevel:  "info",
		LogFormat: "text",
		Suggestions: SuggestionConfig{
			EnableFocusTime:          true,
			EnableMeetingSuggestions: true,
			EnablePriorityAssignment: true,
			WorkingHoursStart:        "09:00",
			WorkingHoursEnd:          "17:00",
			PreferredMeetingDuration: 30,
			FocusTimePreference:      "morning",
		},
	}
}

// Load loads configuration from environment variables, honoring a .env file
// when present. When LUNA_CONFIG names a YAML file, its values are applied
// first and the environment overrides them.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		CalendarFile: getEnv("LUNA_CALENDAR", ""),
		Suggestions: SuggestionConfig{
			EnableFocusTime:          true,
			EnableMeetingSuggestions: true,
			EnablePriorityAssignment: true,
			WorkingHoursStart:        "09:00",
			WorkingHoursEnd:          "17:00",
			PreferredMeetingDuration: 30,
			FocusTimePreference:      "morning",
		},
	}

	if path := getEnv("LUNA_CONFIG", ""); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applySuggestionEnv()

	return cfg, nil
}

// IsDevelopment returns true when running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applySuggestionEnv() {
	s := &c.Suggestions
	s.EnableFocusTime = getBoolEnv("LUNA_ENABLE_FOCUS_TIME", s.EnableFocusTime)
	s.EnableMeetingSuggestions = getBoolEnv("LUNA_ENABLE_MEETING_SUGGESTIONS", s.EnableMeetingSuggestions)
	s.EnablePriorityAssignment = getBoolEnv("LUNA_ENABLE_PRIORITY_ASSIGNMENT", s.EnablePriorityAssignment)
	s.WorkingHoursStart = getEnv("LUNA_WORKING_HOURS_START", s.WorkingHoursStart)
	s.WorkingHoursEnd = getEnv("LUNA_WORKING_HOURS_END", s.WorkingHoursEnd)
	s.PreferredMeetingDuration = getIntEnv("LUNA_MEETING_DURATION", s.PreferredMeetingDuration)
	s.FocusTimePreference = getEnv("LUNA_FOCUS_PREFERENCE", s.FocusTimePreference)

	if raw := getEnv("LUNA_CUSTOM_FOCUS_TIMES", ""); raw != "" {
		s.CustomFocusTimes = parseClockRanges(raw)
	}
}

// parseClockRanges parses "09:00-11:00,13:00-14:30" into ordered ranges.
// Malformed entries are dropped.
func parseClockRanges(raw string) []ClockRange {
	ranges := make([]ClockRange, 0)
	for _, entry := range strings.Split(raw, ",") {
		start, end, ok := strings.Cut(strings.TrimSpace(entry), "-")
		if !ok {
			continue
		}
		ranges = append(ranges, ClockRange{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)})
	}
	return ranges
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
