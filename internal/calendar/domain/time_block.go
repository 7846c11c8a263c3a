package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeRange = errors.New("end time must be after start time")

// BlockType represents the kind of assistant-proposed time block.
type BlockType string

const (
	BlockTypeFocus   BlockType = "focus"
	BlockTypeMeeting BlockType = "meeting"
	BlockTypeBreak   BlockType = "break"
)

// TimeBlock is a lightweight record for assistant-proposed periods. Unlike
// Event it carries no aggregate identity; its id encodes the block's start so
// regenerated blocks for the same candidate collapse to the same id.
type TimeBlock struct {
	id        string
	blockType BlockType
	title     string
	start     time.Time
	end       time.Time
}

// NewTimeBlock creates a time block for the given range.
func NewTimeBlock(blockType BlockType, title string, start, end time.Time) (*TimeBlock, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}
	return &TimeBlock{
		id:        fmt.Sprintf("%s-%d", blockType, start.UnixMilli()),
		blockType: blockType,
		title:     title,
		start:     start,
		end:       end,
	}, nil
}

// Getters
func (tb *TimeBlock) ID() string           { return tb.id }
func (tb *TimeBlock) BlockType() BlockType { return tb.blockType }
func (tb *TimeBlock) Title() string        { return tb.title }
func (tb *TimeBlock) Start() time.Time     { return tb.start }
func (tb *TimeBlock) End() time.Time       { return tb.end }

// Duration returns the block duration.
func (tb *TimeBlock) Duration() time.Duration {
	return tb.end.Sub(tb.start)
}

// Overlaps reports whether the block strictly overlaps [start, end).
func (tb *TimeBlock) Overlaps(start, end time.Time) bool {
	return tb.start.Before(end) && tb.end.After(start)
}

// AsEvent maps the block onto a calendar-event view value so the host can
// render blocks and events in the same grid.
func (tb *TimeBlock) AsEvent() (*Event, error) {
	event, err := NewEvent(tb.title, tb.start, tb.end, PriorityLow, EventTypeFocus)
	if err != nil {
		return nil, err
	}
	return event, nil
}
