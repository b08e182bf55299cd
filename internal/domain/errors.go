package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by garden operations. Every failure wraps exactly one
// of these; callers classify with errors.Is.
var (
	ErrRange     = errors.New("out of range")
	ErrNotFound  = errors.New("not found")
	ErrOverlap   = errors.New("overlapping planting")
	ErrFormat    = errors.New("invalid format")
	ErrDuplicate = errors.New("duplicate")
)

// OverlapError reports the existing planting that blocks a new one.
type OverlapError struct {
	SlotID    string
	StartWeek int
	EndWeek   int
	Conflict  Planting
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("weeks %d-%d in slot %s overlap %s (%s)",
		e.StartWeek, e.EndWeek, e.SlotID, e.Conflict.Plant,
		FormatWeekRange(e.Conflict.StartWeek, e.Conflict.EndWeek))
}

func (e *OverlapError) Unwrap() error { return ErrOverlap }
