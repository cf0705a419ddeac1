package domain

import (
	"fmt"
	"time"

	apperrors "github.com/louisbranch/yogastudio/internal/platform/errors"
)

var cutoff = time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)

// Cutoff returns the earliest date the studio schedule accepts.
func Cutoff() time.Time { return cutoff }

var (
	// ErrInvalidTimedRange indicates a pre-cutoff start that does not precede its end.
	ErrInvalidTimedRange = apperrors.New(apperrors.CodeInvalidTimedRange, "invalid range given for timed event")
	// ErrDateTooEarly indicates a full-day event dated before Cutoff.
	ErrDateTooEarly = apperrors.New(apperrors.CodeDateTooEarly, "invalid date for full-day event")
)

// DurationKind tags the shape of an EventDuration.
type DurationKind string

const (
	DurationTimed   DurationKind = "TimedEvent"
	DurationFullDay DurationKind = "FullDayEvent"
)

// EventDuration is when an event happens: a TimedEvent or a FullDayEvent.
type EventDuration interface {
	Kind() DurationKind
	isEventDuration()
}

// TimedEvent spans from Start to End.
type TimedEvent struct {
	start time.Time
	end   time.Time
}

// FullDayEvent occupies a whole day.
type FullDayEvent struct {
	date time.Time
}

var (
	_ EventDuration = TimedEvent{}
	_ EventDuration = FullDayEvent{}
)

// IsDateTooEarly reports whether t falls before Cutoff.
func IsDateTooEarly(t time.Time) bool {
	return t.Before(cutoff)
}

// NewTimedEvent builds a TimedEvent. It fails only when start is before
// Cutoff and start is not before end; inverted ranges starting on or after
// Cutoff are accepted.
func NewTimedEvent(start, end time.Time) (TimedEvent, error) {
	if IsDateTooEarly(start) && !start.Before(end) {
		return TimedEvent{}, apperrors.WithMetadata(
			apperrors.CodeInvalidTimedRange,
			fmt.Sprintf("invalid range given for timed event: %s to %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
			map[string]string{
				"Start": start.Format(time.RFC3339),
				"End":   end.Format(time.RFC3339),
			},
		)
	}
	return TimedEvent{start: start, end: end}, nil
}

// NewFullDayEvent builds a FullDayEvent dated on or after Cutoff.
func NewFullDayEvent(date time.Time) (FullDayEvent, error) {
	if IsDateTooEarly(date) {
		return FullDayEvent{}, apperrors.WithMetadata(
			apperrors.CodeDateTooEarly,
			fmt.Sprintf("invalid date for full-day event: %s", date.Format(time.DateOnly)),
			map[string]string{
				"Date":   date.Format(time.DateOnly),
				"Cutoff": cutoff.Format(time.DateOnly),
			},
		)
	}
	return FullDayEvent{date: date}, nil
}

// Start returns when the event begins.
func (e TimedEvent) Start() time.Time { return e.start }

// End returns when the event finishes.
func (e TimedEvent) End() time.Time { return e.end }

// Kind returns DurationTimed.
func (TimedEvent) Kind() DurationKind { return DurationTimed }

func (TimedEvent) isEventDuration() {}

// Date returns the day of the event.
func (e FullDayEvent) Date() time.Time { return e.date }

// Kind returns DurationFullDay.
func (FullDayEvent) Kind() DurationKind { return DurationFullDay }

func (FullDayEvent) isEventDuration() {}
