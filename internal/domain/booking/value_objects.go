package booking

import (
	"errors"
	"time"

	"facility-booking/internal/domain/facility"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// Date is a calendar date with no time zone attached. Bookings never span
// midnight, so a date plus two times of day fully locates an interval.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// At anchors a time of day on this date as an absolute instant.
func (d Date) At(tod facility.TimeOfDay) time.Time {
	return d.t.Add(time.Duration(tod.Minutes()) * time.Minute)
}

// TimeSlot is a half-open interval [start, end) on a single date.
type TimeSlot struct {
	date  Date
	start facility.TimeOfDay
	end   facility.TimeOfDay
}

// NewTimeSlot rejects start >= end; an end time earlier than the start is
// never read as spanning into the next day.
func NewTimeSlot(date Date, start, end facility.TimeOfDay) (TimeSlot, error) {
	if start >= end {
		return TimeSlot{}, ErrInvalidTimeRange
	}
	return TimeSlot{date: date, start: start, end: end}, nil
}

func (ts TimeSlot) Date() Date {
	return ts.date
}

func (ts TimeSlot) Start() facility.TimeOfDay {
	return ts.start
}

func (ts TimeSlot) End() facility.TimeOfDay {
	return ts.end
}

func (ts TimeSlot) StartAt() time.Time {
	return ts.date.At(ts.start)
}

func (ts TimeSlot) EndAt() time.Time {
	return ts.date.At(ts.end)
}

func (ts TimeSlot) DurationMinutes() int {
	return ts.end.Minutes() - ts.start.Minutes()
}

// Overlaps reports whether two half-open intervals on the same date share any
// instant. Exact boundary touching is not an overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	if !ts.date.Equal(other.date) {
		return false
	}
	return ts.start < other.end && other.start < ts.end
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

// Units renders the amount in whole currency units for presentation.
func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}
