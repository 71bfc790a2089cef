package facility

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidBand      = errors.New("band start must be before band end")
	ErrNegativeRate     = errors.New("hourly rate cannot be negative")
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// Band boundaries reuse the same value on every date.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(fmt.Sprintf("facility: bad time of day %q", s))
	}
	return t
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Band is a daily rated interval [start, end) with its own hourly rate.
type Band struct {
	start           TimeOfDay
	end             TimeOfDay
	hourlyRateCents int64
}

func NewBand(start, end TimeOfDay, hourlyRateCents int64) (Band, error) {
	if start >= end {
		return Band{}, ErrInvalidBand
	}
	if hourlyRateCents < 0 {
		return Band{}, ErrNegativeRate
	}
	return Band{start: start, end: end, hourlyRateCents: hourlyRateCents}, nil
}

func (b Band) Start() TimeOfDay {
	return b.start
}

func (b Band) End() TimeOfDay {
	return b.end
}

func (b Band) HourlyRateCents() int64 {
	return b.hourlyRateCents
}

func (b Band) Contains(t TimeOfDay) bool {
	return t >= b.start && t < b.end
}

func (b Band) overlaps(other Band) bool {
	return b.start < other.end && other.start < b.end
}
