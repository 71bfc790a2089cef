//go:build unit

package booking_test

import (
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	"facility-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *booking.Engine {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return booking.NewEngine(facility.NewDefaultCatalog(), clk)
}

func mustBook(t *testing.T, e *booking.Engine, fac, date, start, end string, existing []*booking.Booking) *booking.Booking {
	t.Helper()
	b, err := book(e, fac, date, start, end, existing)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

func book(e *booking.Engine, fac, date, start, end string, existing []*booking.Booking) (*booking.Booking, error) {
	d, err := booking.ParseDate(date)
	if err != nil {
		return nil, err
	}
	s, err := facility.ParseTimeOfDay(start)
	if err != nil {
		return nil, err
	}
	en, err := facility.ParseTimeOfDay(end)
	if err != nil {
		return nil, err
	}
	return e.Book(fac, d, s, en, existing)
}

func TestEngineCost(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name      string
		fac       string
		start     string
		end       string
		costUnits float64
	}{
		{name: "flat rate whole hours", fac: "Tennis Court", start: "16:00", end: "20:00", costUnits: 200},
		{name: "flat rate prorates partial hours", fac: "Tennis Court", start: "10:00", end: "11:30", costUnits: 75},
		{name: "banded evening block", fac: "Clubhouse", start: "16:00", end: "22:00", costUnits: 3000},
		{name: "banded daytime block", fac: "Clubhouse", start: "10:00", end: "12:00", costUnits: 200},
		{name: "band chosen per hour step across boundary", fac: "Clubhouse", start: "15:00", end: "17:00", costUnits: 600},
		{name: "step starting before any band charges only rated steps", fac: "Clubhouse", start: "09:30", end: "10:30", costUnits: 100},
		{name: "partial trailing hour charged in full", fac: "Clubhouse", start: "10:00", end: "10:30", costUnits: 100},
		{name: "ending where a band begins stays free", fac: "Clubhouse", start: "09:30", end: "10:00", costUnits: 0},
		{name: "offset steps each bill one hour", fac: "Clubhouse", start: "09:30", end: "11:30", costUnits: 200},
		{name: "entirely outside all bands is free but accepted", fac: "Clubhouse", start: "02:00", end: "04:00", costUnits: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := mustBook(t, engine, c.fac, "2026-09-10", c.start, c.end, nil)
			assert.Equal(t, c.costUnits, b.Cost().Units())
			assert.Equal(t, c.fac, b.FacilityName())
			assert.Equal(t, c.start, b.Slot().Start().String())
			assert.Equal(t, c.end, b.Slot().End().String())
		})
	}
}

func TestEngineValidation(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("unknown facility rejected before any time logic", func(t *testing.T) {
		// The time range is also invalid; facility lookup must win.
		_, err := book(engine, "Swimming Pool", "2026-09-10", "20:00", "10:00", nil)
		require.ErrorIs(t, err, facility.ErrFacilityNotFound)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := book(engine, "Tennis Court", "2026-09-10", "20:00", "10:00", nil)
		require.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})

	t.Run("zero length slot rejected", func(t *testing.T) {
		_, err := book(engine, "Tennis Court", "2026-09-10", "10:00", "10:00", nil)
		require.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})

	t.Run("end earlier than start is not read as next day", func(t *testing.T) {
		_, err := book(engine, "Clubhouse", "2026-09-10", "21:00", "01:00", nil)
		require.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})
}

func TestEngineConflicts(t *testing.T) {
	engine := newTestEngine(t)
	existing := []*booking.Booking{
		mustBook(t, engine, "Clubhouse", "2026-09-10", "10:00", "12:00", nil),
	}

	cases := []struct {
		name  string
		fac   string
		date  string
		start string
		end   string
		errIs error
	}{
		{name: "identical slot conflicts", fac: "Clubhouse", date: "2026-09-10", start: "10:00", end: "12:00", errIs: booking.ErrAlreadyBooked},
		{name: "overlap at tail conflicts", fac: "Clubhouse", date: "2026-09-10", start: "11:00", end: "13:00", errIs: booking.ErrAlreadyBooked},
		{name: "overlap at head conflicts", fac: "Clubhouse", date: "2026-09-10", start: "09:00", end: "10:30", errIs: booking.ErrAlreadyBooked},
		{name: "enclosing slot conflicts", fac: "Clubhouse", date: "2026-09-10", start: "09:00", end: "13:00", errIs: booking.ErrAlreadyBooked},
		{name: "enclosed slot conflicts", fac: "Clubhouse", date: "2026-09-10", start: "10:30", end: "11:30", errIs: booking.ErrAlreadyBooked},
		{name: "back to back after is allowed", fac: "Clubhouse", date: "2026-09-10", start: "12:00", end: "14:00"},
		{name: "back to back before is allowed", fac: "Clubhouse", date: "2026-09-10", start: "08:00", end: "10:00"},
		{name: "same slot other facility is allowed", fac: "Tennis Court", date: "2026-09-10", start: "10:00", end: "12:00"},
		{name: "same slot other date is allowed", fac: "Clubhouse", date: "2026-09-11", start: "10:00", end: "12:00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := book(engine, c.fac, c.date, c.start, c.end, existing)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				require.Nil(t, b)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, b)
		})
	}

	t.Run("rejection is deterministic on retry", func(t *testing.T) {
		for range 3 {
			_, err := book(engine, "Clubhouse", "2026-09-10", "11:00", "13:00", existing)
			require.ErrorIs(t, err, booking.ErrAlreadyBooked)
		}
		assert.Len(t, existing, 1, "rejected requests leave the booking list untouched")
	})

	t.Run("sequential non overlapping bookings accumulate", func(t *testing.T) {
		first := mustBook(t, engine, "Clubhouse", "2026-09-20", "10:00", "12:00", nil)
		second := mustBook(t, engine, "Clubhouse", "2026-09-20", "12:30", "14:30", []*booking.Booking{first})

		assert.Equal(t, float64(200), first.Cost().Units())
		assert.Equal(t, float64(200), second.Cost().Units())
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	date, err := booking.ParseDate("2026-09-10")
	require.NoError(t, err)
	otherDate, err := booking.ParseDate("2026-09-11")
	require.NoError(t, err)

	slot := func(d booking.Date, start, end string) booking.TimeSlot {
		ts, tsErr := booking.NewTimeSlot(d, facility.MustTimeOfDay(start), facility.MustTimeOfDay(end))
		require.NoError(t, tsErr)
		return ts
	}

	base := slot(date, "10:00", "12:00")

	assert.True(t, base.Overlaps(slot(date, "11:00", "13:00")))
	assert.True(t, base.Overlaps(slot(date, "09:00", "10:01")))
	assert.False(t, base.Overlaps(slot(date, "12:00", "14:00")), "touching boundaries do not overlap")
	assert.False(t, base.Overlaps(slot(date, "08:00", "10:00")))
	assert.False(t, base.Overlaps(slot(otherDate, "10:00", "12:00")))
}
