//go:build unit

package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	"facility-booking/internal/infra/sessionstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T, fac, date, start, end string, costCents int64) *booking.Booking {
	t.Helper()
	d, err := booking.ParseDate(date)
	require.NoError(t, err)
	slot, err := booking.NewTimeSlot(d, facility.MustTimeOfDay(start), facility.MustTimeOfDay(end))
	require.NoError(t, err)
	return booking.NewBooking(fac, slot, booking.NewMoney(costCents), time.Now())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session reads empty", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()

		bookings, err := store.Read(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("write then read round trips per session", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		sessionA := uuid.New()
		sessionB := uuid.New()

		first := newBooking(t, "Tennis Court", "2026-09-10", "16:00", "20:00", 20000)
		second := newBooking(t, "Clubhouse", "2026-09-10", "10:00", "12:00", 20000)

		require.NoError(t, store.Write(ctx, sessionA, []*booking.Booking{first, second}))

		got, err := store.Read(ctx, sessionA)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID(), got[0].ID())
		assert.Equal(t, second.ID(), got[1].ID())

		other, err := store.Read(ctx, sessionB)
		require.NoError(t, err)
		assert.Empty(t, other, "sessions are isolated")
	})

	t.Run("read returns a copy", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		sessionID := uuid.New()

		require.NoError(t, store.Write(ctx, sessionID, []*booking.Booking{
			newBooking(t, "Tennis Court", "2026-09-10", "16:00", "20:00", 20000),
		}))

		got, err := store.Read(ctx, sessionID)
		require.NoError(t, err)
		got[0] = nil

		again, err := store.Read(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, again, 1)
		assert.NotNil(t, again[0])
	})

	t.Run("clear wipes only the target session", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		sessionA := uuid.New()
		sessionB := uuid.New()

		require.NoError(t, store.Write(ctx, sessionA, []*booking.Booking{
			newBooking(t, "Tennis Court", "2026-09-10", "16:00", "20:00", 20000),
		}))
		require.NoError(t, store.Write(ctx, sessionB, []*booking.Booking{
			newBooking(t, "Clubhouse", "2026-09-10", "10:00", "12:00", 20000),
		}))

		require.NoError(t, store.Clear(ctx, sessionA))

		cleared, err := store.Read(ctx, sessionA)
		require.NoError(t, err)
		assert.Empty(t, cleared)

		kept, err := store.Read(ctx, sessionB)
		require.NoError(t, err)
		assert.Len(t, kept, 1)
	})
}
