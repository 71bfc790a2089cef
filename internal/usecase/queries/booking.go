package queries

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	Read(ctx context.Context, sessionID uuid.UUID) ([]*booking.Booking, error)
}

// BookingView is the presentation shape of one booking: normalized HH:MM
// times and the cost in whole currency units.
type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Facility  string    `json:"facility"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:        b.ID(),
		Facility:  b.FacilityName(),
		Date:      b.Slot().Date().String(),
		StartTime: b.Slot().Start().String(),
		EndTime:   b.Slot().End().String(),
		Cost:      b.Cost().Units(),
		CreatedAt: b.CreatedAt(),
	}
}

type BookingQueries interface {
	ListBookings(ctx context.Context, sessionID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, sessionID uuid.UUID) ([]*BookingView, error) {
	bookings, err := q.readStore.Read(ctx, sessionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	views := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = NewBookingView(b)
	}
	return views, nil
}
