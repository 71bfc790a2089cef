package sessionstore

import (
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"

	"github.com/google/uuid"
)

// bookingRecord is the wire shape a session's bookings are persisted in.
// Times are normalized HH:MM strings, the date is YYYY-MM-DD.
type bookingRecord struct {
	ID        uuid.UUID `json:"id"`
	Facility  string    `json:"facility"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CostCents int64     `json:"cost_cents"`
	CreatedAt time.Time `json:"created_at"`
}

func toRecords(bookings []*booking.Booking) []bookingRecord {
	records := make([]bookingRecord, len(bookings))
	for i, b := range bookings {
		records[i] = bookingRecord{
			ID:        b.ID(),
			Facility:  b.FacilityName(),
			Date:      b.Slot().Date().String(),
			StartTime: b.Slot().Start().String(),
			EndTime:   b.Slot().End().String(),
			CostCents: b.Cost().Cents(),
			CreatedAt: b.CreatedAt(),
		}
	}
	return records
}

func fromRecords(records []bookingRecord) ([]*booking.Booking, error) {
	bookings := make([]*booking.Booking, len(records))
	for i, r := range records {
		date, err := booking.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		start, err := facility.ParseTimeOfDay(r.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := facility.ParseTimeOfDay(r.EndTime)
		if err != nil {
			return nil, err
		}
		slot, err := booking.NewTimeSlot(date, start, end)
		if err != nil {
			return nil, err
		}
		bookings[i] = booking.ReconstructBooking(r.ID, r.Facility, slot, booking.NewMoney(r.CostCents), r.CreatedAt)
	}
	return bookings, nil
}
