package request

import (
	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
)

// CreateBookingRequest is shape-checked before the engine runs: the date must
// parse as a calendar date and times as HH:MM. Time ordering is checked by
// HasOrderedTimes rather than a gtfield tag, which compares strings by length.
type CreateBookingRequest struct {
	Facility  string `json:"facility" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string `json:"end_time" binding:"required,datetime=15:04"`
}

// HasOrderedTimes reports whether the end time sorts after the start time.
// Zero-padded HH:MM compares lexically, so no parsing is needed here.
func (r CreateBookingRequest) HasOrderedTimes() bool {
	return r.EndTime > r.StartTime
}

type BookingInput struct {
	Facility string
	Date     booking.Date
	Start    facility.TimeOfDay
	End      facility.TimeOfDay
}

func (r CreateBookingRequest) ToDomain() (BookingInput, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return BookingInput{}, err
	}

	start, err := facility.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return BookingInput{}, err
	}

	end, err := facility.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return BookingInput{}, err
	}

	return BookingInput{
		Facility: r.Facility,
		Date:     date,
		Start:    start,
		End:      end,
	}, nil
}
