//go:build unit || e2e

package builder

import (
	"time"

	reqdto "facility-booking/internal/handler/dto/request"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder assembles booking request DTOs and read views for tests.
// Defaults describe a valid flat-rate booking.
type BookingBuilder struct {
	facility  string
	date      string
	startTime string
	endTime   string
	cost      float64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		facility:  "Tennis Court",
		date:      "2026-09-10",
		startTime: "16:00",
		endTime:   "20:00",
		cost:      200,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *BookingBuilder) WithFacility(facility string) *BookingBuilder {
	b.facility = facility
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.date = date
	return b
}

func (b *BookingBuilder) WithTimes(start, end string) *BookingBuilder {
	b.startTime = start
	b.endTime = end
	return b
}

func (b *BookingBuilder) WithCost(cost float64) *BookingBuilder {
	b.cost = cost
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Facility:  b.facility,
		Date:      b.date,
		StartTime: b.startTime,
		EndTime:   b.endTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        uuid.New(),
		Facility:  b.facility,
		Date:      b.date,
		StartTime: b.startTime,
		EndTime:   b.endTime,
		Cost:      b.cost,
		CreatedAt: time.Now(),
	}
}
