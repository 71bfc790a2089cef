package booking

import (
	"errors"

	"facility-booking/internal/domain/facility"
	"facility-booking/internal/pkg/clock"
)

var ErrAlreadyBooked = errors.New("already booked")

// Engine accepts or rejects booking requests. Each call is a pure function of
// the request and the bookings passed in; persisting the result is the
// caller's job.
type Engine struct {
	catalog facility.Catalog
	clock   clock.Clock
}

func NewEngine(catalog facility.Catalog, clock clock.Clock) *Engine {
	return &Engine{catalog: catalog, clock: clock}
}

// Book validates the request against the catalog and the existing bookings
// and returns the priced booking on success. Failures are sentinel errors:
// facility.ErrFacilityNotFound, ErrInvalidTimeRange, ErrAlreadyBooked.
func (e *Engine) Book(
	facilityName string,
	date Date,
	start, end facility.TimeOfDay,
	existing []*Booking,
) (*Booking, error) {
	fac, err := e.catalog.Lookup(facilityName)
	if err != nil {
		return nil, err
	}

	slot, err := NewTimeSlot(date, start, end)
	if err != nil {
		return nil, err
	}

	// First conflict wins; the scan does not collect further conflicts.
	for _, b := range existing {
		if b.FacilityName() != facilityName {
			continue
		}
		if b.Slot().Overlaps(slot) {
			return nil, ErrAlreadyBooked
		}
	}

	cost, err := costFor(fac.Rule(), slot)
	if err != nil {
		return nil, err
	}

	return NewBooking(facilityName, slot, cost, e.clock.Now()), nil
}

func costFor(rule facility.PricingRule, slot TimeSlot) (Money, error) {
	switch r := rule.(type) {
	case facility.FlatRate:
		return flatCost(r, slot), nil
	case facility.BandedRate:
		return bandedCost(r, slot), nil
	default:
		// A catalog entry with no known rule shape cannot be priced.
		return Money{}, ErrInvalidTimeRange
	}
}

// flatCost prorates partial hours linearly.
func flatCost(rate facility.FlatRate, slot TimeSlot) Money {
	minutes := int64(slot.DurationMinutes())
	return NewMoney(rate.HourlyRateCents() * minutes / 60)
}

// bandedCost walks the slot in one-hour steps from the start time. Each step
// is charged a full hour at the rate of the band it falls in, or zero when it
// touches no band. A trailing partial hour is still charged as a whole hour;
// that is the billing policy, not rounding. The window of the final step is
// clipped to the slot end so a slot ending exactly where a band begins is not
// billed into that band.
func bandedCost(rate facility.BandedRate, slot TimeSlot) Money {
	total := int64(0)
	endMin := slot.End().Minutes()
	for cur := slot.Start().Minutes(); cur < endMin; cur += 60 {
		stepEnd := min(cur+60, endMin)
		total += rate.RateForStep(facility.TimeOfDay(cur), facility.TimeOfDay(stepEnd))
	}
	return NewMoney(total)
}
