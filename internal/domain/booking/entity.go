package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is an accepted reservation. Immutable once created; it disappears
// only when the whole session store is cleared.
type Booking struct {
	id           uuid.UUID
	facilityName string
	slot         TimeSlot
	cost         Money
	createdAt    time.Time
}

func NewBooking(facilityName string, slot TimeSlot, cost Money, createdAt time.Time) *Booking {
	return &Booking{
		id:           uuid.New(),
		facilityName: facilityName,
		slot:         slot,
		cost:         cost,
		createdAt:    createdAt,
	}
}

func ReconstructBooking(id uuid.UUID, facilityName string, slot TimeSlot, cost Money, createdAt time.Time) *Booking {
	return &Booking{
		id:           id,
		facilityName: facilityName,
		slot:         slot,
		cost:         cost,
		createdAt:    createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) FacilityName() string { return b.facilityName }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) Cost() Money          { return b.cost }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
