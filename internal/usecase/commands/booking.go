package commands

import (
	"context"

	"facility-booking/internal/domain/booking"
	reqdto "facility-booking/internal/handler/dto/request"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrMalformedRequest     = errs.New("malformed booking request")
	ErrStoreOperationFailed = errs.New("booking store operation failed")
)

// BookingStore is the session-scoped booking list the engine's results are
// persisted into. Implementations must scope every operation to one session.
type BookingStore interface {
	Read(ctx context.Context, sessionID uuid.UUID) ([]*booking.Booking, error)
	Write(ctx context.Context, sessionID uuid.UUID, bookings []*booking.Booking) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

type CreateBookingResult struct {
	Booking *queries.BookingView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, sessionID uuid.UUID, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
	ClearBookings(ctx context.Context, sessionID uuid.UUID) error
}

type bookingCommandsImpl struct {
	store  BookingStore
	engine *booking.Engine
}

func NewBookingCommands(store BookingStore, engine *booking.Engine) BookingCommands {
	return &bookingCommandsImpl{
		store:  store,
		engine: engine,
	}
}

// CreateBooking runs the acceptance algorithm against the session's current
// bookings and appends the result on success. Engine rejections pass through
// as their domain sentinels with the store untouched.
func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	sessionID uuid.UUID,
	req reqdto.CreateBookingRequest,
) (*CreateBookingResult, error) {
	input, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedRequest)
	}

	existing, err := c.store.Read(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	accepted, err := c.engine.Book(input.Facility, input.Date, input.Start, input.End, existing)
	if err != nil {
		return nil, err
	}

	updated := append(existing, accepted)
	if err := c.store.Write(ctx, sessionID, updated); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return &CreateBookingResult{Booking: queries.NewBookingView(accepted)}, nil
}

func (c *bookingCommandsImpl) ClearBookings(ctx context.Context, sessionID uuid.UUID) error {
	if err := c.store.Clear(ctx, sessionID); err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	return nil
}
