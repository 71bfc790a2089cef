package response

import (
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Outcome messages are stable identifiers; clients switch on them.
const (
	MessageBooked           = "Booked"
	MessageFacilityNotFound = "Facility Not Found"
	MessageInvalidTimeRange = "Invalid Time Range"
	MessageAlreadyBooked    = "Already Booked"
	MessageSessionCleared   = "All session data cleared"
)

type BookingResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Cost    *float64 `json:"cost,omitempty"`
}

type BookingItem struct {
	ID        uuid.UUID `json:"id"`
	Facility  string    `json:"facility"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Success  bool           `json:"success"`
	Bookings []*BookingItem `json:"bookings"`
}

type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Booked(cost float64) *BookingResponse {
	return &BookingResponse{
		Success: true,
		Message: MessageBooked,
		Cost:    &cost,
	}
}

func Rejected(message string) *BookingResponse {
	return &BookingResponse{
		Success: false,
		Message: message,
	}
}

func FromBookingView(view *queries.BookingView) *BookingItem {
	return &BookingItem{
		ID:        view.ID,
		Facility:  view.Facility,
		Date:      view.Date,
		StartTime: view.StartTime,
		EndTime:   view.EndTime,
		Cost:      view.Cost,
		CreatedAt: view.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) *BookingListResponse {
	items := make([]*BookingItem, len(views))
	for i, v := range views {
		items[i] = FromBookingView(v)
	}
	return &BookingListResponse{
		Success:  true,
		Bookings: items,
	}
}
