package response

import "padel-booking/internal/data/entity"

type BookingResponse struct {
	ID              string               `json:"id"`
	CourtType       entity.CourtType     `json:"court_type"`
	CourtNumber     int                  `json:"court_number"`
	Date            string               `json:"date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	Duration        int                  `json:"duration"`
	CustomerName    string               `json:"customer_name"`
	CustomerContact string               `json:"customer_contact"`
	Status          entity.BookingStatus `json:"status"`
	AmountPaid      float64              `json:"amount_paid"`
	CreatedAt       int64                `json:"created_at"`
	UpdatedAt       int64                `json:"updated_at"`
}

// ConfirmBookingResponse reports the stored booking and how many of its cart
// lines made it into sales. SalesError is set when some did not.
type ConfirmBookingResponse struct {
	Booking       BookingResponse `json:"booking"`
	CourtAmount   float64         `json:"court_amount"`
	CartAmount    float64         `json:"cart_amount"`
	Items         []SaleResponse  `json:"items"`
	SalesRecorded int             `json:"sales_recorded"`
	SalesError    string          `json:"sales_error,omitempty"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID,
		CourtType:       booking.CourtType,
		CourtNumber:     booking.CourtNumber,
		Date:            booking.Date,
		StartTime:       booking.StartTime,
		EndTime:         booking.EndTime,
		Duration:        booking.DurationMinutes,
		CustomerName:    booking.CustomerName,
		CustomerContact: booking.CustomerContact,
		Status:          booking.Status,
		AmountPaid:      booking.AmountPaid,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, BookingToResponse(b))
	}
	return result
}
