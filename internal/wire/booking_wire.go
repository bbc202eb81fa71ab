package wire

import (
	"padel-booking/internal/adaptor"
	"padel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCourt(r chi.Router, courtHandler *adaptor.CourtHandler) {
	// GET /tables/courts - Active courts
	r.Get("/tables/courts", courtHandler.GetCourts)

	// GET /api/slots - Slot grid per court for a date
	r.Get("/api/slots", courtHandler.GetSlots)
}

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== RAW TABLE ROUTES ====================
	r.Route("/tables/bookings", func(r chi.Router) {
		// GET /tables/bookings - All bookings, newest first
		r.Get("/", bookingHandler.ListBookings)

		// POST /tables/bookings - Store a full booking record
		r.Post("/", bookingHandler.CreateBooking)

		// PATCH /tables/bookings/{id} - Partial update, status transitions
		r.Patch("/{id}", bookingHandler.PatchBooking)
	})

	// ==================== BOOKING WORKFLOW ====================
	// POST /api/bookings/confirm - Validate, price and store a booking with its cart
	r.Post("/api/bookings/confirm", bookingHandler.ConfirmBooking)

	log.Info("Booking routes wired",
		zap.String("open", config.Booking.OpenTime),
		zap.String("close", config.Booking.CloseTime),
		zap.Bool("enforce_unique_slot", config.Booking.EnforceUniqueSlot),
	)
}
