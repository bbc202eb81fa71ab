package usecase

import (
	"context"
	"errors"
	"testing"

	"padel-booking/internal/data/entity"
	"padel-booking/internal/data/repository"
	"padel-booking/internal/data/repository/repotest"
	"padel-booking/internal/dto/request"
	"padel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingService(enforceUniqueSlot bool) (BookingService, *repotest.Store) {
	store := repotest.New().SeedCourts().SeedCatalog()
	config := utils.BookingConfig{OpenTime: "17:00", CloseTime: "04:00", EnforceUniqueSlot: enforceUniqueSlot}
	return NewBookingService(store.Repository(), config, zap.NewNop()), store
}

func confirmRequest(courtType string, courtNumber int, start string) *request.ConfirmBookingRequest {
	return &request.ConfirmBookingRequest{
		CourtType:       courtType,
		CourtNumber:     courtNumber,
		Date:            "2024-06-01",
		StartTime:       start,
		CustomerName:    "Dana",
		CustomerContact: "0812000111",
	}
}

func TestConfirmBookingIndoorPrice(t *testing.T) {
	svc, store := newBookingService(false)

	result, err := svc.ConfirmBooking(context.Background(), confirmRequest("Indoor", 1, "17:00"))
	require.NoError(t, err)

	assert.Equal(t, 15000.0, result.Booking.AmountPaid)
	assert.Equal(t, 15000.0, result.CourtAmount)
	assert.Equal(t, "18:30", result.Booking.EndTime)
	assert.Equal(t, 90, result.Booking.Duration)
	assert.Equal(t, entity.BookingStatusBooked, result.Booking.Status)
	assert.Regexp(t, `^booking_\d+_[0-9a-f]{8}$`, result.Booking.ID)
	assert.Equal(t, result.Booking.CreatedAt, result.Booking.UpdatedAt)
	assert.Empty(t, result.Items)

	require.Len(t, store.Bookings, 1)
	assert.Empty(t, store.Sales)
}

func TestConfirmBookingOutdoorTwoHoursWithCart(t *testing.T) {
	svc, store := newBookingService(false)

	req := confirmRequest("Outdoor", 2, "18:00")
	req.Duration = 120
	req.Cart = []request.CartItemRequest{
		{ItemType: "equipment", ItemID: "eq1"},
		{ItemType: "package", ItemID: "pkg1"},
	}

	result, err := svc.ConfirmBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 14000.0, result.CourtAmount)
	assert.Equal(t, 26500.0, result.CartAmount)
	assert.Equal(t, 40500.0, result.Booking.AmountPaid)
	assert.Equal(t, "20:00", result.Booking.EndTime)
	assert.Equal(t, 2, result.SalesRecorded)
	assert.Empty(t, result.SalesError)

	require.Len(t, store.Sales, 2)
	for _, s := range store.Sales {
		require.NotNil(t, s.BookingID)
		assert.Equal(t, result.Booking.ID, *s.BookingID)
		assert.Equal(t, 1, s.Quantity)
		assert.Equal(t, s.PricePerItem, s.TotalAmount)
		assert.Equal(t, "2024-06-01", s.SaleDate)
		require.NotNil(t, s.CustomerName)
		assert.Equal(t, "Dana", *s.CustomerName)
	}
	assert.Equal(t, "Padel Ball (3 pack)", store.Sales[0].ItemName)
	assert.Equal(t, entity.ItemTypePackage, store.Sales[1].ItemType)
	assert.Equal(t, 25000.0, store.Sales[1].TotalAmount)
}

func TestConfirmBookingOutdoorDefaultsToOneHour(t *testing.T) {
	svc, _ := newBookingService(false)

	result, err := svc.ConfirmBooking(context.Background(), confirmRequest("Outdoor", 1, "21:00"))
	require.NoError(t, err)
	assert.Equal(t, 60, result.Booking.Duration)
	assert.Equal(t, 7000.0, result.Booking.AmountPaid)
	assert.Equal(t, "22:00", result.Booking.EndTime)
}

func TestConfirmBookingEndTimeWrapsPastMidnight(t *testing.T) {
	svc, _ := newBookingService(false)

	result, err := svc.ConfirmBooking(context.Background(), confirmRequest("Indoor", 3, "23:30"))
	require.NoError(t, err)
	assert.Equal(t, "01:00", result.Booking.EndTime)
}

func TestConfirmBookingRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*request.ConfirmBookingRequest)
		wantErr string
	}{
		{"blank customer name", func(r *request.ConfirmBookingRequest) { r.CustomerName = "   " }, "validation failed"},
		{"empty contact", func(r *request.ConfirmBookingRequest) { r.CustomerContact = "" }, "validation failed"},
		{"unknown court type", func(r *request.ConfirmBookingRequest) { r.CourtType = "Rooftop" }, "validation failed"},
		{"bad date", func(r *request.ConfirmBookingRequest) { r.Date = "01/06/2024" }, "validation failed"},
		{"indoor custom duration", func(r *request.ConfirmBookingRequest) { r.Duration = 60 }, "invalid duration"},
		{"unknown court", func(r *request.ConfirmBookingRequest) { r.CourtNumber = 9 }, "not found"},
		{"unknown cart item", func(r *request.ConfirmBookingRequest) {
			r.Cart = []request.CartItemRequest{{ItemType: "equipment", ItemID: "eq404"}}
		}, "invalid cart item"},
		{"bad cart item type", func(r *request.ConfirmBookingRequest) {
			r.Cart = []request.CartItemRequest{{ItemType: "drink", ItemID: "eq1"}}
		}, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newBookingService(false)
			req := confirmRequest("Indoor", 1, "17:00")
			tt.mutate(req)

			_, err := svc.ConfirmBooking(context.Background(), req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, store.Bookings)
			assert.Empty(t, store.Sales)
		})
	}
}

func TestConfirmBookingInvalidOutdoorDuration(t *testing.T) {
	svc, _ := newBookingService(false)

	req := confirmRequest("Outdoor", 1, "17:00")
	req.Duration = 45
	_, err := svc.ConfirmBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration 45")
}

func TestConfirmBookingInactiveCartItem(t *testing.T) {
	svc, store := newBookingService(false)
	store.Equipment[1].IsActive = false

	req := confirmRequest("Indoor", 1, "17:00")
	req.Cart = []request.CartItemRequest{{ItemType: "equipment", ItemID: "eq2"}}

	_, err := svc.ConfirmBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestConfirmBookingDuplicateSlotAllowedWithoutEnforcement(t *testing.T) {
	svc, store := newBookingService(false)

	_, err := svc.ConfirmBooking(context.Background(), confirmRequest("Indoor", 1, "17:00"))
	require.NoError(t, err)
	_, err = svc.ConfirmBooking(context.Background(), confirmRequest("Indoor", 1, "17:00"))
	require.NoError(t, err)

	assert.Len(t, store.Bookings, 2)
}

func TestConfirmBookingDuplicateSlotRejectedWithEnforcement(t *testing.T) {
	svc, store := newBookingService(true)

	_, err := svc.ConfirmBooking(context.Background(), confirmRequest("Indoor", 1, "17:00"))
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(context.Background(), confirmRequest("Indoor", 1, "17:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrSlotTaken)
	assert.Contains(t, err.Error(), "already booked")
	assert.Len(t, store.Bookings, 1)

	// Another court or start time is still free
	_, err = svc.ConfirmBooking(context.Background(), confirmRequest("Indoor", 2, "17:00"))
	require.NoError(t, err)

	// A cancelled booking frees its slot
	store.Bookings[0].Status = entity.BookingStatusCancelled
	_, err = svc.ConfirmBooking(context.Background(), confirmRequest("Indoor", 1, "17:00"))
	require.NoError(t, err)
}

func TestConfirmBookingStoreUniqueViolationMapsToSlotTaken(t *testing.T) {
	svc, store := newBookingService(false)
	store.UniqueSlots = true

	_, err := svc.ConfirmBooking(context.Background(), confirmRequest("Outdoor", 1, "19:00"))
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(context.Background(), confirmRequest("Outdoor", 1, "19:00"))
	require.ErrorIs(t, err, repository.ErrSlotTaken)
}

func TestConfirmBookingSalesFailureKeepsBooking(t *testing.T) {
	svc, store := newBookingService(false)
	store.SaleErr = errors.New("disk full")
	store.SaleFailAfter = 1

	req := confirmRequest("Indoor", 1, "20:00")
	req.Cart = []request.CartItemRequest{
		{ItemType: "equipment", ItemID: "eq1"},
		{ItemType: "equipment", ItemID: "eq2"},
	}

	result, err := svc.ConfirmBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 24500.0, result.Booking.AmountPaid)
	assert.Equal(t, 1, result.SalesRecorded)
	assert.Len(t, result.Items, 1)
	assert.Contains(t, result.SalesError, "disk full")

	assert.Len(t, store.Bookings, 1)
	assert.Len(t, store.Sales, 1)
}

func TestCreateBookingDefaults(t *testing.T) {
	svc, store := newBookingService(false)

	resp, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CourtType:       "Outdoor",
		CourtNumber:     4,
		Date:            "2024-06-01",
		StartTime:       "23:00",
		EndTime:         "00:00",
		Duration:        60,
		CustomerName:    "Rafi",
		CustomerContact: "rafi@example.com",
		AmountPaid:      7000,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^booking_\d+_[0-9a-f]{8}$`, resp.ID)
	assert.Equal(t, entity.BookingStatusBooked, resp.Status)
	assert.NotZero(t, resp.CreatedAt)
	assert.NotZero(t, resp.UpdatedAt)
	require.Len(t, store.Bookings, 1)
}

func TestCreateBookingKeepsSuppliedID(t *testing.T) {
	svc, _ := newBookingService(false)

	resp, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		ID:              "booking_1_abcdef12",
		CourtType:       "Indoor",
		CourtNumber:     1,
		Date:            "2024-06-01",
		StartTime:       "17:00",
		EndTime:         "18:30",
		Duration:        90,
		CustomerName:    "Rafi",
		CustomerContact: "0812",
		Status:          "Completed",
		CreatedAt:       1717250400000,
	})
	require.NoError(t, err)
	assert.Equal(t, "booking_1_abcdef12", resp.ID)
	assert.Equal(t, entity.BookingStatusCompleted, resp.Status)
	assert.Equal(t, int64(1717250400000), resp.CreatedAt)
}

func TestCreateBookingRejectsSloppyTime(t *testing.T) {
	svc, _ := newBookingService(false)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CourtType:       "Indoor",
		CourtNumber:     1,
		Date:            "2024-06-01",
		StartTime:       "7:00",
		EndTime:         "08:30",
		Duration:        90,
		CustomerName:    "Rafi",
		CustomerContact: "0812",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func seedBooking(store *repotest.Store, status entity.BookingStatus) *entity.Booking {
	b := &entity.Booking{
		ID:          "booking_1717250400000_0badf00d",
		CourtType:   entity.CourtTypeIndoor,
		CourtNumber: 1,
		Date:        "2024-06-01",
		StartTime:   "17:00",
		EndTime:     "18:30",
		Status:      status,
		Timestamps:  entity.Timestamps{CreatedAt: 1, UpdatedAt: 1},
	}
	store.Bookings = append(store.Bookings, b)
	return b
}

func TestPatchBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    entity.BookingStatus
		to      string
		wantErr bool
	}{
		{entity.BookingStatusBooked, "Completed", false},
		{entity.BookingStatusBooked, "Cancelled", false},
		{entity.BookingStatusBooked, "Booked", false},
		{entity.BookingStatusCompleted, "Booked", true},
		{entity.BookingStatusCancelled, "Booked", true},
		{entity.BookingStatusCancelled, "Completed", true},
		{entity.BookingStatusCompleted, "Cancelled", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+tt.to, func(t *testing.T) {
			svc, store := newBookingService(false)
			b := seedBooking(store, tt.from)

			changes, err := svc.PatchBooking(context.Background(), b.ID, map[string]any{"status": tt.to})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot change booking status")
				assert.Equal(t, tt.from, store.Bookings[0].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), changes)
			assert.Equal(t, entity.BookingStatus(tt.to), store.Bookings[0].Status)
			assert.Greater(t, store.Bookings[0].UpdatedAt, int64(1))
		})
	}
}

func TestPatchBookingFields(t *testing.T) {
	svc, store := newBookingService(false)
	b := seedBooking(store, entity.BookingStatusBooked)

	changes, err := svc.PatchBooking(context.Background(), b.ID, map[string]any{
		"court_number":  float64(3),
		"customer_name": " Sekar ",
		"amount_paid":   float64(16500),
		"updated_at":    float64(5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	got := store.Bookings[0]
	assert.Equal(t, 3, got.CourtNumber)
	assert.Equal(t, "Sekar", got.CustomerName)
	assert.Equal(t, 16500.0, got.AmountPaid)
	assert.Equal(t, int64(1), got.CreatedAt)
	assert.NotEqual(t, int64(5), got.UpdatedAt)
}

func TestPatchBookingRejections(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		wantErr string
	}{
		{"id is immutable", map[string]any{"id": "other"}, "cannot update field id"},
		{"created_at is immutable", map[string]any{"created_at": float64(0)}, "cannot update field created_at"},
		{"unknown field", map[string]any{"colour": "red"}, "invalid patch field colour"},
		{"no fields", map[string]any{}, "invalid patch"},
		{"only updated_at", map[string]any{"updated_at": float64(1)}, "invalid patch"},
		{"bad status", map[string]any{"status": "Paid"}, "invalid value for status"},
		{"bad court type", map[string]any{"court_type": "Roof"}, "invalid value for court_type"},
		{"fractional number", map[string]any{"duration": 90.5}, "invalid value for duration"},
		{"bad date", map[string]any{"date": "2024-13-01"}, "invalid date"},
		{"bad time", map[string]any{"start_time": "25:00"}, "invalid time"},
		{"empty name", map[string]any{"customer_name": ""}, "invalid value for customer_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newBookingService(false)
			b := seedBooking(store, entity.BookingStatusBooked)

			_, err := svc.PatchBooking(context.Background(), b.ID, tt.fields)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPatchBookingUnknownIDReportsZeroChanges(t *testing.T) {
	svc, _ := newBookingService(false)

	changes, err := svc.PatchBooking(context.Background(), "booking_missing", map[string]any{"status": "Cancelled"})
	require.NoError(t, err)
	assert.Zero(t, changes)
}

func TestListBookingsNewestFirst(t *testing.T) {
	svc, store := newBookingService(false)
	store.Bookings = append(store.Bookings,
		&entity.Booking{ID: "a", Date: "2024-06-01", StartTime: "17:00"},
		&entity.Booking{ID: "b", Date: "2024-06-02", StartTime: "17:00"},
		&entity.Booking{ID: "c", Date: "2024-06-02", StartTime: "20:00"},
	)

	bookings, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{bookings[0].ID, bookings[1].ID, bookings[2].ID})
}
