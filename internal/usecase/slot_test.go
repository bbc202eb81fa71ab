package usecase

import (
	"testing"

	"padel-booking/internal/data/entity"
	"padel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultWindow(t *testing.T) Window {
	t.Helper()
	w, err := NewWindow("17:00", "04:00")
	require.NoError(t, err)
	return w
}

func TestNewWindowWrapsPastMidnight(t *testing.T) {
	w := defaultWindow(t)
	assert.Equal(t, 17*60, w.Open)
	assert.Equal(t, 28*60, w.Close)
	assert.Equal(t, 660, w.Minutes())

	sameDay, err := NewWindow("08:00", "12:00")
	require.NoError(t, err)
	assert.Equal(t, 240, sameDay.Minutes())

	_, err = NewWindow("25:00", "04:00")
	require.Error(t, err)
}

func TestGenerateSlotsIndoor(t *testing.T) {
	court := &entity.Court{CourtType: entity.CourtTypeIndoor, CourtNumber: 1, HourlyRate: 10000}

	slots := GenerateSlots(court, "2024-06-01", defaultWindow(t), nil)

	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime
	}
	assert.Equal(t, []string{"17:00", "18:30", "20:00", "21:30", "23:00", "00:30", "02:00"}, starts)
	assert.Equal(t, "00:30", slots[4].EndTime)
	assert.Equal(t, "03:30", slots[len(slots)-1].EndTime)
}

func TestGenerateSlotsOutdoorCoversWindow(t *testing.T) {
	court := &entity.Court{CourtType: entity.CourtTypeOutdoor, CourtNumber: 2, HourlyRate: 7000}

	slots := GenerateSlots(court, "2024-06-01", defaultWindow(t), nil)
	require.Len(t, slots, 11)
	assert.Equal(t, "17:00", slots[0].StartTime)
	assert.Equal(t, "04:00", slots[10].EndTime)

	for i, s := range slots {
		start, err := utils.TimeToMinutes(s.StartTime)
		require.NoError(t, err)
		end, err := utils.TimeToMinutes(s.EndTime)
		require.NoError(t, err)
		assert.Equal(t, 60, (end-start+utils.MinutesPerDay)%utils.MinutesPerDay, "slot %d length", i)

		if i > 0 {
			assert.Equal(t, slots[i-1].EndTime, s.StartTime, "gap before slot %d", i)
		}
	}
}

func TestGenerateSlotsNoPartialSlot(t *testing.T) {
	w, err := NewWindow("08:00", "12:00")
	require.NoError(t, err)

	court := &entity.Court{CourtType: entity.CourtTypeIndoor, CourtNumber: 1}
	slots := GenerateSlots(court, "2024-06-01", w, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:30", slots[1].StartTime)
	assert.Equal(t, "11:00", slots[1].EndTime)
}

func TestGenerateSlotsMarksExactStartMatches(t *testing.T) {
	court := &entity.Court{CourtType: entity.CourtTypeIndoor, CourtNumber: 1}
	bookings := []*entity.Booking{
		{CourtType: entity.CourtTypeIndoor, CourtNumber: 1, Date: "2024-06-01", StartTime: "18:30", Status: entity.BookingStatusBooked},
		{CourtType: entity.CourtTypeIndoor, CourtNumber: 1, Date: "2024-06-01", StartTime: "00:30", Status: entity.BookingStatusCompleted},
		{CourtType: entity.CourtTypeIndoor, CourtNumber: 1, Date: "2024-06-01", StartTime: "20:00", Status: entity.BookingStatusCancelled},
		{CourtType: entity.CourtTypeIndoor, CourtNumber: 2, Date: "2024-06-01", StartTime: "17:00", Status: entity.BookingStatusBooked},
		{CourtType: entity.CourtTypeOutdoor, CourtNumber: 1, Date: "2024-06-01", StartTime: "21:30", Status: entity.BookingStatusBooked},
		{CourtType: entity.CourtTypeIndoor, CourtNumber: 1, Date: "2024-06-02", StartTime: "23:00", Status: entity.BookingStatusBooked},
		// overlaps 17:00-18:30 but does not start on a slot boundary
		{CourtType: entity.CourtTypeIndoor, CourtNumber: 1, Date: "2024-06-01", StartTime: "17:30", Status: entity.BookingStatusBooked},
	}

	slots := GenerateSlots(court, "2024-06-01", defaultWindow(t), bookings)

	booked := make([]string, 0)
	for _, s := range slots {
		if s.IsBooked {
			booked = append(booked, s.StartTime)
		}
	}
	assert.Equal(t, []string{"18:30", "00:30"}, booked)
}

func TestGenerateSlotsIsIdempotent(t *testing.T) {
	court := &entity.Court{CourtType: entity.CourtTypeOutdoor, CourtNumber: 3}
	bookings := []*entity.Booking{
		{CourtType: entity.CourtTypeOutdoor, CourtNumber: 3, Date: "2024-06-01", StartTime: "22:00", Status: entity.BookingStatusBooked},
	}

	first := GenerateSlots(court, "2024-06-01", defaultWindow(t), bookings)
	second := GenerateSlots(court, "2024-06-01", defaultWindow(t), bookings)
	assert.Equal(t, first, second)
}

func TestResolveDuration(t *testing.T) {
	tests := []struct {
		name      string
		courtType entity.CourtType
		requested int
		want      int
		wantErr   bool
	}{
		{"indoor default", entity.CourtTypeIndoor, 0, 90, false},
		{"indoor explicit", entity.CourtTypeIndoor, 90, 90, false},
		{"indoor other length", entity.CourtTypeIndoor, 60, 0, true},
		{"outdoor default", entity.CourtTypeOutdoor, 0, 60, false},
		{"outdoor two hours", entity.CourtTypeOutdoor, 120, 120, false},
		{"outdoor half hour step", entity.CourtTypeOutdoor, 150, 150, false},
		{"outdoor off grid", entity.CourtTypeOutdoor, 75, 0, true},
		{"outdoor too long", entity.CourtTypeOutdoor, 240, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDuration(tt.courtType, tt.requested)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid duration")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCourtPrice(t *testing.T) {
	assert.Equal(t, 15000.0, CourtPrice(10000, 90))
	assert.Equal(t, 14000.0, CourtPrice(7000, 120))
	assert.Equal(t, 7000.0, CourtPrice(7000, 60))
}
