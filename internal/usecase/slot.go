package usecase

import (
	"fmt"

	"padel-booking/internal/data/entity"
	"padel-booking/pkg/utils"
)

const (
	IndoorSlotMinutes  = 90
	OutdoorSlotMinutes = 60
)

// OutdoorDurations are the lengths an operator may pick for an Outdoor booking.
var OutdoorDurations = []int{60, 90, 120, 150, 180}

// SlotLength is the generation step and default booking length for a court type.
func SlotLength(courtType entity.CourtType) int {
	if courtType == entity.CourtTypeIndoor {
		return IndoorSlotMinutes
	}
	return OutdoorSlotMinutes
}

// Window is the daily operating span in minutes since midnight. Close may be
// past 1440 when the venue stays open over midnight.
type Window struct {
	Open  int
	Close int
}

// NewWindow parses HH:MM bounds. A close at or before open means the next day.
func NewWindow(openAt, closeAt string) (Window, error) {
	openMin, err := utils.TimeToMinutes(openAt)
	if err != nil {
		return Window{}, fmt.Errorf("invalid operating window open: %w", err)
	}
	closeMin, err := utils.TimeToMinutes(closeAt)
	if err != nil {
		return Window{}, fmt.Errorf("invalid operating window close: %w", err)
	}
	if closeMin <= openMin {
		closeMin += utils.MinutesPerDay
	}
	return Window{Open: openMin, Close: closeMin}, nil
}

func (w Window) Minutes() int {
	return w.Close - w.Open
}

type Slot struct {
	StartTime string
	EndTime   string
	IsBooked  bool
}

// GenerateSlots lists the bookable windows of court on date in ascending
// order. A slot is booked when a non-Cancelled booking on the same court and
// date starts at exactly the same time. Slots that would end after close are
// not emitted.
func GenerateSlots(court *entity.Court, date string, window Window, bookings []*entity.Booking) []Slot {
	taken := make(map[string]bool)
	for _, b := range bookings {
		if b.Status == entity.BookingStatusCancelled {
			continue
		}
		if b.SameCourtDay(court.CourtType, court.CourtNumber, date) {
			taken[b.StartTime] = true
		}
	}

	length := SlotLength(court.CourtType)
	slots := make([]Slot, 0, window.Minutes()/length)
	for t := window.Open; t+length <= window.Close; t += length {
		start := utils.MinutesToTime(t)
		slots = append(slots, Slot{
			StartTime: start,
			EndTime:   utils.MinutesToTime(t + length),
			IsBooked:  taken[start],
		})
	}

	return slots
}
