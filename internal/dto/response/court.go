package response

import "padel-booking/internal/data/entity"

type CourtResponse struct {
	ID               string           `json:"id"`
	CourtType        entity.CourtType `json:"court_type"`
	CourtNumber      int              `json:"court_number"`
	HourlyRate       float64          `json:"hourly_rate"`
	SlotDuration     int              `json:"slot_duration"`
	IsActive         bool             `json:"is_active"`
	MaintenanceNotes string           `json:"maintenance_notes"`
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}

// CourtSlotsResponse is one court's slot grid for a date.
type CourtSlotsResponse struct {
	Court CourtResponse  `json:"court"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// Helper converters
func CourtToResponse(court *entity.Court) CourtResponse {
	return CourtResponse{
		ID:               court.ID,
		CourtType:        court.CourtType,
		CourtNumber:      court.CourtNumber,
		HourlyRate:       court.HourlyRate,
		SlotDuration:     court.SlotDuration,
		IsActive:         court.IsActive,
		MaintenanceNotes: court.MaintenanceNotes,
	}
}
