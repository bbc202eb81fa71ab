package entity

type CourtType string

const (
	CourtTypeIndoor  CourtType = "Indoor"
	CourtTypeOutdoor CourtType = "Outdoor"
)

func (t CourtType) Valid() bool {
	return t == CourtTypeIndoor || t == CourtTypeOutdoor
}

type Court struct {
	ID               string    `db:"id"`
	CourtType        CourtType `db:"court_type"`
	CourtNumber      int       `db:"court_number"`
	HourlyRate       float64   `db:"hourly_rate"`
	SlotDuration     int       `db:"slot_duration"`
	IsActive         bool      `db:"is_active"`
	MaintenanceNotes string    `db:"maintenance_notes"`
}
