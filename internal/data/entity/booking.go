package entity

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusBooked, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an admin may move a booking from s to next.
// Booked is the only non-terminal state; repeating the current status is a no-op.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	return s == BookingStatusBooked &&
		(next == BookingStatusCompleted || next == BookingStatusCancelled)
}

type Booking struct {
	ID              string        `db:"id"`
	CourtType       CourtType     `db:"court_type"`
	CourtNumber     int           `db:"court_number"`
	Date            string        `db:"date"`
	StartTime       string        `db:"start_time"`
	EndTime         string        `db:"end_time"`
	DurationMinutes int           `db:"duration"`
	CustomerName    string        `db:"customer_name"`
	CustomerContact string        `db:"customer_contact"`
	Status          BookingStatus `db:"status"`
	AmountPaid      float64       `db:"amount_paid"`
	Timestamps
}

// SameCourtDay reports whether b is on the given court and date.
func (b *Booking) SameCourtDay(courtType CourtType, courtNumber int, date string) bool {
	return b.CourtType == courtType && b.CourtNumber == courtNumber && b.Date == date
}
