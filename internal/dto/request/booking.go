package request

// CartItemRequest references a catalog item by id; name and price come from
// the catalog at confirm time.
type CartItemRequest struct {
	ItemType string `json:"item_type" validate:"required,oneof=equipment package"`
	ItemID   string `json:"item_id" validate:"required"`
}

type ConfirmBookingRequest struct {
	CourtType       string            `json:"court_type" validate:"required,oneof=Indoor Outdoor"`
	CourtNumber     int               `json:"court_number" validate:"required,min=1"`
	Date            string            `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string            `json:"start_time" validate:"required,datetime=15:04"`
	Duration        int               `json:"duration,omitempty" validate:"omitempty,min=1"`
	CustomerName    string            `json:"customer_name" validate:"required,max=100"`
	CustomerContact string            `json:"customer_contact" validate:"required,max=100"`
	Cart            []CartItemRequest `json:"cart,omitempty" validate:"omitempty,dive"`
}

// CreateBookingRequest is the full booking record accepted by POST /tables/bookings.
type CreateBookingRequest struct {
	ID              string  `json:"id,omitempty"`
	CourtType       string  `json:"court_type" validate:"required,oneof=Indoor Outdoor"`
	CourtNumber     int     `json:"court_number" validate:"required,min=1"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime         string  `json:"end_time" validate:"required,datetime=15:04"`
	Duration        int     `json:"duration" validate:"required,min=1"`
	CustomerName    string  `json:"customer_name" validate:"required,max=100"`
	CustomerContact string  `json:"customer_contact" validate:"required,max=100"`
	Status          string  `json:"status,omitempty" validate:"omitempty,oneof=Booked Completed Cancelled"`
	AmountPaid      float64 `json:"amount_paid" validate:"gte=0"`
	CreatedAt       int64   `json:"created_at,omitempty"`
	UpdatedAt       int64   `json:"updated_at,omitempty"`
}

type SlotQueryRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	CourtType string `json:"court_type,omitempty" validate:"omitempty,oneof=Indoor Outdoor"`
}
