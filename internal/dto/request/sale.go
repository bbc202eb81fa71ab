package request

type SaleItemRequest struct {
	ItemID          string  `json:"item_id" validate:"required"`
	ItemName        string  `json:"item_name" validate:"required,max=100"`
	ItemType        string  `json:"item_type" validate:"required,oneof=equipment package"`
	Quantity        int     `json:"quantity" validate:"required,min=1"`
	PricePerItem    float64 `json:"price_per_item" validate:"gte=0"`
	TotalAmount     float64 `json:"total_amount" validate:"gte=0"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerContact *string `json:"customer_contact,omitempty"`
	BookingID       *string `json:"booking_id,omitempty"`
	SaleDate        string  `json:"sale_date" validate:"required,datetime=2006-01-02"`
}

// CreateSalesRequest wraps the array body of POST /api/sales so each line is validated.
type CreateSalesRequest struct {
	Items []SaleItemRequest `validate:"required,min=1,dive"`
}
