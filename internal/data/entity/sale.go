package entity

type ItemType string

const (
	ItemTypeEquipment ItemType = "equipment"
	ItemTypePackage   ItemType = "package"
)

// Sale is an append-only revenue line. BookingID is nil for walk-in sales.
type Sale struct {
	ID              string   `db:"id"`
	ItemID          string   `db:"item_id"`
	ItemName        string   `db:"item_name"`
	ItemType        ItemType `db:"item_type"`
	Quantity        int      `db:"quantity"`
	PricePerItem    float64  `db:"price_per_item"`
	TotalAmount     float64  `db:"total_amount"`
	CustomerName    *string  `db:"customer_name"`
	CustomerContact *string  `db:"customer_contact"`
	BookingID       *string  `db:"booking_id"`
	SaleDate        string   `db:"sale_date"`
	CreatedAt       int64    `db:"created_at"`
}
