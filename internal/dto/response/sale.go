package response

import "padel-booking/internal/data/entity"

type SaleResponse struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	ItemName        string          `json:"item_name"`
	ItemType        entity.ItemType `json:"item_type"`
	Quantity        int             `json:"quantity"`
	PricePerItem    float64         `json:"price_per_item"`
	TotalAmount     float64         `json:"total_amount"`
	CustomerName    *string         `json:"customer_name"`
	CustomerContact *string         `json:"customer_contact"`
	BookingID       *string         `json:"booking_id"`
	SaleDate        string          `json:"sale_date"`
	CreatedAt       int64           `json:"created_at"`
}

func SaleToResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:              s.ID,
		ItemID:          s.ItemID,
		ItemName:        s.ItemName,
		ItemType:        s.ItemType,
		Quantity:        s.Quantity,
		PricePerItem:    s.PricePerItem,
		TotalAmount:     s.TotalAmount,
		CustomerName:    s.CustomerName,
		CustomerContact: s.CustomerContact,
		BookingID:       s.BookingID,
		SaleDate:        s.SaleDate,
		CreatedAt:       s.CreatedAt,
	}
}

func SalesToResponse(sales []*entity.Sale) []SaleResponse {
	result := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		result = append(result, SaleToResponse(s))
	}
	return result
}
