package request

type EquipmentRequest struct {
	Name          string  `json:"name" validate:"required,max=100"`
	Category      string  `json:"category" validate:"required,max=50"`
	Description   string  `json:"description" validate:"max=500"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type PackageRequest struct {
	Name              string  `json:"name" validate:"required,max=100"`
	Description       string  `json:"description" validate:"max=500"`
	Price             float64 `json:"price" validate:"gte=0"`
	Duration          *int    `json:"duration,omitempty" validate:"omitempty,min=1"`
	IncludesEquipment bool    `json:"includes_equipment"`
	IncludesCoaching  bool    `json:"includes_coaching"`
	IsActive          *bool   `json:"is_active,omitempty"`
}
