package response

import "padel-booking/internal/data/entity"

type EquipmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

type PackageResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	Duration          *int    `json:"duration"`
	IncludesEquipment bool    `json:"includes_equipment"`
	IncludesCoaching  bool    `json:"includes_coaching"`
	IsActive          bool    `json:"is_active"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

func EquipmentToResponse(e *entity.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:            e.ID,
		Name:          e.Name,
		Category:      e.Category,
		Description:   e.Description,
		Price:         e.Price,
		StockQuantity: e.StockQuantity,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func PackageToResponse(p *entity.Package) PackageResponse {
	return PackageResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Duration:          p.DurationMinutes,
		IncludesEquipment: p.IncludesEquipment,
		IncludesCoaching:  p.IncludesCoaching,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
