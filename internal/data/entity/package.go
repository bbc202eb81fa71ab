package entity

type Package struct {
	ID                string  `db:"id"`
	Name              string  `db:"name"`
	Description       string  `db:"description"`
	Price             float64 `db:"price"`
	DurationMinutes   *int    `db:"duration"`
	IncludesEquipment bool    `db:"includes_equipment"`
	IncludesCoaching  bool    `db:"includes_coaching"`
	IsActive          bool    `db:"is_active"`
	Timestamps
}
