package entity

type Equipment struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Category      string  `db:"category"`
	Description   string  `db:"description"`
	Price         float64 `db:"price"`
	StockQuantity int     `db:"stock_quantity"`
	IsActive      bool    `db:"is_active"`
	Timestamps
}
