package repository

import (
	"context"
	"fmt"

	"padel-booking/internal/data/entity"
	"padel-booking/pkg/database"

	"go.uber.org/zap"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateBatch(ctx context.Context, sales []*entity.Sale) (int, error)
	FindByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Sale, error)
}

type saleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSaleRepository(db database.PgxIface, log *zap.Logger) SaleRepository {
	return &saleRepository{
		db:  db,
		log: log.With(zap.String("repository", "sale")),
	}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, item_id, item_name, item_type, quantity, price_per_item, total_amount,
		                   customer_name, customer_contact, booking_id, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		sale.ID,
		sale.ItemID,
		sale.ItemName,
		sale.ItemType,
		sale.Quantity,
		sale.PricePerItem,
		sale.TotalAmount,
		sale.CustomerName,
		sale.CustomerContact,
		sale.BookingID,
		sale.SaleDate,
		sale.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create sale",
			zap.Error(err),
			zap.String("sale_id", sale.ID),
			zap.String("item_id", sale.ItemID),
			zap.Stringp("booking_id", sale.BookingID),
		)
		return fmt.Errorf("create sale %s for item %s: %w", sale.ID, sale.ItemID, err)
	}

	return nil
}

// CreateBatch inserts in order and stops at the first failure. The returned
// count is how many rows were written before it.
func (r *saleRepository) CreateBatch(ctx context.Context, sales []*entity.Sale) (int, error) {
	for i, sale := range sales {
		if err := r.Create(ctx, sale); err != nil {
			return i, err
		}
	}

	return len(sales), nil
}

func (r *saleRepository) FindByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Sale, error) {
	query := `
		SELECT id, item_id, item_name, item_type, quantity, price_per_item, total_amount,
		       customer_name, customer_contact, booking_id, sale_date, created_at
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
		ORDER BY sale_date, created_at
	`

	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		r.log.Error("Failed to find sales by date range",
			zap.Error(err),
			zap.String("start_date", startDate),
			zap.String("end_date", endDate),
		)
		return nil, fmt.Errorf("find sales between %s and %s: %w", startDate, endDate, err)
	}
	defer rows.Close()

	sales := make([]*entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		err := rows.Scan(
			&s.ID,
			&s.ItemID,
			&s.ItemName,
			&s.ItemType,
			&s.Quantity,
			&s.PricePerItem,
			&s.TotalAmount,
			&s.CustomerName,
			&s.CustomerContact,
			&s.BookingID,
			&s.SaleDate,
			&s.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan sale row", zap.Error(err))
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		sales = append(sales, &s)
	}

	return sales, rows.Err()
}
