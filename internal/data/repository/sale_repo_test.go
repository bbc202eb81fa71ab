package repository

import (
	"context"
	"errors"
	"testing"

	"padel-booking/internal/data/entity"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func cartSale(id, itemID string, itemType entity.ItemType, price float64, bookingID *string) *entity.Sale {
	return &entity.Sale{
		ID:           id,
		ItemID:       itemID,
		ItemName:     itemID,
		ItemType:     itemType,
		Quantity:     1,
		PricePerItem: price,
		TotalAmount:  price,
		BookingID:    bookingID,
		SaleDate:     "2024-06-01",
		CreatedAt:    1717250000000,
	}
}

func saleArgs(s *entity.Sale) []any {
	return []any{
		s.ID, s.ItemID, s.ItemName, s.ItemType, s.Quantity, s.PricePerItem, s.TotalAmount,
		s.CustomerName, s.CustomerContact, s.BookingID, s.SaleDate, s.CreatedAt,
	}
}

func TestSaleRepository_CreateBatch(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSaleRepository(mock, zap.NewNop())

	bookingID := "booking_1"
	sales := []*entity.Sale{
		cartSale("sale_1", "eq1", entity.ItemTypeEquipment, 1500, &bookingID),
		cartSale("sale_2", "pkg1", entity.ItemTypePackage, 25000, &bookingID),
	}
	for _, s := range sales {
		mock.ExpectExec(`INSERT INTO sales`).
			WithArgs(saleArgs(s)...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	written, err := repo.CreateBatch(context.Background(), sales)
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_CreateBatchStopsAtFirstFailure(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSaleRepository(mock, zap.NewNop())

	sales := []*entity.Sale{
		cartSale("sale_1", "eq1", entity.ItemTypeEquipment, 1500, nil),
		cartSale("sale_2", "eq2", entity.ItemTypeEquipment, 8000, nil),
		cartSale("sale_3", "pkg1", entity.ItemTypePackage, 25000, nil),
	}
	mock.ExpectExec(`INSERT INTO sales`).
		WithArgs(saleArgs(sales[0])...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO sales`).
		WithArgs(saleArgs(sales[1])...).
		WillReturnError(errors.New("disk full"))

	written, err := repo.CreateBatch(context.Background(), sales)
	assert.Equal(t, 1, written)
	assert.ErrorContains(t, err, "create sale sale_2 for item eq2: disk full")

	// the third insert is never attempted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_FindByDateRange(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSaleRepository(mock, zap.NewNop())

	customer := "Dana"
	contact := "0812000111"
	bookingID := "booking_1"
	columns := []string{"id", "item_id", "item_name", "item_type", "quantity", "price_per_item", "total_amount",
		"customer_name", "customer_contact", "booking_id", "sale_date", "created_at"}

	mock.ExpectQuery(`FROM sales\s+WHERE sale_date BETWEEN \$1 AND \$2\s+ORDER BY sale_date, created_at`).
		WithArgs("2024-06-01", "2024-06-07").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("sale_1", "eq1", "Padel Ball (3 pack)", entity.ItemTypeEquipment, 2, 1500.0, 3000.0,
				&customer, &contact, &bookingID, "2024-06-01", int64(1717250000000)))

	sales, err := repo.FindByDateRange(context.Background(), "2024-06-01", "2024-06-07")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 3000.0, sales[0].TotalAmount)
	require.NotNil(t, sales[0].BookingID)
	assert.Equal(t, "booking_1", *sales[0].BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
