package repository

import (
	"context"
	"errors"
	"testing"

	"padel-booking/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEquipmentRepository_FindAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEquipmentRepository(mock, zap.NewNop())

	columns := []string{"id", "name", "category", "description", "price", "stock_quantity", "is_active", "created_at", "updated_at"}
	mock.ExpectQuery(`FROM equipment ORDER BY category, name`).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("eq4", "Grip Tape", "Accessories", "", 500.0, 100, true, int64(1), int64(1)).
			AddRow("eq1", "Padel Ball (3 pack)", "Balls", "Professional padel balls", 1500.0, 50, true, int64(1), int64(2)))

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Grip Tape", items[0].Name)
	assert.Equal(t, int64(2), items[1].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepository_UpdateAndDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEquipmentRepository(mock, zap.NewNop())

	equipment := &entity.Equipment{
		ID:            "eq1",
		Name:          "Padel Ball (3 pack)",
		Category:      "Balls",
		Description:   "Tournament balls",
		Price:         1800,
		StockQuantity: 40,
		IsActive:      true,
		Timestamps:    entity.Timestamps{UpdatedAt: 1717260000000},
	}

	mock.ExpectExec(`UPDATE equipment\s+SET name = \$2`).
		WithArgs("eq1", "Padel Ball (3 pack)", "Balls", "Tournament balls", 1800.0, 40, true, int64(1717260000000)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM equipment WHERE id = \$1`).
		WithArgs("eq404").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM equipment WHERE id = \$1`).
		WithArgs("eq1").
		WillReturnError(errors.New("connection reset"))

	ctx := context.Background()

	changes, err := repo.Update(ctx, equipment)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	changes, err = repo.Delete(ctx, "eq404")
	require.NoError(t, err)
	assert.Zero(t, changes)

	_, err = repo.Delete(ctx, "eq1")
	assert.ErrorContains(t, err, "delete equipment eq1: connection reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_FindByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPackageRepository(mock, zap.NewNop())

	duration := 120
	columns := []string{"id", "name", "description", "price", "duration", "includes_equipment", "includes_coaching", "is_active", "created_at", "updated_at"}
	mock.ExpectQuery(`FROM packages WHERE id = \$1`).
		WithArgs("pkg1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("pkg1", "Birthday Package", "2 hours court + equipment", 25000.0, &duration, true, false, true, int64(1), int64(1)))
	mock.ExpectQuery(`FROM packages WHERE id = \$1`).
		WithArgs("pkg404").
		WillReturnError(pgx.ErrNoRows)

	ctx := context.Background()

	pkg, err := repo.FindByID(ctx, "pkg1")
	require.NoError(t, err)
	require.NotNil(t, pkg)
	require.NotNil(t, pkg.DurationMinutes)
	assert.Equal(t, 120, *pkg.DurationMinutes)
	assert.True(t, pkg.IncludesEquipment)

	missing, err := repo.FindByID(ctx, "pkg404")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}
