package repository

import (
	"context"
	"errors"
	"fmt"

	"padel-booking/internal/data/entity"
	"padel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *entity.Equipment) error
	FindAll(ctx context.Context) ([]*entity.Equipment, error)
	FindByID(ctx context.Context, id string) (*entity.Equipment, error)
	Update(ctx context.Context, equipment *entity.Equipment) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type equipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEquipmentRepository(db database.PgxIface, log *zap.Logger) EquipmentRepository {
	return &equipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "equipment")),
	}
}

const equipmentColumns = `id, name, category, COALESCE(description, ''), price, stock_quantity, is_active, created_at, updated_at`

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Category,
		&e.Description,
		&e.Price,
		&e.StockQuantity,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepository) Create(ctx context.Context, equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipment (id, name, category, description, price, stock_quantity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		equipment.ID,
		equipment.Name,
		equipment.Category,
		equipment.Description,
		equipment.Price,
		equipment.StockQuantity,
		equipment.IsActive,
		equipment.CreatedAt,
		equipment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create equipment",
			zap.Error(err),
			zap.String("equipment_id", equipment.ID),
			zap.String("name", equipment.Name),
		)
		return fmt.Errorf("create equipment %s: %w", equipment.Name, err)
	}

	return nil
}

func (r *equipmentRepository) FindAll(ctx context.Context) ([]*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY category, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find equipment", zap.Error(err))
		return nil, fmt.Errorf("find equipment: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			r.log.Error("Failed to scan equipment row", zap.Error(err))
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		items = append(items, e)
	}

	return items, rows.Err()
}

func (r *equipmentRepository) FindByID(ctx context.Context, id string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`

	e, err := scanEquipment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find equipment by ID",
			zap.Error(err),
			zap.String("equipment_id", id),
		)
		return nil, fmt.Errorf("find equipment by ID %s: %w", id, err)
	}

	return e, nil
}

// Update replaces every mutable field. Zero rows affected means the id is unknown.
func (r *equipmentRepository) Update(ctx context.Context, equipment *entity.Equipment) (int64, error) {
	query := `
		UPDATE equipment
		SET name = $2, category = $3, description = $4, price = $5,
		    stock_quantity = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		equipment.ID,
		equipment.Name,
		equipment.Category,
		equipment.Description,
		equipment.Price,
		equipment.StockQuantity,
		equipment.IsActive,
		equipment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update equipment",
			zap.Error(err),
			zap.String("equipment_id", equipment.ID),
		)
		return 0, fmt.Errorf("update equipment %s: %w", equipment.ID, err)
	}

	return result.RowsAffected(), nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM equipment WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete equipment",
			zap.Error(err),
			zap.String("equipment_id", id),
		)
		return 0, fmt.Errorf("delete equipment %s: %w", id, err)
	}

	if result.RowsAffected() > 0 {
		r.log.Info("Equipment deleted", zap.String("equipment_id", id))
	}
	return result.RowsAffected(), nil
}
