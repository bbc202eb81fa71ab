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

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindAll(ctx context.Context) ([]*entity.Package, error)
	FindByID(ctx context.Context, id string) (*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `id, name, COALESCE(description, ''), price, duration,
	includes_equipment, includes_coaching, is_active, created_at, updated_at`

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.DurationMinutes,
		&p.IncludesEquipment,
		&p.IncludesCoaching,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, name, description, price, duration, includes_equipment, includes_coaching, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Price,
		pkg.DurationMinutes,
		pkg.IncludesEquipment,
		pkg.IncludesCoaching,
		pkg.IsActive,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("package_id", pkg.ID),
			zap.String("name", pkg.Name),
		)
		return fmt.Errorf("create package %s: %w", pkg.Name, err)
	}

	return nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find packages", zap.Error(err))
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer rows.Close()

	packages := make([]*entity.Package, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, p)
	}

	return packages, rows.Err()
}

func (r *packageRepository) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	p, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id, err)
	}

	return p, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) (int64, error) {
	query := `
		UPDATE packages
		SET name = $2, description = $3, price = $4, duration = $5,
		    includes_equipment = $6, includes_coaching = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Price,
		pkg.DurationMinutes,
		pkg.IncludesEquipment,
		pkg.IncludesCoaching,
		pkg.IsActive,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update package",
			zap.Error(err),
			zap.String("package_id", pkg.ID),
		)
		return 0, fmt.Errorf("update package %s: %w", pkg.ID, err)
	}

	return result.RowsAffected(), nil
}

func (r *packageRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id),
		)
		return 0, fmt.Errorf("delete package %s: %w", id, err)
	}

	return result.RowsAffected(), nil
}
