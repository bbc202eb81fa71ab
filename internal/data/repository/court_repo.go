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

type CourtRepository interface {
	FindAllActive(ctx context.Context) ([]*entity.Court, error)
	FindByTypeAndNumber(ctx context.Context, courtType entity.CourtType, courtNumber int) (*entity.Court, error)
}

type courtRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourtRepository(db database.PgxIface, log *zap.Logger) CourtRepository {
	return &courtRepository{
		db:  db,
		log: log.With(zap.String("repository", "court")),
	}
}

const courtColumns = `id, court_type, court_number, hourly_rate, slot_duration, is_active, COALESCE(maintenance_notes, '')`

func scanCourt(row pgx.Row) (*entity.Court, error) {
	var court entity.Court
	err := row.Scan(
		&court.ID,
		&court.CourtType,
		&court.CourtNumber,
		&court.HourlyRate,
		&court.SlotDuration,
		&court.IsActive,
		&court.MaintenanceNotes,
	)
	if err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *courtRepository) FindAllActive(ctx context.Context) ([]*entity.Court, error) {
	query := `SELECT ` + courtColumns + `
		FROM courts
		WHERE is_active = TRUE
		ORDER BY court_type, court_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active courts", zap.Error(err))
		return nil, fmt.Errorf("find active courts: %w", err)
	}
	defer rows.Close()

	courts := make([]*entity.Court, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			r.log.Error("Failed to scan court row", zap.Error(err))
			return nil, fmt.Errorf("scan court row: %w", err)
		}
		courts = append(courts, court)
	}

	return courts, rows.Err()
}

func (r *courtRepository) FindByTypeAndNumber(ctx context.Context, courtType entity.CourtType, courtNumber int) (*entity.Court, error) {
	query := `SELECT ` + courtColumns + `
		FROM courts
		WHERE court_type = $1 AND court_number = $2`

	court, err := scanCourt(r.db.QueryRow(ctx, query, courtType, courtNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find court",
			zap.Error(err),
			zap.String("court_type", string(courtType)),
			zap.Int("court_number", courtNumber),
		)
		return nil, fmt.Errorf("find court %s %d: %w", courtType, courtNumber, err)
	}

	return court, nil
}
