package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"padel-booking/internal/data/entity"
	"padel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	Patch(ctx context.Context, id string, fields map[string]any) (int64, error)

	// Business queries
	FindByDate(ctx context.Context, date string) ([]*entity.Booking, error)
	FindActiveBySlot(ctx context.Context, courtType entity.CourtType, courtNumber int, date, startTime string) (*entity.Booking, error)
	FindByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Booking, error)
	FindAfterDate(ctx context.Context, date string) ([]*entity.Booking, error)
}

// PatchableColumns are the booking columns a partial update may set.
var PatchableColumns = map[string]bool{
	"court_type":       true,
	"court_number":     true,
	"date":             true,
	"start_time":       true,
	"end_time":         true,
	"duration":         true,
	"customer_name":    true,
	"customer_contact": true,
	"status":           true,
	"amount_paid":      true,
	"updated_at":       true,
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, court_type, court_number, date, start_time, end_time, duration,
	customer_name, customer_contact, status, amount_paid, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.CourtType,
		&booking.CourtNumber,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.DurationMinutes,
		&booking.CustomerName,
		&booking.CustomerContact,
		&booking.Status,
		&booking.AmountPaid,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, op, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err), zap.Any("args", args))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CourtType,
		booking.CourtNumber,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.DurationMinutes,
		booking.CustomerName,
		booking.CustomerContact,
		booking.Status,
		booking.AmountPaid,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if isSlotConflict(err) {
		r.log.Warn("Booking rejected by unique slot index",
			zap.String("booking_id", booking.ID),
			zap.String("date", booking.Date),
			zap.String("start_time", booking.StartTime),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, ErrSlotTaken)
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.String("court_type", string(booking.CourtType)),
			zap.Int("court_number", booking.CourtNumber),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY date DESC, start_time DESC`

	return r.queryBookings(ctx, "find all bookings", query)
}

// Patch sets only the given columns. Callers validate values; column names
// are checked against PatchableColumns here because they end up in the SQL text.
func (r *bookingRepository) Patch(ctx context.Context, id string, fields map[string]any) (int64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("invalid patch for booking %s: no fields to update", id)
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		if !PatchableColumns[column] {
			return 0, fmt.Errorf("invalid patch for booking %s: unknown field %s", id, column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
		args = append(args, fields[column])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE bookings SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if isSlotConflict(err) {
		return 0, fmt.Errorf("patch booking %s: %w", id, ErrSlotTaken)
	}
	if err != nil {
		r.log.Error("Failed to patch booking",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.Strings("columns", columns),
		)
		return 0, fmt.Errorf("patch booking %s: %w", id, err)
	}

	return result.RowsAffected(), nil
}

func (r *bookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1
		ORDER BY court_type, court_number, start_time`

	return r.queryBookings(ctx, "find bookings by date "+date, query, date)
}

func (r *bookingRepository) FindActiveBySlot(ctx context.Context, courtType entity.CourtType, courtNumber int, date, startTime string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE court_type = $1 AND court_number = $2 AND date = $3 AND start_time = $4
		  AND status <> 'Cancelled'
		LIMIT 1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, courtType, courtNumber, date, startTime))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by slot",
			zap.Error(err),
			zap.String("court_type", string(courtType)),
			zap.Int("court_number", courtNumber),
			zap.String("date", date),
			zap.String("start_time", startTime),
		)
		return nil, fmt.Errorf("find booking for %s %d on %s %s: %w", courtType, courtNumber, date, startTime, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, start_time`

	return r.queryBookings(ctx, "find bookings by date range", query, startDate, endDate)
}

func (r *bookingRepository) FindAfterDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date > $1
		ORDER BY date, start_time`

	return r.queryBookings(ctx, "find bookings after "+date, query, date)
}
