package repository

import (
	"errors"

	"padel-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSlotTaken is returned when the partial unique index over active
// bookings rejects a write. Handlers translate it into 409.
var ErrSlotTaken = errors.New("slot already booked")

// uniqueViolation is the PostgreSQL SQLSTATE for a unique index conflict.
const uniqueViolation = "23505"

// isSlotConflict reports a unique violation on the slot index. Other unique
// violations, such as a duplicate primary key, stay ordinary store errors.
func isSlotConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == database.UniqueSlotIndex
}
