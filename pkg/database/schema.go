package database

import (
	"context"
	"fmt"
)

// schemaStatements run one at a time, in order, so a fresh database never
// sees interleaved DDL.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		court_type TEXT NOT NULL,
		court_number INTEGER NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		duration INTEGER NOT NULL,
		customer_name TEXT NOT NULL,
		customer_contact TEXT NOT NULL,
		status TEXT NOT NULL,
		amount_paid DOUBLE PRECISION NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS courts (
		id TEXT PRIMARY KEY,
		court_type TEXT NOT NULL,
		court_number INTEGER NOT NULL,
		hourly_rate DOUBLE PRECISION NOT NULL,
		slot_duration INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		maintenance_notes TEXT,
		UNIQUE (court_type, court_number)
	)`,

	`CREATE TABLE IF NOT EXISTS equipment (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT,
		price DOUBLE PRECISION NOT NULL,
		stock_quantity INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS packages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price DOUBLE PRECISION NOT NULL,
		duration INTEGER,
		includes_equipment BOOLEAN NOT NULL DEFAULT FALSE,
		includes_coaching BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sales (
		id TEXT PRIMARY KEY,
		item_id TEXT NOT NULL,
		item_name TEXT NOT NULL,
		item_type TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price_per_item DOUBLE PRECISION NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		customer_name TEXT,
		customer_contact TEXT,
		booking_id TEXT,
		sale_date TEXT NOT NULL,
		created_at BIGINT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_court_date ON bookings (court_type, court_number, date)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date)`,
}

// UniqueSlotIndex is the partial unique index over active bookings. A unique
// violation on it, and only on it, is a slot conflict.
const UniqueSlotIndex = "uq_bookings_active_slot"

const (
	createUniqueSlotStatement = `CREATE UNIQUE INDEX IF NOT EXISTS ` + UniqueSlotIndex + `
	ON bookings (court_type, court_number, date, start_time)
	WHERE status <> 'Cancelled'`

	dropUniqueSlotStatement = `DROP INDEX IF EXISTS ` + UniqueSlotIndex
)

// EnsureSchema creates every table if it does not exist yet. The partial
// unique index follows enforceUniqueSlot: it is created when on and dropped
// when off, so turning enforcement off lets identical slots through again.
func EnsureSchema(ctx context.Context, db PgxIface, enforceUniqueSlot bool) error {
	slotStatement := dropUniqueSlotStatement
	if enforceUniqueSlot {
		slotStatement = createUniqueSlotStatement
	}
	statements := append(append([]string{}, schemaStatements...), slotStatement)

	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}

	return nil
}
