package database

import (
	"context"
	"fmt"
	"time"
)

type seedTable struct {
	table  string
	insert string
	rows   [][]any
}

func sampleData(now int64) []seedTable {
	return []seedTable{
		{
			table: "courts",
			insert: `INSERT INTO courts (id, court_type, court_number, hourly_rate, slot_duration, is_active, maintenance_notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rows: [][]any{
				{"1", "Indoor", 1, 10000.0, 90, true, ""},
				{"2", "Indoor", 2, 10000.0, 90, true, ""},
				{"3", "Indoor", 3, 10000.0, 90, true, ""},
				{"4", "Indoor", 4, 10000.0, 90, true, ""},
				{"5", "Outdoor", 1, 7000.0, 60, true, ""},
				{"6", "Outdoor", 2, 7000.0, 60, true, ""},
				{"7", "Outdoor", 3, 7000.0, 60, true, ""},
				{"8", "Outdoor", 4, 7000.0, 60, true, ""},
			},
		},
		{
			table: "equipment",
			insert: `INSERT INTO equipment (id, name, category, description, price, stock_quantity, is_active, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			rows: [][]any{
				{"eq1", "Padel Ball (3 pack)", "Balls", "Professional padel balls", 1500.0, 50, true, now, now},
				{"eq2", "Padel Racket - Beginner", "Rackets", "Beginner friendly racket", 8000.0, 20, true, now, now},
				{"eq3", "Padel Racket - Pro", "Rackets", "Professional grade racket", 15000.0, 15, true, now, now},
				{"eq4", "Grip Tape", "Accessories", "Racket grip tape", 500.0, 100, true, now, now},
			},
		},
		{
			table: "packages",
			insert: `INSERT INTO packages (id, name, description, price, duration, includes_equipment, includes_coaching, is_active, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			rows: [][]any{
				{"pkg1", "Birthday Package", "2 hours court + equipment", 25000.0, 120, true, false, true, now, now},
				{"pkg2", "Corporate Package", "4 hours + coaching", 50000.0, 240, true, true, true, now, now},
				{"pkg3", "Coaching Package", "5 sessions with coach", 20000.0, 300, false, true, true, now, now},
			},
		},
	}
}

// SeedSampleData fills courts, equipment and packages, each only when the
// table is still empty. It returns the names of the tables it filled.
func SeedSampleData(ctx context.Context, db PgxIface) ([]string, error) {
	var seeded []string

	for _, t := range sampleData(time.Now().UnixMilli()) {
		var count int64
		if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(&count); err != nil {
			return seeded, fmt.Errorf("count %s: %w", t.table, err)
		}
		if count > 0 {
			continue
		}

		for _, row := range t.rows {
			if _, err := db.Exec(ctx, t.insert, row...); err != nil {
				return seeded, fmt.Errorf("seed %s row %v: %w", t.table, row[0], err)
			}
		}
		seeded = append(seeded, t.table)
	}

	return seeded, nil
}
