package entity

// Timestamps are epoch milliseconds.
type Timestamps struct {
	CreatedAt int64 `db:"created_at"`
	UpdatedAt int64 `db:"updated_at"`
}
