package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== RECORD IDS ====================

const (
	PrefixBooking   = "booking"
	PrefixEquipment = "eq"
	PrefixPackage   = "pkg"
	PrefixSale      = "sale"
)

// GenerateID builds ids of the form PREFIX_UNIXMS_RANDOM, e.g.
// booking_1717250400000_9f86d081. Uniqueness comes from the uuid part.
func GenerateID(prefix string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), random)
}

func GenerateBookingID() string {
	return GenerateID(PrefixBooking)
}

func GenerateSaleID() string {
	return GenerateID(PrefixSale)
}

// ==================== TIMESTAMPS ====================

// NowMillis returns the current time as epoch milliseconds, the unit used by
// every created_at/updated_at column.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
