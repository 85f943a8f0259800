package util

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const trackingIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTrackingID builds a human-readable tracking code: the "SC" prefix, the
// date as yymmdd and a six-character random suffix, e.g. SC250830A1B2C3.
// Uniqueness is probabilistic; collisions within one day are vanishingly rare
// at this platform's volume.
func NewTrackingID(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = trackingIDAlphabet[rand.IntN(len(trackingIDAlphabet))]
	}

	return fmt.Sprintf("SC%s%s", now.Format("060102"), suffix)
}

// Paginate slices a full result set to one page. Page numbers start at 1;
// out-of-range pages yield an empty slice.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// TotalPages reports how many pages of the given size a result set spans.
func TotalPages(total, limit int) int {
	if limit < 1 {
		limit = 20
	}
	if total == 0 {
		return 0
	}

	return (total + limit - 1) / limit
}
