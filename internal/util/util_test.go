package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID_Format(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	id := NewTrackingID(now)

	assert.Regexp(t, `^SC\d{6}[A-Z0-9]{6}$`, id)
	assert.Equal(t, "SC250830", id[:8])
}

func TestNewTrackingID_Varies(t *testing.T) {
	now := time.Now()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewTrackingID(now)] = true
	}

	assert.Greater(t, len(seen), 1)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name  string
		page  int
		limit int
		want  []int
	}{
		{name: "first page", page: 1, limit: 2, want: []int{1, 2}},
		{name: "middle page", page: 2, limit: 2, want: []int{3, 4}},
		{name: "short last page", page: 3, limit: 2, want: []int{5}},
		{name: "past the end", page: 4, limit: 2, want: []int{}},
		{name: "zero page defaults to first", page: 0, limit: 2, want: []int{1, 2}},
		{name: "zero limit defaults to 20", page: 1, limit: 0, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.limit)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}
