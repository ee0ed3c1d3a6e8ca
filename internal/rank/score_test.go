package rank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cafe/internal/models"
)

func TestScore(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name string
		rec  *models.InteractionRecord
		want float64
	}{
		{"absent", nil, 0},
		{"favorite only", &models.InteractionRecord{Favorite: true}, 20},
		{"clicks seen now", &models.InteractionRecord{ClickCount: 3, LastSeenAt: at(0)}, 12},
		{"seen yesterday-ish", &models.InteractionRecord{ClickCount: 1, LastSeenAt: at(23 * time.Hour)}, 8},
		{"seen this week", &models.InteractionRecord{ClickCount: 1, LastSeenAt: at(3 * 24 * time.Hour)}, 5},
		{"seen long ago", &models.InteractionRecord{Favorite: true, ClickCount: 4, LastSeenAt: at(30 * 24 * time.Hour)}, 28},
		{"everything", &models.InteractionRecord{Favorite: true, ClickCount: 10, LastSeenAt: at(time.Minute)}, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.rec, now))
		})
	}
}
