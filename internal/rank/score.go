// Package rank turns interaction records into popularity scores.
package rank

import (
	"time"

	"cafe/internal/models"
)

const (
	favoriteWeight = 20
	clickWeight    = 2
	dayBonus       = 6
	weekBonus      = 3
)

// Score is the popularity of a place at the instant now. A nil record
// scores zero. The score is additive and unbounded.
func Score(rec *models.InteractionRecord, now time.Time) float64 {
	if rec == nil {
		return 0
	}
	var s float64
	if rec.Favorite {
		s += favoriteWeight
	}
	s += float64(rec.ClickCount * clickWeight)
	if rec.LastSeenAt != nil {
		age := now.Sub(*rec.LastSeenAt)
		switch {
		case age <= 24*time.Hour:
			s += dayBonus
		case age <= 7*24*time.Hour:
			s += weekBonus
		}
	}
	return s
}
