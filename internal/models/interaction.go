package models

import "time"

// InteractionRecord is the per-place engagement state kept by the
// interaction store.
type InteractionRecord struct {
	Favorite   bool       `json:"favorite"`
	ClickCount int        `json:"clickCount"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
}

type InteractionType string

const (
	InteractionClick    InteractionType = "click"
	InteractionFavorite InteractionType = "favorite"
)

func (t InteractionType) Valid() bool {
	return t == InteractionClick || t == InteractionFavorite
}

// InteractionEvent is a user action on a place delivered over the event
// stream by UI collaborators.
//
// At is when the action happened; zero means processing time. Favorite, when
// set on a favorite event, is the target state and makes redelivery
// idempotent; without it the event toggles.
type InteractionEvent struct {
	Key      string          `json:"key"`
	Type     InteractionType `json:"type"`
	At       time.Time       `json:"at,omitempty"`
	Favorite *bool           `json:"favorite,omitempty"`
}
