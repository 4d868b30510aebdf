package models

import "time"

// Quest is a static catalog entry describing a coin reward tied to an
// external Discord invite milestone. Claims are honor-system: the invite
// count is not verified by this application.
type Quest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Coins       int    `json:"coins"`
	Icon        string `json:"icon"`
}

// QuestStatus decorates a catalog entry with the caller's claim state.
type QuestStatus struct {
	Quest

	// CanClaim reports whether the quest may be claimed right now
	// (claims reset at local midnight, by calendar date).
	CanClaim bool `json:"can_claim"`

	// LastClaimed is the most recent claim time, zero if never claimed.
	LastClaimed time.Time `json:"last_claimed,omitzero"`
}
