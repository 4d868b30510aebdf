package models

import "time"

// UserRecord is the single local profile stored per installation. The
// application is a single-user desktop tool, so exactly one record exists;
// it is created with defaults on first run and cleared only by an explicit
// reset.
type UserRecord struct {
	// Username is the display name shown in the dashboard. Trimmed to 50
	// characters on save.
	Username string `json:"username"`

	// Email is the address used to locate the matching panel account.
	// Stored lowercased; validated against a basic email pattern before
	// acceptance.
	Email string `json:"email"`

	// Coins is the current virtual-coin balance. Never negative.
	Coins int `json:"coins"`

	// HasRedeemed marks that the one-time redemption has been used.
	// When true, RedeemedService and PanelServerID are non-null.
	HasRedeemed bool `json:"has_redeemed"`

	// RedeemedService is the display name of the redeemed plan, or empty.
	RedeemedService string `json:"redeemed_service,omitempty"`

	// PanelUserID is the remote panel account id matched during redemption.
	PanelUserID int64 `json:"panel_user_id,omitempty"`

	// PanelServerID is the identifier of the provisioned server resource.
	PanelServerID string `json:"panel_server_id,omitempty"`

	// Quests maps quest id to its claim state.
	Quests map[string]QuestProgress `json:"quests"`
}

// QuestProgress tracks the once-per-day claim state of a single quest.
type QuestProgress struct {
	// LastClaimed is the wall-clock time of the most recent claim, or the
	// zero time if the quest has never been claimed.
	LastClaimed time.Time `json:"last_claimed,omitzero"`
}

// Session holds the panel login state cached in the local store after a
// successful API-key login. The API key itself is persisted sealed, never
// in plaintext.
type Session struct {
	// AccountID is the panel account id of the logged-in user.
	AccountID int64 `json:"account_id"`

	// Username and Email mirror the panel account attributes.
	Username string `json:"username"`
	Email    string `json:"email"`

	// Admin is the panel's root-admin flag; it gates the admin operations.
	Admin bool `json:"admin"`

	// SealedAPIKey is the client API key encrypted at rest by the keychain.
	SealedAPIKey string `json:"sealed_api_key"`

	// LoggedInAt records when the session was established.
	LoggedInAt time.Time `json:"logged_in_at"`
}
