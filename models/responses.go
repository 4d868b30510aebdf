package models

import "time"

// Result is the uniform envelope returned by every command-surface
// operation. Callers (the UI) never see raw errors, only result values:
// on failure Success is false and Error carries a localized message.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Failure builds a failed Result with the given localized message.
func Failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

// OK is the bare successful Result.
func OK() Result {
	return Result{Success: true}
}

// LoginResult is returned by the login operation.
type LoginResult struct {
	Result
	Account PanelAccount  `json:"user,omitempty"`
	Servers []PanelServer `json:"servers,omitempty"`
}

// LoginStatus is returned by check-login-status. It reads only the local
// store and performs no remote call.
type LoginStatus struct {
	IsLoggedIn bool   `json:"is_logged_in"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	IsAdmin    bool   `json:"is_admin,omitempty"`
}

// UserDataResult wraps the local profile for the UI.
type UserDataResult struct {
	Result
	User UserRecord `json:"user,omitempty"`
}

// QuestsResult carries the decorated quest catalog.
type QuestsResult struct {
	Result
	Quests []QuestStatus `json:"quests,omitempty"`
}

// ServicesResult carries the public plan catalog.
type ServicesResult struct {
	Result
	Services []ServicePlanView `json:"services,omitempty"`
}

// SettingsResult wraps the UI preferences.
type SettingsResult struct {
	Result
	Settings Settings `json:"settings,omitempty"`
}

// VersionResult is returned by the get-version operation.
type VersionResult struct {
	Result
	Version string `json:"version,omitempty"`
}

// ClaimResult is returned by claim-quest.
type ClaimResult struct {
	Result
	CoinsEarned int `json:"coins_earned,omitempty"`
	NewBalance  int `json:"new_balance,omitempty"`
}

// BalanceResult is returned by the admin add-coins operation.
type BalanceResult struct {
	Result
	NewBalance int `json:"new_balance,omitempty"`
}

// ValidateRedeemResult carries everything the UI needs to render the
// server-configuration form between the two redemption phases.
type ValidateRedeemResult struct {
	Result
	Plan        ServicePlanView `json:"service,omitempty"`
	PanelUserID int64           `json:"panel_user_id,omitempty"`
	EggConfig   EggConfig       `json:"egg_config,omitempty"`
	PanelURL    string          `json:"panel_url,omitempty"`
}

// ConfirmRedeemResult is returned by confirm-redeem on success.
type ConfirmRedeemResult struct {
	Result
	Service       string `json:"service,omitempty"`
	NewBalance    int    `json:"new_balance,omitempty"`
	PanelServerID string `json:"panel_server_id,omitempty"`
}

// UpdateCheckResult is returned by the update-check operation.
type UpdateCheckResult struct {
	Result
	HasUpdate      bool     `json:"has_update"`
	CurrentVersion string   `json:"current_version,omitempty"`
	LatestVersion  string   `json:"latest_version,omitempty"`
	DownloadURL    string   `json:"download_url,omitempty"`
	Changelog      []string `json:"changelog,omitempty"`
}

// Settings is the UI preference document.
type Settings struct {
	Theme string `json:"theme"`
}

// ProvisionResult is what the provisioner hands back on success: the
// created resource identifier plus docker/allocation metadata for logging.
type ProvisionResult struct {
	Identifier    string
	UUID          string
	DockerImage   string
	GamePort      int
	AdminPort     int
	ProvisionedAt time.Time
}
