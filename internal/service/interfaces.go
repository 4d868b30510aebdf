// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

// Package service implements the application core: login and session
// handling, the quest and redemption ledgers over the local store, and
// the provisioning pipeline that turns a redeemed plan into a server on
// the remote panel.
package service

import (
	"context"

	"github.com/cloudix/coindesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock
//go:generate mockgen -destination=mock_test.go -package=service github.com/cloudix/coindesk/internal/service AllocationResolver,Provisioner

// AuthService manages the panel session cached in the local store.
type AuthService interface {
	// Login validates apiKey against the panel, stores the session with
	// the key sealed at rest, and applies any pending admin grants
	// queued for the account's email. Returns the account and its
	// servers for display.
	Login(ctx context.Context, apiKey string) (models.PanelAccount, []models.PanelServer, error)

	// Logout removes the cached session. A missing session is not an
	// error.
	Logout(ctx context.Context) error

	// Status reports the cached login state. It reads only the local
	// store and never calls the panel.
	Status(ctx context.Context) (models.LoginStatus, error)
}

// UserService covers profile edits, the wholesale data reset, and the
// admin-gated balance operations.
type UserService interface {
	// Record returns the local user record merged with the current
	// session email when the profile has none.
	Record(ctx context.Context) (models.UserRecord, error)

	// SaveProfile validates and persists the editable profile fields.
	// The username is trimmed to 50 characters; the email must match a
	// basic pattern and is stored lowercased.
	SaveProfile(ctx context.Context, username, email string) error

	// ResetData clears the user document wholesale and reinitializes
	// defaults. It does not touch the session.
	ResetData(ctx context.Context) error

	// AddCoins credits amount to the user identified by email. When the
	// email matches the local profile the balance changes immediately;
	// otherwise the grant is queued until that user logs in here.
	// Requires an admin session.
	AddCoins(ctx context.Context, email string, amount int) (AdminGrant, error)

	// ResetUser clears the redemption fields for the user identified by
	// email, immediately or queued as with AddCoins. Requires an admin
	// session.
	ResetUser(ctx context.Context, email string) (AdminGrant, error)

	// ResetAll zeroes the balance and clears redemption state and quest
	// claims for the user identified by email, immediately or queued.
	// Requires an admin session.
	ResetAll(ctx context.Context, email string) (AdminGrant, error)
}

// AdminGrant reports the outcome of an admin balance operation.
type AdminGrant struct {
	// Queued is true when the target email did not match the local
	// profile and the operation was stored for that user's next login.
	Queued bool

	// NewBalance is the resulting balance for immediate operations.
	NewBalance int
}

// QuestService is the once-per-day claim ledger over the static quest
// catalog.
type QuestService interface {
	// List decorates the catalog with the caller's claim state.
	List(ctx context.Context) ([]models.QuestStatus, error)

	// Claim credits the quest reward if the quest exists and has not
	// been claimed on the current calendar day. Returns the coins
	// earned and the new balance.
	Claim(ctx context.Context, questID string) (earned, newBalance int, err error)
}

// AllocationResolver finds or creates a node allocation for a port.
type AllocationResolver interface {
	// Resolve returns the id of an unassigned allocation for port on
	// the configured node, creating one when absent. Returns
	// [ErrAllocationConflict] when the port exists but is assigned to
	// another server, and [ErrAllocationNotFound] when a created
	// allocation cannot be located on re-listing.
	Resolve(ctx context.Context, port int) (int64, error)
}

// ProvisionInput is everything the provisioner needs to create a server.
// It is produced by the redemption validate phase plus the user's form.
type ProvisionInput struct {
	PanelUserID int64
	Plan        models.ServicePlan
	Egg         models.EggConfig
	ServerName  string
	Environment map[string]string
}

// Provisioner creates the panel server for a validated redemption. It
// mutates no local state.
type Provisioner interface {
	Provision(ctx context.Context, in ProvisionInput) (models.ProvisionResult, error)
}

// ValidatedRedemption is the outcome of the redemption validate phase:
// the data the UI needs to render the server-configuration form.
type ValidatedRedemption struct {
	Plan      models.ServicePlan
	PanelUser models.PanelUser
	Egg       models.EggConfig
}

// ConfirmedRedemption is the outcome of a successful confirm phase.
type ConfirmedRedemption struct {
	ServiceName   string
	NewBalance    int
	PanelServerID string
}

// RedeemService is the one-time redemption ledger: a two-phase exchange
// of coins for a provisioned server.
type RedeemService interface {
	// Plans returns the public plan catalog.
	Plans() []models.ServicePlanView

	// Validate checks eligibility for planID without side effects:
	// local guards first, then the remote account lookup and egg fetch.
	Validate(ctx context.Context, planID string) (ValidatedRedemption, error)

	// Confirm re-runs every validate guard, provisions the server, and
	// only on success commits the debit and redemption flags in a
	// single store write.
	Confirm(ctx context.Context, planID, serverName string, env map[string]string) (ConfirmedRedemption, error)
}

// SettingsService stores the UI preferences.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)

	// Save accepts only the "dark" and "light" themes.
	Save(ctx context.Context, s models.Settings) error
}

// UpdateInfo is the result of an update check.
type UpdateInfo struct {
	HasUpdate      bool
	CurrentVersion string
	LatestVersion  string
	DownloadURL    string
	Changelog      []string
}

// UpdateService checks the distribution endpoint for newer releases.
type UpdateService interface {
	// Check fetches the version manifest and compares it against the
	// built-in version.
	Check(ctx context.Context) (UpdateInfo, error)

	// Version returns the built-in application version.
	Version() string

	// DownloadURL returns the release download page, for handing to the
	// external opener.
	DownloadURL() string
}

// ExternalOpener opens URLs in the system browser, restricted to an
// allow-list of trusted destinations.
type ExternalOpener interface {
	// Allowed reports whether url passes the allow-list.
	Allowed(url string) bool

	// Open validates url against the allow-list and shells out to the
	// platform opener. Returns [ErrURLNotAllowed] for blocked URLs.
	Open(url string) error
}
