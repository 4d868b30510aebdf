package store

import (
	"context"

	"github.com/cloudix/coindesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Document is the key-value port every ledger component takes as a
// constructor parameter. Values are JSON-encoded on write and decoded on
// read. A test double can replace the SQLite implementation.
type Document interface {
	// Get decodes the value stored under key into dest.
	// Returns [ErrKeyNotFound] if the key has never been set.
	Get(ctx context.Context, key string, dest any) error

	// Set JSON-encodes value and stores it under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, value any) error

	// Delete removes key from the document. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Has reports whether key is present in the document.
	Has(ctx context.Context, key string) (bool, error)

	// Clear removes every key from the document.
	Clear(ctx context.Context) error
}

// UserRepository is the typed view over the user-data document used by the
// ledgers. It owns the default-initialization of the single local record.
type UserRepository interface {
	// Record returns the local user record, initializing it with
	// defaults on first access.
	Record(ctx context.Context) (models.UserRecord, error)

	// SaveRecord persists the whole record in one write. Ledgers rely on
	// this to commit a debit and the redemption flags atomically from
	// the local store's perspective.
	SaveRecord(ctx context.Context, rec models.UserRecord) error

	// ResetRecord clears the user document wholesale and reinitializes
	// defaults.
	ResetRecord(ctx context.Context) error

	// Session returns the cached panel session.
	// Returns [ErrLocalSessionNotFound] when no session is stored.
	Session(ctx context.Context) (models.Session, error)

	// SaveSession persists the panel session after a successful login.
	SaveSession(ctx context.Context, s models.Session) error

	// ClearSession removes the cached panel session (logout).
	ClearSession(ctx context.Context) error

	// PendingCoins returns the queued admin coin grants keyed by
	// lowercased email.
	PendingCoins(ctx context.Context) (map[string]int, error)

	// SavePendingCoins replaces the queued coin grants.
	SavePendingCoins(ctx context.Context, pending map[string]int) error

	// PendingResets returns the lowercased emails with a queued
	// redemption reset.
	PendingResets(ctx context.Context) ([]string, error)

	// SavePendingResets replaces the queued reset list.
	SavePendingResets(ctx context.Context, emails []string) error
}
