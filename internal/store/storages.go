package store

import (
	"context"
	"fmt"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
)

// Document names inside the shared SQLite file. One document per
// persisted state area, mirroring the two on-disk stores of the product:
// user/session data and UI preferences.
const (
	DocUserData = "user-data"
	DocSettings = "settings"
)

// ClientStorages groups all client-side storage views into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// UserData is the raw user/session key-value document.
	UserData Document

	// Settings is the UI preference document (theme).
	Settings Document

	// Users is the typed repository view over UserData used by the
	// ledgers.
	Users UserRepository
}

// NewClientStorages initialises the client storage layer using the
// supplied configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to the two
//     named documents and the user repository.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	userDoc := NewDocument(db, DocUserData, log)
	settingsDoc := NewDocument(db, DocSettings, log)

	return &ClientStorages{
		UserData: userDoc,
		Settings: settingsDoc,
		Users:    NewUserRepository(userDoc, log),
	}, nil
}
