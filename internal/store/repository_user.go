package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/models"
)

// Keys inside the user-data document.
const (
	keyRecord        = "record"
	keySession       = "session"
	keyPendingCoins  = "pending_coins"
	keyPendingResets = "pending_resets"
)

type userRepository struct {
	doc    Document
	logger *logger.Logger
}

// NewUserRepository returns the typed [UserRepository] view over the
// user-data document.
func NewUserRepository(doc Document, log *logger.Logger) UserRepository {
	return &userRepository{doc: doc, logger: log}
}

func defaultRecord() models.UserRecord {
	return models.UserRecord{
		Username: "CloudiX User",
		Email:    "",
		Coins:    0,
		Quests:   make(map[string]models.QuestProgress),
	}
}

func (r *userRepository) Record(ctx context.Context) (models.UserRecord, error) {
	var rec models.UserRecord
	err := r.doc.Get(ctx, keyRecord, &rec)
	if errors.Is(err, ErrKeyNotFound) {
		rec = defaultRecord()
		if saveErr := r.doc.Set(ctx, keyRecord, rec); saveErr != nil {
			return models.UserRecord{}, fmt.Errorf("initialize user record: %w", saveErr)
		}
		r.logger.Info().Msg("initialized default user data")
		return rec, nil
	}
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("load user record: %w", err)
	}

	if rec.Quests == nil {
		rec.Quests = make(map[string]models.QuestProgress)
	}
	return rec, nil
}

func (r *userRepository) SaveRecord(ctx context.Context, rec models.UserRecord) error {
	if err := r.doc.Set(ctx, keyRecord, rec); err != nil {
		return fmt.Errorf("save user record: %w", err)
	}
	return nil
}

func (r *userRepository) ResetRecord(ctx context.Context) error {
	if err := r.doc.Clear(ctx); err != nil {
		return fmt.Errorf("clear user document: %w", err)
	}
	if err := r.doc.Set(ctx, keyRecord, defaultRecord()); err != nil {
		return fmt.Errorf("reinitialize user record: %w", err)
	}
	r.logger.Info().Msg("user data reset to defaults")
	return nil
}

func (r *userRepository) Session(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := r.doc.Get(ctx, keySession, &s)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

func (r *userRepository) SaveSession(ctx context.Context, s models.Session) error {
	if err := r.doc.Set(ctx, keySession, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *userRepository) ClearSession(ctx context.Context) error {
	if err := r.doc.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (r *userRepository) PendingCoins(ctx context.Context) (map[string]int, error) {
	pending := make(map[string]int)
	err := r.doc.Get(ctx, keyPendingCoins, &pending)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("load pending coins: %w", err)
	}
	return pending, nil
}

func (r *userRepository) SavePendingCoins(ctx context.Context, pending map[string]int) error {
	if len(pending) == 0 {
		return r.doc.Delete(ctx, keyPendingCoins)
	}
	if err := r.doc.Set(ctx, keyPendingCoins, pending); err != nil {
		return fmt.Errorf("save pending coins: %w", err)
	}
	return nil
}

func (r *userRepository) PendingResets(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.doc.Get(ctx, keyPendingResets, &emails)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("load pending resets: %w", err)
	}
	return emails, nil
}

func (r *userRepository) SavePendingResets(ctx context.Context, emails []string) error {
	if len(emails) == 0 {
		return r.doc.Delete(ctx, keyPendingResets)
	}
	if err := r.doc.Set(ctx, keyPendingResets, emails); err != nil {
		return fmt.Errorf("save pending resets: %w", err)
	}
	return nil
}
