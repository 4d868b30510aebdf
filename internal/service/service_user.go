// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/store"
	"github.com/cloudix/coindesk/models"
)

// emailPattern is deliberately loose: anything non-whitespace around a
// single '@' with a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// maxUsernameLength bounds the display name stored in the profile.
const maxUsernameLength = 50

type userService struct {
	users  store.UserRepository
	logger *logger.Logger
}

func NewUserService(users store.UserRepository, log *logger.Logger) UserService {
	return &userService{users: users, logger: log}
}

func (u *userService) Record(ctx context.Context) (models.UserRecord, error) {
	rec, err := u.users.Record(ctx)
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("loading user record: %w", err)
	}

	if rec.Email == "" {
		if session, serr := u.users.Session(ctx); serr == nil {
			rec.Email = session.Email
		}
	}
	return rec, nil
}

func (u *userService) SaveProfile(ctx context.Context, username, email string) error {
	rec, err := u.users.Record(ctx)
	if err != nil {
		return fmt.Errorf("loading user record: %w", err)
	}

	username = strings.TrimSpace(username)
	if username != "" {
		// Cut by runes, names are frequently Cyrillic.
		if runes := []rune(username); len(runes) > maxUsernameLength {
			username = string(runes[:maxUsernameLength])
		}
		rec.Username = username
	}

	if email != "" {
		email = strings.TrimSpace(email)
		if !emailPattern.MatchString(email) {
			return ErrInvalidEmail
		}
		rec.Email = strings.ToLower(email)
	}

	if err = u.users.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("saving user record: %w", err)
	}
	u.logger.Info().Str("username", rec.Username).Msg("profile updated")
	return nil
}

func (u *userService) ResetData(ctx context.Context) error {
	if err := u.users.ResetRecord(ctx); err != nil {
		return fmt.Errorf("resetting user record: %w", err)
	}
	u.logger.Info().Msg("local user data reset")
	return nil
}

// requireAdmin loads the session and fails unless the logged-in panel
// account carries the root-admin flag.
func (u *userService) requireAdmin(ctx context.Context) error {
	session, err := u.users.Session(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return ErrNotLoggedIn
	}
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if !session.Admin {
		return ErrNotAdmin
	}
	return nil
}

func (u *userService) AddCoins(ctx context.Context, email string, amount int) (AdminGrant, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return AdminGrant{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || amount < 1 {
		return AdminGrant{}, ErrInvalidEmail
	}

	rec, err := u.users.Record(ctx)
	if err != nil {
		return AdminGrant{}, fmt.Errorf("loading user record: %w", err)
	}

	if email == rec.Email {
		rec.Coins += amount
		if err = u.users.SaveRecord(ctx, rec); err != nil {
			return AdminGrant{}, fmt.Errorf("saving user record: %w", err)
		}
		u.logger.Info().Str("email", email).Int("amount", amount).Int("balance", rec.Coins).Msg("admin credited coins")
		return AdminGrant{NewBalance: rec.Coins}, nil
	}

	// Different profile: queue the grant for that user's next login.
	pending, err := u.users.PendingCoins(ctx)
	if err != nil {
		return AdminGrant{}, fmt.Errorf("loading pending coins: %w", err)
	}
	pending[email] += amount
	if err = u.users.SavePendingCoins(ctx, pending); err != nil {
		return AdminGrant{}, fmt.Errorf("saving pending coins: %w", err)
	}
	u.logger.Info().Str("email", email).Int("amount", amount).Msg("admin queued coin grant")
	return AdminGrant{Queued: true}, nil
}

func (u *userService) ResetUser(ctx context.Context, email string) (AdminGrant, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return AdminGrant{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return AdminGrant{}, ErrInvalidEmail
	}

	rec, err := u.users.Record(ctx)
	if err != nil {
		return AdminGrant{}, fmt.Errorf("loading user record: %w", err)
	}

	if email == rec.Email {
		clearRedemption(&rec)
		if err = u.users.SaveRecord(ctx, rec); err != nil {
			return AdminGrant{}, fmt.Errorf("saving user record: %w", err)
		}
		u.logger.Info().Str("email", email).Msg("admin reset redemption")
		return AdminGrant{NewBalance: rec.Coins}, nil
	}

	if err = u.queueReset(ctx, email); err != nil {
		return AdminGrant{}, err
	}
	return AdminGrant{Queued: true}, nil
}

func (u *userService) ResetAll(ctx context.Context, email string) (AdminGrant, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return AdminGrant{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return AdminGrant{}, ErrInvalidEmail
	}

	rec, err := u.users.Record(ctx)
	if err != nil {
		return AdminGrant{}, fmt.Errorf("loading user record: %w", err)
	}

	if email == rec.Email {
		rec.Coins = 0
		rec.Quests = map[string]models.QuestProgress{}
		clearRedemption(&rec)
		if err = u.users.SaveRecord(ctx, rec); err != nil {
			return AdminGrant{}, fmt.Errorf("saving user record: %w", err)
		}
		u.logger.Info().Str("email", email).Msg("admin reset all user data")
		return AdminGrant{NewBalance: 0}, nil
	}

	if err = u.queueReset(ctx, email); err != nil {
		return AdminGrant{}, err
	}
	return AdminGrant{Queued: true}, nil
}

func (u *userService) queueReset(ctx context.Context, email string) error {
	pending, err := u.users.PendingResets(ctx)
	if err != nil {
		return fmt.Errorf("loading pending resets: %w", err)
	}
	if indexOf(pending, email) < 0 {
		pending = append(pending, email)
		if err = u.users.SavePendingResets(ctx, pending); err != nil {
			return fmt.Errorf("saving pending resets: %w", err)
		}
	}
	u.logger.Info().Str("email", email).Msg("admin queued redemption reset")
	return nil
}

func clearRedemption(rec *models.UserRecord) {
	rec.HasRedeemed = false
	rec.RedeemedService = ""
	rec.PanelUserID = 0
	rec.PanelServerID = ""
}
