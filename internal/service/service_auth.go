// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudix/coindesk/internal/adapter"
	"github.com/cloudix/coindesk/internal/crypto"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/store"
	"github.com/cloudix/coindesk/models"
)

// minAPIKeyLength rejects obviously truncated keys before any remote call.
const minAPIKeyLength = 10

type authService struct {
	users    store.UserRepository
	account  adapter.AccountAdapter
	keychain crypto.KeyChainService
	logger   *logger.Logger
}

func NewAuthService(users store.UserRepository, account adapter.AccountAdapter, keychain crypto.KeyChainService, log *logger.Logger) AuthService {
	return &authService{users: users, account: account, keychain: keychain, logger: log}
}

func (a *authService) Login(ctx context.Context, apiKey string) (models.PanelAccount, []models.PanelServer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if len(apiKey) < minAPIKeyLength {
		return models.PanelAccount{}, nil, ErrEmptyAPIKey
	}

	account, err := a.account.GetAccount(ctx, apiKey)
	if err != nil {
		return models.PanelAccount{}, nil, fmt.Errorf("account lookup: %w", err)
	}

	servers, err := a.account.ListOwnServers(ctx, apiKey)
	if err != nil {
		// The session is still usable without the server list.
		a.logger.Warn().Err(err).Msg("listing own servers failed during login")
		servers = nil
	}

	sealed, err := a.keychain.Seal(apiKey)
	if err != nil {
		return models.PanelAccount{}, nil, fmt.Errorf("sealing api key: %w", err)
	}

	session := models.Session{
		AccountID:    account.ID,
		Username:     account.Username,
		Email:        strings.ToLower(account.Email),
		Admin:        account.Admin,
		SealedAPIKey: sealed,
		LoggedInAt:   time.Now(),
	}
	if err = a.users.SaveSession(ctx, session); err != nil {
		return models.PanelAccount{}, nil, fmt.Errorf("saving session: %w", err)
	}

	if err = a.syncRecordOnLogin(ctx, session); err != nil {
		return models.PanelAccount{}, nil, err
	}

	a.logger.Info().
		Str("username", account.Username).
		Bool("admin", account.Admin).
		Msg("panel login successful")
	return account, servers, nil
}

// syncRecordOnLogin overwrites the profile identity with the panel
// attributes and applies any admin grants queued for the email.
func (a *authService) syncRecordOnLogin(ctx context.Context, session models.Session) error {
	rec, err := a.users.Record(ctx)
	if err != nil {
		return fmt.Errorf("loading user record: %w", err)
	}

	rec.Username = session.Username
	rec.Email = session.Email

	pendingCoins, err := a.users.PendingCoins(ctx)
	if err != nil {
		return fmt.Errorf("loading pending coins: %w", err)
	}
	if amount, ok := pendingCoins[session.Email]; ok {
		rec.Coins += amount
		delete(pendingCoins, session.Email)
		if err = a.users.SavePendingCoins(ctx, pendingCoins); err != nil {
			return fmt.Errorf("saving pending coins: %w", err)
		}
		a.logger.Info().Int("amount", amount).Msg("applied queued coin grant")
	}

	pendingResets, err := a.users.PendingResets(ctx)
	if err != nil {
		return fmt.Errorf("loading pending resets: %w", err)
	}
	if idx := indexOf(pendingResets, session.Email); idx >= 0 {
		rec.HasRedeemed = false
		rec.RedeemedService = ""
		rec.PanelUserID = 0
		rec.PanelServerID = ""
		if err = a.users.SavePendingResets(ctx, append(pendingResets[:idx], pendingResets[idx+1:]...)); err != nil {
			return fmt.Errorf("saving pending resets: %w", err)
		}
		a.logger.Info().Msg("applied queued redemption reset")
	}

	return a.users.SaveRecord(ctx, rec)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.users.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	a.logger.Info().Msg("logged out")
	return nil
}

func (a *authService) Status(ctx context.Context) (models.LoginStatus, error) {
	session, err := a.users.Session(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.LoginStatus{IsLoggedIn: false}, nil
	}
	if err != nil {
		return models.LoginStatus{}, fmt.Errorf("loading session: %w", err)
	}

	return models.LoginStatus{
		IsLoggedIn: true,
		Username:   session.Username,
		Email:      session.Email,
		IsAdmin:    session.Admin,
	}, nil
}

func indexOf(list []string, want string) int {
	for i, v := range list {
		if v == want {
			return i
		}
	}
	return -1
}
