// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudix/coindesk/internal/adapter"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/store"
	"github.com/cloudix/coindesk/models"
)

type redeemService struct {
	users       store.UserRepository
	admin       adapter.AdminAdapter
	provisioner Provisioner
	nestID      int64
	eggID       int64
	logger      *logger.Logger
}

func NewRedeemService(users store.UserRepository, admin adapter.AdminAdapter, provisioner Provisioner, nestID, eggID int64, log *logger.Logger) RedeemService {
	return &redeemService{
		users:       users,
		admin:       admin,
		provisioner: provisioner,
		nestID:      nestID,
		eggID:       eggID,
		logger:      log,
	}
}

func (r *redeemService) Plans() []models.ServicePlanView {
	views := make([]models.ServicePlanView, 0, len(planCatalog))
	for _, p := range planCatalog {
		views = append(views, p.View())
	}
	return views
}

// checkEligibility runs the local redemption guards against the record.
// It is pure: no store or panel access, so the guard order and outcomes
// are testable in isolation.
func checkEligibility(rec models.UserRecord, plan models.ServicePlan) error {
	switch {
	case rec.HasRedeemed:
		return ErrAlreadyRedeemed
	case rec.Coins < plan.Cost:
		return ErrInsufficientCoins
	case rec.Email == "":
		return ErrMissingEmail
	}
	return nil
}

// validate runs the full guard chain: local guards first so no remote
// call is made for an ineligible record, then the account lookup and the
// template fetch.
func (r *redeemService) validate(ctx context.Context, planID string) (ValidatedRedemption, error) {
	plan, ok := planByID(planID)
	if !ok {
		return ValidatedRedemption{}, ErrUnknownPlan
	}

	rec, err := r.users.Record(ctx)
	if err != nil {
		return ValidatedRedemption{}, fmt.Errorf("loading user record: %w", err)
	}
	if err = checkEligibility(rec, plan); err != nil {
		return ValidatedRedemption{}, err
	}

	panelUser, err := r.admin.FindUserByEmail(ctx, rec.Email)
	if errors.Is(err, adapter.ErrUserNotFound) {
		// Accounts are never auto-created here; the user must register
		// on the panel first.
		return ValidatedRedemption{}, fmt.Errorf("%w: %s", ErrAccountNotFound, rec.Email)
	}
	if err != nil {
		return ValidatedRedemption{}, fmt.Errorf("panel account lookup: %w", err)
	}

	egg, err := r.admin.GetEggConfig(ctx, r.nestID, r.eggID)
	if err != nil {
		return ValidatedRedemption{}, fmt.Errorf("fetching server template: %w", err)
	}

	return ValidatedRedemption{Plan: plan, PanelUser: panelUser, Egg: egg}, nil
}

func (r *redeemService) Validate(ctx context.Context, planID string) (ValidatedRedemption, error) {
	return r.validate(ctx, planID)
}

// Confirm implements RedeemService. All validate guards run again: the
// record may have changed between the two phases. The debit and the
// redemption flags are committed in one record write, and only after the
// panel reports the server created.
func (r *redeemService) Confirm(ctx context.Context, planID, serverName string, env map[string]string) (ConfirmedRedemption, error) {
	validated, err := r.validate(ctx, planID)
	if err != nil {
		return ConfirmedRedemption{}, err
	}

	provisioned, err := r.provisioner.Provision(ctx, ProvisionInput{
		PanelUserID: validated.PanelUser.ID,
		Plan:        validated.Plan,
		Egg:         validated.Egg,
		ServerName:  serverName,
		Environment: env,
	})
	if err != nil {
		return ConfirmedRedemption{}, err
	}

	rec, err := r.users.Record(ctx)
	if err != nil {
		return ConfirmedRedemption{}, fmt.Errorf("loading user record: %w", err)
	}
	rec.Coins -= validated.Plan.Cost
	rec.HasRedeemed = true
	rec.RedeemedService = validated.Plan.Name
	rec.PanelUserID = validated.PanelUser.ID
	rec.PanelServerID = provisioned.Identifier

	if err = r.users.SaveRecord(ctx, rec); err != nil {
		return ConfirmedRedemption{}, fmt.Errorf("committing redemption: %w", err)
	}

	r.logger.Info().
		Str("plan", validated.Plan.ID).
		Str("server", provisioned.Identifier).
		Int("balance", rec.Coins).
		Msg("redemption committed")

	return ConfirmedRedemption{
		ServiceName:   validated.Plan.Name,
		NewBalance:    rec.Coins,
		PanelServerID: provisioned.Identifier,
	}, nil
}
