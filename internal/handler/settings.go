package handler

import (
	"context"

	"github.com/cloudix/coindesk/models"
)

func (h *Handler) Settings(ctx context.Context) models.SettingsResult {
	settings, err := h.services.Settings.Get(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("loading settings failed")
		return models.SettingsResult{Result: models.Failure(localize(err))}
	}
	return models.SettingsResult{Result: models.OK(), Settings: settings}
}

func (h *Handler) SaveSettings(ctx context.Context, settings models.Settings) models.Result {
	if err := h.services.Settings.Save(ctx, settings); err != nil {
		h.logger.Warn().Err(err).Msg("saving settings rejected")
		return models.Failure(localize(err))
	}
	return models.OK()
}

// OpenExternal hands an allow-listed URL to the system browser.
func (h *Handler) OpenExternal(url string) models.Result {
	if err := h.services.External.Open(url); err != nil {
		return models.Failure(localize(err))
	}
	return models.OK()
}
