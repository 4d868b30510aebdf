package handler

import (
	"context"

	"github.com/cloudix/coindesk/models"
)

func (h *Handler) Version() models.VersionResult {
	return models.VersionResult{Result: models.OK(), Version: h.services.Updates.Version()}
}

func (h *Handler) CheckForUpdates(ctx context.Context) models.UpdateCheckResult {
	info, err := h.services.Updates.Check(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("update check failed")
		return models.UpdateCheckResult{Result: models.Failure(localize(err))}
	}

	return models.UpdateCheckResult{
		Result:         models.OK(),
		HasUpdate:      info.HasUpdate,
		CurrentVersion: info.CurrentVersion,
		LatestVersion:  info.LatestVersion,
		DownloadURL:    info.DownloadURL,
		Changelog:      info.Changelog,
	}
}

// DownloadUpdate opens the release download page in the browser.
func (h *Handler) DownloadUpdate() models.Result {
	if err := h.services.External.Open(h.services.Updates.DownloadURL()); err != nil {
		h.logger.Error().Err(err).Msg("opening download page failed")
		return models.Failure(localize(err))
	}
	return models.OK()
}

// InstallUpdate hands the session over to the installer: it opens the
// release download and reports success so the UI can exit. There is no
// in-process updater runtime to restart into.
func (h *Handler) InstallUpdate() models.Result {
	if err := h.services.External.Open(h.services.Updates.DownloadURL()); err != nil {
		h.logger.Error().Err(err).Msg("opening installer download failed")
		return models.Failure(localize(err))
	}
	h.logger.Info().Msg("installer handoff, client will exit")
	return models.Result{Success: true, Message: "Стартирай инсталатора след изтеглянето."}
}
