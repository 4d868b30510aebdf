package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/store"
	"github.com/cloudix/coindesk/models"
)

const settingsKey = "settings"

const defaultTheme = "dark"

type settingsService struct {
	doc    store.Document
	logger *logger.Logger
}

func NewSettingsService(doc store.Document, log *logger.Logger) SettingsService {
	return &settingsService{doc: doc, logger: log}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := s.doc.Get(ctx, settingsKey, &settings)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Settings{Theme: defaultTheme}, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	if settings.Theme == "" {
		settings.Theme = defaultTheme
	}
	return settings, nil
}

func (s *settingsService) Save(ctx context.Context, settings models.Settings) error {
	if settings.Theme != "dark" && settings.Theme != "light" {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, settings.Theme)
	}
	if err := s.doc.Set(ctx, settingsKey, settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	s.logger.Info().Str("theme", settings.Theme).Msg("settings saved")
	return nil
}
