// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"fmt"
	"os/exec"
	"regexp"
	"runtime"

	"github.com/cloudix/coindesk/internal/logger"
)

// allowedURLPatterns lists the only destinations the application will
// hand to the system browser. HTTPS only.
var allowedURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https://discord\.com/`),
	regexp.MustCompile(`^https://discord\.gg/`),
	regexp.MustCompile(`^https://cloudix\.`),
	regexp.MustCompile(`^https://panel\.cloudix`),
}

type externalOpener struct {
	logger *logger.Logger

	// launch is swappable so tests never spawn a browser.
	launch func(url string) error
}

func NewExternalOpener(log *logger.Logger) ExternalOpener {
	return &externalOpener{logger: log, launch: launchBrowser}
}

func (o *externalOpener) Allowed(url string) bool {
	for _, p := range allowedURLPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

func (o *externalOpener) Open(url string) error {
	if !o.Allowed(url) {
		o.logger.Warn().Str("url", url).Msg("blocked external url")
		return fmt.Errorf("%w: %s", ErrURLNotAllowed, url)
	}

	if err := o.launch(url); err != nil {
		return fmt.Errorf("opening url: %w", err)
	}
	o.logger.Info().Str("url", url).Msg("opened external url")
	return nil
}

func launchBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
