// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
)

// updateManifest is the shape of the hosted update.json.
type updateManifest struct {
	Version     string   `json:"version"`
	DownloadURL string   `json:"downloadUrl"`
	Changelog   []string `json:"changelog"`
}

type updateService struct {
	client      *resty.Client
	checkURL    string
	downloadURL string
	version     string
	logger      *logger.Logger
}

func NewUpdateService(appVersion string, cfg config.ClientUpdates, log *logger.Logger) UpdateService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &updateService{
		client:      resty.New().SetTimeout(timeout),
		checkURL:    cfg.CheckURL,
		downloadURL: cfg.DownloadURL,
		version:     appVersion,
		logger:      log,
	}
}

func (u *updateService) Version() string { return u.version }

func (u *updateService) DownloadURL() string { return u.downloadURL }

func (u *updateService) Check(ctx context.Context) (UpdateInfo, error) {
	var manifest updateManifest
	resp, err := u.client.R().
		SetContext(ctx).
		SetResult(&manifest).
		Get(u.checkURL)
	if err != nil {
		return UpdateInfo{}, fmt.Errorf("update check request: %w", err)
	}
	if resp.IsError() {
		return UpdateInfo{}, fmt.Errorf("update check returned status %d", resp.StatusCode())
	}
	if manifest.Version == "" {
		return UpdateInfo{}, fmt.Errorf("update manifest has no version")
	}

	info := UpdateInfo{
		HasUpdate:      compareVersions(manifest.Version, u.version) > 0,
		CurrentVersion: u.version,
		LatestVersion:  manifest.Version,
		DownloadURL:    manifest.DownloadURL,
		Changelog:      manifest.Changelog,
	}
	if info.DownloadURL == "" {
		info.DownloadURL = u.downloadURL
	}

	u.logger.Info().
		Str("current", info.CurrentVersion).
		Str("latest", info.LatestVersion).
		Bool("has_update", info.HasUpdate).
		Msg("update check completed")
	return info, nil
}

// compareVersions compares dotted numeric versions segment by segment.
// Missing segments count as zero, so "1.2" equals "1.2.0". Non-numeric
// segments count as zero.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv int
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av > bv {
				return 1
			}
			return -1
		}
	}
	return 0
}
