// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/service"
)

const defaultUpdateInterval = 6 * time.Hour

// UpdateJob periodically re-checks the distribution endpoint and keeps
// the most recent result available to the UI.
type UpdateJob struct {
	updates  service.UpdateService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	latest service.UpdateInfo
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewUpdateJob(updates service.UpdateService, interval time.Duration, log *logger.Logger) *UpdateJob {
	if interval <= 0 {
		interval = defaultUpdateInterval
	}
	return &UpdateJob{updates: updates, interval: interval, logger: log}
}

// Run implements Worker. It checks once immediately, then on every tick.
// Any previously running job is stopped first.
func (j *UpdateJob) Run() {
	j.Stop()

	j.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.check(ctx)

		t := time.NewTicker(j.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				j.check(ctx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *UpdateJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Latest returns the most recent successful check result.
func (j *UpdateJob) Latest() service.UpdateInfo {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.latest
}

func (j *UpdateJob) check(ctx context.Context) {
	info, err := j.updates.Check(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("background update check failed")
		return
	}

	j.mu.Lock()
	j.latest = info
	j.mu.Unlock()

	if info.HasUpdate {
		j.logger.Info().Str("latest", info.LatestVersion).Msg("update available")
	}
}
