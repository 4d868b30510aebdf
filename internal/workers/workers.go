// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package workers

import (
	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/service"
)

type Workers struct {
	// UpdateJob is exported so the UI layer can subscribe to its
	// notifications before Run is called.
	UpdateJob *UpdateJob

	workers []Worker
}

func NewWorkers(updates service.UpdateService, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	updateJob := NewUpdateJob(updates, cfg.UpdateInterval, log)

	return &Workers{
		UpdateJob: updateJob,
		workers:   []Worker{updateJob},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop terminates every running job and blocks until all have exited.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if stoppable, ok := worker.(interface{ Stop() }); ok {
			stoppable.Stop()
		}
	}
}
