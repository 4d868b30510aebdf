package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/mock/servicemock"
	"github.com/cloudix/coindesk/internal/service"
)

func TestUpdateJob_ChecksImmediatelyAndStoresResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	updates := servicemock.NewMockUpdateService(ctrl)

	checked := make(chan struct{})
	updates.EXPECT().Check(gomock.Any()).DoAndReturn(
		func(context.Context) (service.UpdateInfo, error) {
			defer close(checked)
			return service.UpdateInfo{HasUpdate: true, LatestVersion: "1.1.0"}, nil
		},
	)

	job := NewUpdateJob(updates, time.Hour, logger.Nop())
	job.Run()
	defer job.Stop()

	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("initial check never ran")
	}

	require.Eventually(t, func() bool {
		return job.Latest().LatestVersion == "1.1.0"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestUpdateJob_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	updates := servicemock.NewMockUpdateService(ctrl)
	updates.EXPECT().Check(gomock.Any()).Return(service.UpdateInfo{}, nil).AnyTimes()

	job := NewUpdateJob(updates, time.Hour, logger.Nop())

	// Stop before Run must not panic or block.
	job.Stop()

	job.Run()
	job.Stop()
	job.Stop()
}

func TestUpdateJob_FailedCheckKeepsLastResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	updates := servicemock.NewMockUpdateService(ctrl)

	job := NewUpdateJob(updates, time.Hour, logger.Nop())

	// Seed a result, then simulate a failing re-check.
	job.latest = service.UpdateInfo{LatestVersion: "1.0.5"}
	updates.EXPECT().Check(gomock.Any()).Return(service.UpdateInfo{}, assert.AnError)

	job.check(context.Background())

	assert.Equal(t, "1.0.5", job.Latest().LatestVersion)
}
