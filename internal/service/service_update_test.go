package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
)

func newTestUpdateSvc(version, checkURL string) UpdateService {
	return NewUpdateService(version, config.ClientUpdates{
		CheckURL:    checkURL,
		DownloadURL: "https://cloudixhosting.site/download",
		Timeout:     2 * time.Second,
	}, logger.Nop())
}

func TestUpdateService_Check_NewerVersionAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.2.0","changelog":["fix a","add b"]}`))
	}))
	defer srv.Close()

	svc := newTestUpdateSvc("1.0.0", srv.URL)
	info, err := svc.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, info.HasUpdate)
	assert.Equal(t, "1.0.0", info.CurrentVersion)
	assert.Equal(t, "1.2.0", info.LatestVersion)
	// No downloadUrl in the manifest: the configured default applies.
	assert.Equal(t, "https://cloudixhosting.site/download", info.DownloadURL)
	assert.Equal(t, []string{"fix a", "add b"}, info.Changelog)
}

func TestUpdateService_Check_UpToDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.0.0","downloadUrl":"https://cloudixhosting.site/v1"}`))
	}))
	defer srv.Close()

	svc := newTestUpdateSvc("1.0.0", srv.URL)
	info, err := svc.Check(context.Background())

	require.NoError(t, err)
	assert.False(t, info.HasUpdate)
	assert.Equal(t, "https://cloudixhosting.site/v1", info.DownloadURL)
}

func TestUpdateService_Check_ManifestWithoutVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := newTestUpdateSvc("1.0.0", srv.URL)
	_, err := svc.Check(context.Background())

	assert.Error(t, err)
}

func TestUpdateService_Check_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newTestUpdateSvc("1.0.0", srv.URL)
	_, err := svc.Check(context.Background())

	assert.Error(t, err)
}

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.2", "1.2.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0", "1.0.10", -1},
		{"0.9", "1.0", -1},
		{"1.0.0.1", "1.0.0", 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, compareVersions(tc.a, tc.b), "%s vs %s", tc.a, tc.b)
	}
}
