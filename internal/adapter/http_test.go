// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/models"
)

func testPanelConfig(serverURL string) config.ClientPanel {
	return config.ClientPanel{
		URL:            serverURL,
		AdminAPIKey:    "ptla_testkey",
		NodeID:         1,
		NestID:         5,
		EggID:          15,
		NodeIP:         "203.0.113.7",
		RequestTimeout: 5 * time.Second,
	}
}

func newTestAdminAdapter(t *testing.T, serverURL string) AdminAdapter {
	t.Helper()
	return NewPanelAdminAdapter(testPanelConfig(serverURL), logger.Nop())
}

// ── FindUserByEmail ─────────────────────────────────────────────────────────

func TestFindUserByEmail_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/application/users", r.URL.Path)
		assert.Equal(t, "user@example.com", r.URL.Query().Get("filter[email]"))
		assert.Equal(t, "Bearer ptla_testkey", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"object":"user","attributes":{"id":12,"username":"alice","email":"user@example.com"}}]}`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	user, err := a.FindUserByEmail(context.Background(), "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(12), user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	_, err := a.FindUserByEmail(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByEmail_APIErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"code":"AccessDeniedHttpException","status":"403","detail":"This action is unauthorized."}]}`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	_, err := a.FindUserByEmail(context.Background(), "user@example.com")

	apiErr, ok := IsRemoteAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "This action is unauthorized.", apiErr.Detail)
	assert.Equal(t, "This action is unauthorized.", apiErr.Error())
}

func TestFindUserByEmail_APIErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	_, err := a.FindUserByEmail(context.Background(), "user@example.com")

	apiErr, ok := IsRemoteAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "API Error: 502", apiErr.Error())
}

func TestFindUserByEmail_NetworkError(t *testing.T) {
	// Connection refused: nothing is listening on the closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	_, err := a.FindUserByEmail(context.Background(), "user@example.com")

	assert.ErrorIs(t, err, ErrNetwork)
}

// ── GetEggConfig ────────────────────────────────────────────────────────────

func TestGetEggConfig_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/application/nests/5/eggs/15", r.URL.Path)
		assert.Equal(t, "variables", r.URL.Query().Get("include"))

		_, _ = w.Write([]byte(`{
			"object": "egg",
			"attributes": {
				"docker_image": "ghcr.io/pterodactyl/yolks:debian",
				"startup": "./run.sh",
				"relationships": {
					"variables": {
						"object": "list",
						"data": [
							{"attributes": {"name": "Max Players", "env_variable": "MAX_PLAYERS", "default_value": "32", "user_viewable": true, "user_editable": true, "rules": "required|numeric"}},
							{"attributes": {"name": "License Key", "env_variable": "LICENSE_KEY", "default_value": "", "user_viewable": true, "user_editable": true, "rules": "required|string"}}
						]
					}
				}
			}
		}`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	egg, err := a.GetEggConfig(context.Background(), 5, 15)

	require.NoError(t, err)
	assert.Equal(t, "ghcr.io/pterodactyl/yolks:debian", egg.DockerImage)
	assert.Equal(t, "./run.sh", egg.Startup)
	require.Len(t, egg.Variables, 2)
	assert.Equal(t, "MAX_PLAYERS", egg.Variables[0].EnvVariable)
	assert.Equal(t, "32", egg.Variables[0].DefaultValue)
}

func TestGetEggConfig_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	_, err := a.GetEggConfig(context.Background(), 5, 15)

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── Allocations ─────────────────────────────────────────────────────────────

func TestListAllocations_SinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/application/nodes/1/allocations", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("per_page"))

		_, _ = w.Write([]byte(`{"object":"list","data":[
			{"attributes":{"id":101,"ip":"203.0.113.7","port":30500,"assigned":false}},
			{"attributes":{"id":102,"ip":"203.0.113.7","port":30501,"assigned":true}}
		]}`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	allocations, err := a.ListAllocations(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, allocations, 2)
	assert.Equal(t, int64(101), allocations[0].ID)
	assert.False(t, allocations[0].Assigned)
	assert.True(t, allocations[1].Assigned)
}

func TestCreateAllocation_Payload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/application/nodes/1/allocations", r.URL.Path)

		var body struct {
			IP    string   `json:"ip"`
			Ports []string `json:"ports"`
		}
		require.NoError(t, jsonDecode(r, &body))
		assert.Equal(t, "203.0.113.7", body.IP)
		assert.Equal(t, []string{"30500"}, body.Ports)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	err := a.CreateAllocation(context.Background(), 1, "203.0.113.7", 30500)

	require.NoError(t, err)
}

// ── CreateServer ────────────────────────────────────────────────────────────

func TestCreateServer_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/application/servers", r.URL.Path)

		var body models.CreateServerRequest
		require.NoError(t, jsonDecode(r, &body))
		assert.Equal(t, int64(12), body.User)
		assert.Equal(t, 2, body.FeatureLimits.Allocations)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"object":"server","attributes":{"id":55,"identifier":"a1b2c3d4","uuid":"uuid-value","name":"CloudiX-1","allocation":101}}`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	created, err := a.CreateServer(context.Background(), models.CreateServerRequest{
		Name: "CloudiX-1",
		User: 12,
		FeatureLimits: models.ServerFeatureLimits{
			Databases:   1,
			Backups:     1,
			Allocations: 2,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4", created.Identifier)
	assert.Equal(t, int64(101), created.AllocationID)
}

func TestCreateServer_MissingIdentifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"object":"server","attributes":{}}`))
	}))
	defer srv.Close()

	a := newTestAdminAdapter(t, srv.URL)
	_, err := a.CreateServer(context.Background(), models.CreateServerRequest{})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── Account adapter ─────────────────────────────────────────────────────────

func TestGetAccount_UsesClientKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/account", r.URL.Path)
		assert.Equal(t, "Bearer ptlc_userkey", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"object":"user","attributes":{"id":7,"admin":true,"username":"alice","email":"alice@example.com","first_name":"Alice","last_name":"A","language":"en"}}`))
	}))
	defer srv.Close()

	a := NewPanelAccountAdapter(testPanelConfig(srv.URL), logger.Nop())
	account, err := a.GetAccount(context.Background(), "ptlc_userkey")

	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.True(t, account.Admin)
	assert.Equal(t, "alice@example.com", account.Email)
}

func TestGetAccount_InvalidKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"code":"AuthenticationException","status":"401","detail":"Unauthenticated."}]}`))
	}))
	defer srv.Close()

	a := NewPanelAccountAdapter(testPanelConfig(srv.URL), logger.Nop())
	_, err := a.GetAccount(context.Background(), "bogus")

	apiErr, ok := IsRemoteAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestListOwnServers_SurfacesPrimaryAllocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client", r.URL.Path)

		_, _ = w.Write([]byte(`{"object":"list","data":[
			{"attributes":{"identifier":"a1b2c3d4","uuid":"u","name":"My Server","status":"running","node":"node01",
				"relationships":{"allocations":{"data":[{"attributes":{"ip":"203.0.113.7","port":30500}}]}}}}
		]}`))
	}))
	defer srv.Close()

	a := NewPanelAccountAdapter(testPanelConfig(srv.URL), logger.Nop())
	servers, err := a.ListOwnServers(context.Background(), "ptlc_userkey")

	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, "a1b2c3d4", servers[0].ID)
	assert.Equal(t, "203.0.113.7", servers[0].IP)
	assert.Equal(t, 30500, servers[0].Port)
}

func jsonDecode(r *http.Request, dest any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dest)
}
