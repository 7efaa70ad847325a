// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-atlas-keeper/internal/config"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

// cursorStub — простая заглушка CursorSource без mockgen
type cursorStub struct {
	version int64
	err     error
}

func (c *cursorStub) LastSyncVersion(context.Context) (int64, error) {
	return c.version, c.err
}

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string, cursor CursorSource) *httpServerAdapter {
	t.Helper()

	cfg := config.ClientAdapter{
		HTTPAddress:     serverURL,
		RequestTimeout:  5 * time.Second,
		RetryMaxElapsed: 2 * time.Second,
	}

	a, err := NewHTTPServerAdapter(cfg, cursor, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func signedTestToken(t *testing.T, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	user := models.User{Login: "alice", Name: "Alice", Password: "secret"}
	token := signedTestToken(t, "7")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{})
	got, err := a.Register(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, user.Login, got.Login)
	assert.Equal(t, token, a.Token())
}

func TestLogin_Success(t *testing.T) {
	token := signedTestToken(t, "42")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{})
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, token, got.SignedString)
	assert.Equal(t, token, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{})
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── PerformSync ──────────────────────────────────────────────────────────────

func TestPerformSync_AttachesCursorAndToken(t *testing.T) {
	var received models.DeltaSyncRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/delta", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		resp := models.DeltaSyncResponse{
			SyncVersion: 13,
			Accepted:    models.AcceptedIDs{Locations: []string{"loc-1"}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{version: 12})
	a.SetToken("test-token")

	local := models.ChangeSet{Locations: []models.LocationDelta{{
		SyncEnvelope: models.SyncEnvelope{ID: "loc-1", SyncAction: models.ActionCreate, LocalVersion: 1},
		Location:     models.Location{ID: "loc-1", Latitude: 1, Longitude: 2},
	}}}

	resp, err := a.PerformSync(context.Background(), "device-1", local)
	require.NoError(t, err)

	assert.Equal(t, "device-1", received.DeviceID)
	assert.Equal(t, int64(12), received.LastSyncVersion)
	require.Len(t, received.LocalChanges.Locations, 1)
	assert.Equal(t, "loc-1", received.LocalChanges.Locations[0].ID)

	assert.Equal(t, int64(13), resp.SyncVersion)
	assert.Equal(t, []string{"loc-1"}, resp.Accepted.Locations)
}

func TestPerformSync_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Первый вызов — 503, второй — успех.
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"syncVersion":3,"remoteChanges":{},"accepted":{}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{})

	resp, err := a.PerformSync(context.Background(), "device-1", models.ChangeSet{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.SyncVersion)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestPerformSync_UnauthorizedIsNotRetried(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{})

	_, err := a.PerformSync(context.Background(), "device-1", models.ChangeSet{})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPerformSync_CursorReadError(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:0", &cursorStub{err: assert.AnError})

	_, err := a.PerformSync(context.Background(), "device-1", models.ChangeSet{})
	require.ErrorIs(t, err, assert.AnError)
}

func TestPerformSync_MalformedResponseIsPermanent(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{})

	_, err := a.PerformSync(context.Background(), "device-1", models.ChangeSet{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode delta sync response")
	assert.Equal(t, int32(1), calls.Load())
}

// ── ResolveConflict ──────────────────────────────────────────────────────────

func TestResolveConflict_Success(t *testing.T) {
	var received models.ResolveConflictRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/conflicts/resolve", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{})

	req := models.ResolveConflictRequest{
		ConflictID: "c-1",
		EntityType: models.EntityTrip,
		EntityID:   "trip-1",
		Resolution: models.ResolutionKeepLocal,
		DeviceID:   "device-1",
	}
	require.NoError(t, a.ResolveConflict(context.Background(), req))
	assert.Equal(t, "c-1", received.ConflictID)
	assert.Equal(t, models.ResolutionKeepLocal, received.Resolution)
}

func TestResolveConflict_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &cursorStub{})

	err := a.ResolveConflict(context.Background(), models.ResolveConflictRequest{ConflictID: "c-1"})
	require.ErrorIs(t, err, ErrTransport)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	token, err := parseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = parseBearerToken("")
	require.Error(t, err)

	_, err = parseBearerToken("Bearer ")
	require.Error(t, err)
}

func TestTokenFromSignedString(t *testing.T) {
	token, err := tokenFromSignedString(signedTestToken(t, "42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)

	// id комбинируется из "sub" через Token.GetUserID
	userID, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	_, err = tokenFromSignedString(signedTestToken(t, "not-a-number"))
	require.Error(t, err)

	_, err = tokenFromSignedString("not.a.jwt")
	require.Error(t, err)
}

func TestNewHTTPServerAdapter_RequiresAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, &cursorStub{}, logger.Nop())
	require.Error(t, err)
}
