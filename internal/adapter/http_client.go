// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-atlas-keeper/internal/config"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

type httpServerAdapter struct {
	client *resty.Client
	cursor CursorSource
	logger *logger.Logger

	retryMaxElapsed time.Duration

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. cursor supplies the last fully processed server cursor
// attached to every delta-sync request.
func NewHTTPServerAdapter(cfg config.ClientAdapter, cursor CursorSource, logger *logger.Logger) (ServerAdapter, error) {
	if cfg.HTTPAddress == "" {
		return nil, errors.New("adapter http address is empty")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	retryMaxElapsed := cfg.RetryMaxElapsed
	if retryMaxElapsed <= 0 {
		retryMaxElapsed = 45 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(timeout)

	return &httpServerAdapter{
		client:          cli,
		cursor:          cursor,
		logger:          logger,
		retryMaxElapsed: retryMaxElapsed,
	}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", wrapTransport(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	bearer, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	token, err := tokenFromSignedString(bearer)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(bearer)
	return models.User{UserID: token.UserID, Login: user.Login, Name: user.Name}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", wrapTransport(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	bearer, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	token, err := tokenFromSignedString(bearer)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(bearer)
	return token, nil
}

// PerformSync implements [ServerAdapter]. Transient failures (network errors
// and 5xx responses) are retried with capped exponential backoff; auth
// failures and other 4xx responses are permanent and returned immediately.
func (h *httpServerAdapter) PerformSync(ctx context.Context, deviceID string, localChanges models.ChangeSet) (models.DeltaSyncResponse, error) {
	lastSyncVersion, err := h.cursor.LastSyncVersion(ctx)
	if err != nil {
		return models.DeltaSyncResponse{}, fmt.Errorf("read last sync version: %w", err)
	}

	req := models.DeltaSyncRequest{
		DeviceID:        deviceID,
		LastSyncVersion: lastSyncVersion,
		LocalChanges:    localChanges,
	}

	var syncResp models.DeltaSyncResponse
	attempt := func() error {
		resp, err := h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/api/sync/delta")
		if err != nil {
			return wrapTransport(err)
		}
		if err = mapHTTPError(resp); err != nil {
			if errors.Is(err, ErrTransport) {
				return err
			}
			return backoff.Permanent(err)
		}

		if err = json.Unmarshal(resp.Body(), &syncResp); err != nil {
			return backoff.Permanent(fmt.Errorf("decode delta sync response: %w", err))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = h.retryMaxElapsed
	if err = backoff.Retry(attempt, backoff.WithContext(policy, ctx)); err != nil {
		return models.DeltaSyncResponse{}, fmt.Errorf("delta sync request: %w", err)
	}

	return syncResp, nil
}

func (h *httpServerAdapter) ResolveConflict(ctx context.Context, req models.ResolveConflictRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/conflicts/resolve")
	if err != nil {
		return fmt.Errorf("resolve conflict request: %w", wrapTransport(err))
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d", ErrTransport, resp.StatusCode())
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func wrapTransport(err error) error {
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// tokenFromSignedString parses the compact JWS issued by the server into a
// [models.Token] without verifying the signature (the server just minted it)
// and caches the user id extracted from the "sub" claim.
func tokenFromSignedString(signed string) (models.Token, error) {
	claims := jwt.RegisteredClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(signed, &claims)
	if err != nil {
		return models.Token{}, err
	}

	token := models.Token{
		Token:            parsed,
		RegisteredClaims: claims,
		SignedString:     signed,
	}
	userID, err := token.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	token.UserID = userID

	return token, nil
}
