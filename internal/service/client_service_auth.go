// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-atlas-keeper/internal/adapter"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientAuthService constructs the registration/login flow over the
// server adapter. Token storage is the adapter's concern.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: log}
}

// Register implements [ClientAuthService].
func (s *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	registered, err := s.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("register user: %w", err)
	}

	s.logger.Info().Str("login", registered.Login).Msg("user registered")
	return registered, nil
}

// Login implements [ClientAuthService].
func (s *clientAuthService) Login(ctx context.Context, user models.User) (int64, error) {
	token, err := s.adapter.Login(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("login user: %w", err)
	}

	s.logger.Info().Str("login", user.Login).Int64("user_id", token.UserID).Msg("user logged in")
	return token.UserID, nil
}
