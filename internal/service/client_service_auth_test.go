// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-atlas-keeper/internal/adapter"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/mock"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(srv, logger.Nop())
	ctx := context.Background()

	user := models.User{Login: "traveler", Password: "secret"}
	srv.EXPECT().Register(ctx, user).Return(models.User{UserID: 7, Login: "traveler"}, nil)

	registered, err := svc.Register(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)
}

func TestClientAuthService_Login_ReturnsUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(srv, logger.Nop())
	ctx := context.Background()

	user := models.User{Login: "traveler", Password: "secret"}
	srv.EXPECT().Login(ctx, user).Return(models.Token{UserID: 7, SignedString: "jwt"}, nil)

	userID, err := svc.Login(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestClientAuthService_Login_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(srv, logger.Nop())
	ctx := context.Background()

	srv.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, adapter.ErrUnauthorized)

	_, err := svc.Login(ctx, models.User{Login: "traveler", Password: "wrong"})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
}
