// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the atlas-keeper sync server.
//
// The primary abstraction is [ServerAdapter], the sync coordinator: a thin
// wrapper around the delta-sync endpoint that attaches the last-known server
// cursor, invokes the network client, and maps transport/HTTP/auth failures
// into the sentinel values defined in errors.go. It performs no metadata or
// repository mutation of its own.
//
// The package also ships [NetworkMonitor], a connectivity state stream the
// sync manager gates on before spending a sync attempt.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-atlas-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, authentication
// header management, retry/backoff of transient transport failures, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the user value populated with
	// the server-assigned id.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user. On success it stores the returned bearer
	// token via SetToken. Returns [ErrUnauthorized] (wrapped) when the
	// credentials are rejected.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// PerformSync runs one delta-sync round: it attaches the last cursor the
	// client has fully processed, uploads the pending local changes and
	// returns the server's response. Transient transport failures are
	// retried with exponential backoff before an [ErrTransport]-wrapped
	// error is returned; [ErrUnauthorized] is returned without retry.
	PerformSync(ctx context.Context, deviceID string, localChanges models.ChangeSet) (models.DeltaSyncResponse, error)

	// ResolveConflict submits the outcome of a conflict resolution to the
	// server.
	ResolveConflict(ctx context.Context, req models.ResolveConflictRequest) error
}

// CursorSource supplies the last fully processed server cursor. It is
// satisfied by the sync metadata repository; the narrow interface keeps the
// adapter decoupled from the storage layer.
type CursorSource interface {
	LastSyncVersion(ctx context.Context) (int64, error)
}

// ConnState is the connectivity state observed by a [NetworkMonitor].
type ConnState string

const (
	// Connected means the sync server is reachable.
	Connected ConnState = "connected"

	// Limited means some network is present but the sync server did not
	// answer the probe in a healthy way. Sync rounds are not attempted.
	Limited ConnState = "limited"

	// Disconnected means no network is available.
	Disconnected ConnState = "disconnected"
)

// NetworkMonitor observes connectivity to the sync server.
type NetworkMonitor interface {
	// State returns the last observed connectivity state.
	State() ConnState

	// Subscribe registers an observer channel that receives every state
	// transition. The returned cancel function removes the subscription and
	// closes the channel.
	Subscribe() (<-chan ConnState, func())
}
