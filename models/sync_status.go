// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncPhase is the coarse state of the sync manager's state machine:
// Idle → InProgress → {Completed | Failed} → Idle.
type SyncPhase string

const (
	SyncIdle       SyncPhase = "idle"
	SyncInProgress SyncPhase = "in_progress"
	SyncCompleted  SyncPhase = "completed"
	SyncFailed     SyncPhase = "failed"
)

// SyncSummary is the outcome of one completed sync round.
type SyncSummary struct {
	// Uploaded is the number of local deltas accepted by the server.
	Uploaded int `json:"uploaded"`

	// Downloaded is the number of remote deltas applied locally.
	Downloaded int `json:"downloaded"`

	// Conflicts is the number of conflicts left for manual resolution.
	Conflicts int `json:"conflicts"`

	// SyncVersion is the cursor issued for the round.
	SyncVersion int64 `json:"syncVersion"`

	// FinishedAt is when reconciliation completed on the client.
	FinishedAt time.Time `json:"finishedAt"`
}

// SyncStatus is the value published to observers on every state transition.
type SyncStatus struct {
	Phase SyncPhase `json:"phase"`

	// Message is a short human-readable progress note, set while the phase
	// is SyncInProgress.
	Message string `json:"message,omitempty"`

	// Summary is set when the phase is SyncCompleted.
	Summary *SyncSummary `json:"summary,omitempty"`

	// Err is set when the phase is SyncFailed.
	Err error `json:"-"`
}
