// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync agent runtime.
//
// It wires client services and background synchronization workers into a
// single process lifecycle: connectivity probing, reconnect-triggered sync,
// and the periodic sync job.
package client
