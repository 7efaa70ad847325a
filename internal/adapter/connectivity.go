// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-atlas-keeper/internal/config"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
)

// ProbeMonitor implements [NetworkMonitor] by polling the sync server's
// health endpoint on a fixed interval and classifying the result:
// a 2xx answer means Connected, any other HTTP answer means Limited, and a
// network-level failure means Disconnected.
type ProbeMonitor struct {
	client   *resty.Client
	interval time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	state   ConnState
	subs    map[int]chan ConnState
	nextSub int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProbeMonitor constructs a [NetworkMonitor] probing cfg.HTTPAddress. The
// monitor reports Disconnected until the first probe completes.
func NewProbeMonitor(cfg config.ClientAdapter, log *logger.Logger) *ProbeMonitor {
	interval := cfg.ProbeInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(cfg.HTTPAddress).
		SetTimeout(5 * time.Second)

	return &ProbeMonitor{
		client:   cli,
		interval: interval,
		logger:   log,
		state:    Disconnected,
		subs:     make(map[int]chan ConnState),
	}
}

// Run implements the workers.Worker contract: it launches the probe loop in
// a background goroutine and returns. Close stops the loop.
func (m *ProbeMonitor) Run() {
	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		m.probe(ctx)
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				m.probe(ctx)
			}
		}
	}()
}

// Close stops the probe loop and waits for it to exit. Safe to call when the
// monitor was never started.
func (m *ProbeMonitor) Close() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *ProbeMonitor) State() ConnState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *ProbeMonitor) Subscribe() (<-chan ConnState, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan ConnState, 8)
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (m *ProbeMonitor) probe(ctx context.Context) {
	resp, err := m.client.R().SetContext(ctx).Get("/api/health")

	next := Disconnected
	switch {
	case err != nil:
		next = Disconnected
	case resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices:
		next = Connected
	default:
		next = Limited
	}

	m.setState(next)
}

// setState records a state transition and fans it out to subscribers. The
// send is non-blocking: a subscriber that stopped draining its channel loses
// transitions instead of stalling the probe loop.
func (m *ProbeMonitor) setState(next ConnState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == next {
		return
	}
	m.logger.Info().
		Str("from", string(m.state)).
		Str("to", string(next)).
		Msg("connectivity state changed")
	m.state = next

	for _, ch := range m.subs {
		select {
		case ch <- next:
		default:
		}
	}
}
