// Package ratelimit throttles magic-link requests with a sliding window.
package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dtroode/statementbox/internal/model"
)

const (
	DefaultWindow = 10 * time.Minute
	DefaultMax    = 5
)

// Key builds the limiter key for one endpoint, client address and email.
func Key(endpoint, ip, email string) string {
	if ip == "" {
		ip = "unknown"
	}
	return endpoint + "|" + ip + "|" + strings.ToLower(strings.TrimSpace(email))
}

// Memory is a process-local sliding window limiter.
type Memory struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	window time.Duration
	max    int
	now    func() time.Time
}

var _ model.RateLimiter = (*Memory)(nil)

// NewMemory creates an in-memory limiter allowing max hits per window.
func NewMemory(window time.Duration, max int) *Memory {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMax
	}
	return &Memory{
		hits:   make(map[string][]time.Time),
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// RecordAndCheck records a hit and reports whether key exceeded the limit.
func (m *Memory) RecordAndCheck(_ context.Context, key string) (bool, error) {
	now := m.now()
	cutoff := now.Add(-m.window)

	m.mu.Lock()
	defer m.mu.Unlock()

	recent := m.hits[key][:0]
	for _, ts := range m.hits[key] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	recent = append(recent, now)
	m.hits[key] = recent

	return len(recent) > m.max, nil
}

// Prune drops keys whose hits all fell out of the window.
func (m *Memory) Prune() {
	cutoff := m.now().Add(-m.window)

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, hits := range m.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(m.hits, key)
		}
	}
}

// RunPruner calls Prune every interval until ctx is done.
func (m *Memory) RunPruner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Prune()
		}
	}
}
