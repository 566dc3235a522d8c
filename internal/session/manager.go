package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"recipechat/internal/logging"
	"recipechat/internal/services"
)

// Options configures a Manager.
type Options struct {
	// MaxSessions caps live sessions; zero means unlimited.
	MaxSessions int
	// IdleTimeout is how long an unused session survives a sweep; zero disables sweeping.
	IdleTimeout time.Duration
	Logger      *slog.Logger
	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

// Manager indexes live sessions by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	logger   *slog.Logger
}

// NewManager constructs an empty manager.
func NewManager(opts Options) *Manager {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
		logger:   logging.NewComponentLogger(opts.Logger, "session"),
	}
}

// Create registers a session with a fresh random ID.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(uuid.NewString())
}

// Open returns the session for id, creating it when absent. An empty id
// creates a session with a fresh ID. Client-chosen IDs must be UUIDs.
func (m *Manager) Open(id string) (*Session, bool, error) {
	if id == "" {
		return m.Create(), true, nil
	}
	if err := ValidateID(id); err != nil {
		return nil, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, false, nil
	}
	return m.insertLocked(id), true, nil
}

// ValidateID rejects client-chosen session IDs that are not UUIDs.
func ValidateID(id string) error {
	if err := uuid.Validate(id); err != nil {
		return services.Wrap(services.ErrValidation, "session", "open", fmt.Sprintf("session_id %q is not a UUID", id), err)
	}
	return nil
}

// Get returns the session for id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete removes the session for id and reports whether it existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Reset()
		m.logger.Info("session deleted", logging.String(logging.FieldSessionID, id))
	}
	return ok
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than the configured timeout and
// returns how many it removed.
func (m *Manager) Sweep() int {
	if m.opts.IdleTimeout <= 0 {
		return 0
	}
	cutoff := m.opts.Clock().Add(-m.opts.IdleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if s.LastUsed().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("idle sessions collected",
			logging.Int("removed", removed),
			logging.Int("remaining", len(m.sessions)),
			logging.Duration("idle_timeout", m.opts.IdleTimeout),
		)
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || m.opts.IdleTimeout <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

func (m *Manager) insertLocked(id string) *Session {
	if m.opts.MaxSessions > 0 && len(m.sessions) >= m.opts.MaxSessions {
		m.evictOldestLocked()
	}
	s := newSession(id, m.opts.Clock)
	m.sessions[id] = s
	m.logger.Debug("session created", logging.String(logging.FieldSessionID, id), logging.Int("live", len(m.sessions)))
	return s
}

func (m *Manager) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, s := range m.sessions {
		if used := s.LastUsed(); oldestID == "" || used.Before(oldest) {
			oldestID, oldest = id, used
		}
	}
	if oldestID == "" {
		return
	}
	delete(m.sessions, oldestID)
	logging.WarnWithContext(m.logger, "session limit reached; evicted least recently used",
		"session_evicted",
		logging.String(logging.FieldSessionID, oldestID),
		logging.Int("max_sessions", m.opts.MaxSessions),
		logging.String(logging.FieldErrorHint, "raise sessions.max_sessions if conversations are being dropped"),
		logging.String(logging.FieldImpact, "the evicted conversation must parse its recipe again"),
	)
}
