package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/internal/metrics"
	"github.com/ArowuTest/ticket-ledger/internal/models"
)

// SessionStore keeps open sessions in memory. Each session has its own lock so one session is
// only ever reconciled by one request at a time.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *models.Session
	removed bool
}

// NewSessionStore returns a store whose sessions expire after ttl without use
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// Create registers a new session and returns a copy of it
func (s *SessionStore) Create(date string, slot models.DrawSlot, rows []models.SaleRow) *models.Session {
	if rows == nil {
		rows = []models.SaleRow{}
	}
	session := &models.Session{
		ID:        uuid.NewString(),
		Date:      date,
		Slot:      slot,
		Rows:      rows,
		UpdatedAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{session: session}
	s.mu.Unlock()

	return cloneSession(session)
}

// With runs fn on the live session under its lock and returns a copy of the session afterwards.
// Expired or unknown ids yield ErrSessionNotFound. If fn fails the session is left as fn left it.
func (s *SessionStore) With(id string, fn func(*models.Session) error) (*models.Session, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.removed {
		return nil, ErrSessionNotFound
	}
	if s.expired(entry.session) {
		entry.removed = true
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	if err := fn(entry.session); err != nil {
		return nil, err
	}
	entry.session.UpdatedAt = s.now()
	return cloneSession(entry.session), nil
}

// Delete drops a session
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	entry.removed = true
	entry.mu.Unlock()
	return nil
}

// Sweep drops every expired session and returns how many were dropped
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, entry := range s.sessions {
		if !entry.mu.TryLock() {
			continue // in use, so not idle
		}
		if s.expired(entry.session) {
			entry.removed = true
			delete(s.sessions, id)
			dropped++
		}
		entry.mu.Unlock()
	}
	return dropped
}

// Run sweeps expired sessions every interval until ctx is done
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := s.Sweep()
			if n > 0 {
				log.WithField("sessions", n).Info("Expired editing sessions dropped")
			}
			metrics.RecordSessionsExpired(n)
			metrics.SetOpenSessions(s.Len())
		}
	}
}

// Len returns the number of open sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) entry(id string) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

func (s *SessionStore) expired(session *models.Session) bool {
	return s.now().Sub(session.UpdatedAt) > s.ttl
}

func cloneSession(session *models.Session) *models.Session {
	c := *session
	c.Rows = models.CloneRows(session.Rows)
	return &c
}
