package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("form session not found")

// FormSession is one mounted course form page.
type FormSession struct {
	ID        uuid.UUID
	Form      *CourseForm
	CreatedAt time.Time

	lastSeen time.Time
}

// FormSessions keeps the forms of all open pages in memory. A session goes
// away when its page unmounts or when it has been idle longer than idleTimeout.
type FormSessions struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*FormSession
	idleTimeout time.Duration
	now         func() time.Time
}

func NewFormSessions(idleTimeout time.Duration) *FormSessions {
	return &FormSessions{
		sessions:    make(map[uuid.UUID]*FormSession),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Create registers a new session. newForm receives the session ID so the
// form's notifier can be bound to it.
func (s *FormSessions) Create(newForm func(id uuid.UUID) *CourseForm) *FormSession {
	id := uuid.New()
	now := s.now()
	session := &FormSession{
		ID:        id,
		Form:      newForm(id),
		CreatedAt: now,
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()
	return session
}

// Get returns the session and marks it as active.
func (s *FormSessions) Get(id uuid.UUID) (*FormSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.lastSeen = s.now()
	return session, nil
}

// Delete discards the session. It reports whether the session existed.
func (s *FormSessions) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Sweep drops sessions idle for longer than the idle timeout and returns how
// many were dropped. A zero timeout disables expiry.
func (s *FormSessions) Sweep() int {
	if s.idleTimeout <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *FormSessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
