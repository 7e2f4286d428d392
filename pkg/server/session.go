// pkg/server/session.go
package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clapenergy/mailtrace-render-starter/pkg/detect"
	"github.com/clapenergy/mailtrace-render-starter/pkg/engine"
	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Session holds one upload's transient state: the parsed datasets, the
// detected or user-confirmed mappings, and the match result once the run
// completes. Nothing here is ever persisted; sessions evaporate on TTL.
type Session struct {
	Token     string
	CreatedAt time.Time

	Mail *model.Dataset
	CRM  *model.Dataset

	MailGuess detect.Guess
	CRMGuess  detect.Guess

	MailMapping model.ColumnMapping
	CRMMapping  model.ColumnMapping

	Result *engine.Result
}

// SessionStore is an in-memory, TTL-bounded session map. Expired entries are
// reaped opportunistically on access so no background goroutine is needed.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

// NewSessionStore creates a session store with the given TTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session and returns it with a fresh token.
func (s *SessionStore) Create() *Session {
	sess := &Session{
		Token:     uuid.New().String(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.sessions[sess.Token] = sess
	return sess
}

// Get returns the session for a token, or nil when unknown or expired.
func (s *SessionStore) Get(token string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	return s.sessions[token]
}

// Delete removes a session.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	return len(s.sessions)
}

func (s *SessionStore) purgeLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for token, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
}
