package gin

import (
	"sync"

	"github.com/DS123-ally/websummary"
)

// Session holds the transient per-browser state: the last request record
// plus the UI toggles. Sessions live in memory only and are dropped on
// restart or on the clear action; nothing is ever persisted.
//
// A Session is immutable once published to the store. Handlers that
// change state build a replacement with the same ID and Put it, so
// concurrent requests for one cookie only ever race on the map slot,
// which the store's mutex guards.
type Session struct {
	ID            string              `json:"id"`
	Request       *websummary.Request `json:"request,omitempty"`
	Debug         bool                `json:"debug"`
	ShowExtracted bool                `json:"showExtracted"`
}

// SessionStore is an in-memory session registry keyed by cookie ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get returns the session with the given ID, or nil.
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Put stores the session, replacing any previous state for its ID.
func (s *SessionStore) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Delete removes the session with the given ID.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
