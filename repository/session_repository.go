package repository

import (
	"log"
	"sync"

	"github.com/chrinovic123/PsychoMetricBot/models"
)

// SessionRepository defines the interface for per-user test session state.
// Sessions are transient by design: the backing store is in-memory only
// and a restart drops every in-progress test.
type SessionRepository interface {
	// Get returns the user's active session, or nil when there is none.
	Get(userID string) *models.Session
	// Put stores the session for its UserID, replacing any existing one.
	Put(session *models.Session)
	// Delete removes the user's session. Deleting a missing session is a
	// no-op.
	Delete(userID string)
}

// sessionRepository is the in-memory implementation, one session per user.
// The RWMutex keeps operations for distinct users independent while
// serializing writes; per-user call ordering is the transport's concern.
type sessionRepository struct {
	sessions map[string]*models.Session
	mu       sync.RWMutex
}

// NewSessionRepository creates an empty in-memory session store.
func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*models.Session),
	}
}

func (r *sessionRepository) Get(userID string) *models.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[userID]
}

func (r *sessionRepository) Put(session *models.Session) {
	if session == nil || session.UserID == "" {
		log.Printf("WARN: [SessionRepository] Ignoring Put of session without a user ID.")
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[session.UserID]; exists {
		log.Printf("INFO: [SessionRepository] Replacing existing session for userID '%s' with test '%s'.", session.UserID, session.TestID)
	}
	r.sessions[session.UserID] = session
}

func (r *sessionRepository) Delete(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[userID]; exists {
		delete(r.sessions, userID)
		log.Printf("INFO: [SessionRepository] Deleted session for userID '%s'.", userID)
	}
}
