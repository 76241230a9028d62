package usecase

import (
	"sync"
	"time"

	"doctor-registration/internal/registration"
)

type session struct {
	wizard   *registration.Wizard
	lastSeen time.Time
}

// sessionRegistry keeps in-progress wizards in memory. Sessions idle for
// longer than ttl are dropped by sweep.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func newSessionRegistry(ttl time.Duration) *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *sessionRegistry) add(w *registration.Wizard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[w.ID()] = &session{wizard: w, lastSeen: r.now()}
}

func (r *sessionRegistry) get(id string) (*registration.Wizard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrRegistrationNotFound
	}
	s.lastSeen = r.now()
	return s.wizard, nil
}

// sweep removes idle sessions and returns how many were dropped.
func (r *sessionRegistry) sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *sessionRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
