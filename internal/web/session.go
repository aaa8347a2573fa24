package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/desertthunder/songbubbles/internal/widget"
)

// SessionCookie names the cookie carrying the browser session ID.
const SessionCookie = "songbubbles_session"

// session is one browser's widget state. mu is held for the whole of each event.
type session struct {
	mu   sync.Mutex
	id   string
	view *htmlView
	ctrl *widget.Controller
	seen time.Time
}

// sessionStore keeps sessions in memory and evicts them after ttl without a request.
type sessionStore struct {
	mu      sync.Mutex
	byID    map[string]*session
	ttl     time.Duration
	now     func() time.Time
	newID   func() string
	factory func(*htmlView) *widget.Controller
	newView func() *htmlView
}

func newSessionStore(ttl time.Duration, newView func() *htmlView, factory func(*htmlView) *widget.Controller) *sessionStore {
	return &sessionStore{
		byID:    map[string]*session{},
		ttl:     ttl,
		now:     time.Now,
		newID:   shared.GenerateID,
		factory: factory,
		newView: newView,
	}
}

// lookup returns the live session for id, refreshing its idle timer.
func (s *sessionStore) lookup(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	sess, ok := s.byID[id]
	if ok {
		sess.seen = s.now()
	}
	return sess, ok
}

// create starts an empty session and renders its initial state. Expired sessions are evicted first so
// cookieless clients cannot grow the store without bound.
func (s *sessionStore) create() *session {
	view := s.newView()
	ctrl := s.factory(view)
	ctrl.Render()

	sess := &session{id: s.newID(), view: view, ctrl: ctrl}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	sess.seen = s.now()
	s.byID[sess.id] = sess
	return sess
}

// fromRequest resolves the request's session, creating one and setting the cookie when it is missing or expired.
func (s *sessionStore) fromRequest(w http.ResponseWriter, r *http.Request) *session {
	if c, err := r.Cookie(SessionCookie); err == nil && shared.IsID(c.Value) {
		if sess, ok := s.lookup(c.Value); ok {
			return sess
		}
	}

	sess := s.create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// len returns the number of live sessions.
func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.byID)
}

func (s *sessionStore) pruneLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.byID {
		if sess.seen.Before(cutoff) {
			delete(s.byID, id)
		}
	}
}
