package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"groshop/m/domain"
	"groshop/m/internal/auth"
)

const cookieName = "groshop_session"

// ErrNoSession is returned when a request carries no live session.
var ErrNoSession = errors.New("no active session")

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

// Session is one signed-in browser session. The record lives server-side;
// the browser only holds a signed token referencing it. A session's own
// requests are sequential, so its fields need no locking beyond the
// registry's.
type Session struct {
	ID        string
	Identity  auth.Identity
	Bill      *domain.Bill
	flashes   []Flash
	stash     map[string]string
	expiresAt time.Time
}

// Flash queues a one-shot notice.
func (s *Session) Flash(level, message string) {
	s.flashes = append(s.flashes, Flash{Level: level, Message: message})
}

// Flashes returns queued notices and clears them.
func (s *Session) Flashes() []Flash {
	f := s.flashes
	s.flashes = nil
	return f
}

// Stash keeps a form value for one render, so a failed submit can echo what
// the user typed.
func (s *Session) Stash(key, value string) {
	if s.stash == nil {
		s.stash = map[string]string{}
	}
	s.stash[key] = value
}

// PopStash returns stashed form values and clears them.
func (s *Session) PopStash() map[string]string {
	v := s.stash
	s.stash = nil
	return v
}

// Manager owns the server-side session registry and the signed cookie that
// references it.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager builds a Manager signing cookies with the given secret.
// Sessions live for 24 hours, matching the cookie.
func NewManager(secret string) *Manager {
	return &Manager{
		secret:   []byte(secret),
		ttl:      24 * time.Hour,
		sessions: make(map[string]*Session),
	}
}

// Start creates a session for the identity and sets the session cookie.
func (m *Manager) Start(w http.ResponseWriter, identity auth.Identity) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Identity:  identity,
		expiresAt: time.Now().Add(m.ttl),
	}

	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		ExpiresAt: jwt.NewNumericDate(sess.expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// Ensure returns the request's live session, starting an anonymous one when
// none exists. The login and register pages need a session for flashes
// before any identity is established.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) (*Session, error) {
	if sess, err := m.Lookup(r); err == nil {
		return sess, nil
	}
	return m.Start(w, auth.Identity{})
}

// Lookup resolves the request's session cookie to a live session record.
func (m *Manager) Lookup(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ID == "" {
		return nil, ErrNoSession
	}

	m.mu.RLock()
	sess := m.sessions[claims.ID]
	m.mu.RUnlock()
	if sess == nil || time.Now().After(sess.expiresAt) {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Destroy drops the request's session record and expires its cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if sess, err := m.Lookup(r); err == nil {
		m.mu.Lock()
		delete(m.sessions, sess.ID)
		m.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Sweep periodically removes expired session records until ctx is done.
func (m *Manager) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for id, sess := range m.sessions {
				if now.After(sess.expiresAt) {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}
}
