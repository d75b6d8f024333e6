package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groshop/m/internal/auth"
)

func startSession(t *testing.T, m *Manager) (*Session, *http.Cookie) {
	t.Helper()
	rec := httptest.NewRecorder()
	sess, err := m.Start(rec, auth.Identity{UserID: 7, Username: "admin1", Role: "admin"})
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return sess, cookies[0]
}

func TestStartAndLookup(t *testing.T) {
	m := NewManager("test_secret")
	sess, cookie := startSession(t, m)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(cookie)

	found, err := m.Lookup(req)
	require.NoError(t, err)
	assert.Same(t, sess, found)
	assert.Equal(t, int64(7), found.Identity.UserID)
}

func TestLookupWithoutCookie(t *testing.T) {
	m := NewManager("test_secret")
	req := httptest.NewRequest(http.MethodGet, "/home", nil)

	_, err := m.Lookup(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLookupRejectsForeignToken(t *testing.T) {
	m := NewManager("test_secret")
	other := NewManager("other_secret")
	_, cookie := startSession(t, other)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(cookie)

	_, err := m.Lookup(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDestroy(t *testing.T) {
	m := NewManager("test_secret")
	_, cookie := startSession(t, m)

	req := httptest.NewRequest(http.MethodGet, "/sign-out", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	m.Destroy(rec, req)

	again := httptest.NewRequest(http.MethodGet, "/home", nil)
	again.AddCookie(cookie)
	_, err := m.Lookup(again)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestEnsureStartsAnonymousSession(t *testing.T) {
	m := NewManager("test_secret")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	sess, err := m.Ensure(rec, req)
	require.NoError(t, err)
	assert.Zero(t, sess.Identity.UserID)
	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestFlashesAreOneShot(t *testing.T) {
	m := NewManager("test_secret")
	sess, _ := startSession(t, m)

	sess.Flash("error", "boom")
	sess.Flash("success", "done")

	flashes := sess.Flashes()
	require.Len(t, flashes, 2)
	assert.Equal(t, Flash{Level: "error", Message: "boom"}, flashes[0])
	assert.Empty(t, sess.Flashes())
}

func TestStashIsOneShot(t *testing.T) {
	m := NewManager("test_secret")
	sess, _ := startSession(t, m)

	sess.Stash("uname", "admin1")
	values := sess.PopStash()
	assert.Equal(t, "admin1", values["uname"])
	assert.Empty(t, sess.PopStash())
}
